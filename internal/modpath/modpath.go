// Package modpath maps a filesystem path and a qualified type name into a
// dotted module path of sanitized identifier segments. See SPEC_FULL.md
// §4.2. The root-ward component walk is grounded on
// pkg/tfgen/gomod.go's findModuleRoot, which walks filepath.Dir(dir)
// toward the filesystem root looking for a marker file; PathSegments
// performs the analogous walk but collects every Normal component instead
// of stopping at the first match, and stops at (and excludes) a
// "node_modules" vendor-directory segment rather than a go.mod file.
package modpath

import (
	"path/filepath"
	"strings"

	"github.com/ctron/ts-bindgen/internal/ident"
	"github.com/ctron/ts-bindgen/ir"
)

// VendorDirToken is the filesystem segment above which module paths are
// computed; conventionally "node_modules" per spec.md §4.2.
const VendorDirToken = "node_modules"

// ParentToken is emitted by RelativeNS once per module-depth level of the
// source module, mirroring Rust's "super" path segment.
const ParentToken = "super"

// PathSegments canonicalizes p, walks its components from the file toward
// the root, keeps only ordinary ("Normal") components, stops at (and
// excludes) any component equal to VendorDirToken, reverses into
// root->leaf order, and namespace-sanitizes each segment.
func PathSegments(p string) []ident.Identifier {
	clean := filepath.ToSlash(filepath.Clean(p))
	// Every Normal component is kept, including the file's own basename:
	// the leaf file becomes (after namespace sanitation strips its
	// extension) the innermost module in the tree assembled in §4.5.
	parts := strings.Split(clean, "/")

	var kept []string
	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			continue
		}
		kept = append(kept, part)
	}

	// Stop at (and exclude) the vendor directory token: keep only the
	// components *after* the last occurrence of it.
	for i := len(kept) - 1; i >= 0; i-- {
		if kept[i] == VendorDirToken {
			kept = kept[i+1:]
			break
		}
	}

	out := make([]ident.Identifier, 0, len(kept))
	for _, part := range kept {
		out = append(out, ident.Sanitize(part, ident.Namespace))
	}
	return out
}

// NameSegments returns, for a QualifiedName TypeIdent, every segment but
// the last (the module path implied by the qualified name itself);
// otherwise it returns nil.
func NameSegments(id ir.TypeIdent) []ident.Identifier {
	if id.Kind != ir.IdentQualifiedName || len(id.Qualified) == 0 {
		return nil
	}
	segs := id.Qualified[:len(id.Qualified)-1]
	out := make([]ident.Identifier, 0, len(segs))
	for _, s := range segs {
		out = append(out, ident.Sanitize(s, ident.Namespace))
	}
	return out
}

// ModPath is the concatenation of PathSegments(name.File) and
// NameSegments(name.Ident).
func ModPath(name ir.TypeName) []ident.Identifier {
	return append(PathSegments(name.File), NameSegments(name.Ident)...)
}

// RelativeNS emits len(from) copies of ParentToken followed by the
// segments of ModPath(to) (to's leaf name is not appended), producing a path that,
// from any module at depth len(from), resolves up to the tree root and
// back down to the named entity. See spec.md §4.2 and end-to-end scenario
// 6 ("pub use super::super::b as util;").
func RelativeNS(from []ident.Identifier, to ir.TypeName) []string {
	out := make([]string, 0, len(from)+len(to.Ident.Qualified)+1)
	for range from {
		out = append(out, ParentToken)
	}
	for _, seg := range ModPath(to) {
		out = append(out, seg.Name)
	}
	return out
}
