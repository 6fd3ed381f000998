package emit

import (
	"github.com/ctron/ts-bindgen/internal/modpath"
	"github.com/ctron/ts-bindgen/ir"
)

// emitNamespaceImport renders t (Kind == NamespaceImport) as a re-export
// using the relative-ns path, per spec.md §4.4.4 "NamespaceImport".
func (e *Emitter) emitNamespaceImport(w *Writer, t *ir.Type) {
	n := t.Info.Import
	from := modpath.PathSegments(t.Ctx.File)
	switch n.Kind {
	case ir.NamespaceImportAll:
		toks := modpath.RelativeNS(from, ir.TypeName{File: n.Src})
		w.Writefmtln("pub use %s as %s;", joinStrs(toks, "::"), rustNameOf(t.Name.Ident.Leaf()))
	case ir.NamespaceImportDefault:
		toks := modpath.RelativeNS(from, ir.TypeName{File: n.Src})
		w.Writefmtln("pub use %s::default as %s;", joinStrs(toks, "::"), rustNameOf(t.Name.Ident.Leaf()))
	case ir.NamespaceImportNamed:
		toks := modpath.RelativeNS(from, ir.TypeName{File: n.Src})
		leaf := rustNameOf(n.Name)
		w.Writefmtln("pub use %s::%s as %s;", joinStrs(toks, "::"), leaf, rustNameOf(t.Name.Ident.Leaf()))
	}
}
