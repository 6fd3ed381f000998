// Package ident sanitizes arbitrary source identifiers into valid Rust
// identifiers, tracks uniqueness within a local scope, and produces
// snake_case / camelCase variants. See SPEC_FULL.md §4.1.
package ident

import (
	"strings"
	"unicode"

	"github.com/pulumi/pulumi/pkg/v3/codegen/cgstrings"
)

// Form selects which transform sanitize applies before enforcing
// identifier validity.
type Form int

const (
	Raw Form = iota
	Snake
	Camel
	Namespace
)

// reserved holds Rust's reserved keywords (2018+ edition, including
// weak/reserved-for-future-use words); sanitize appends "_" until a
// produced identifier no longer collides with one of these.
var reserved = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "crate": true,
	"dyn": true, "else": true, "enum": true, "extern": true, "false": true,
	"fn": true, "for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
	"async": true, "await": true, "try": true, "abstract": true, "become": true,
	"box": true, "do": true, "final": true, "macro": true, "override": true,
	"priv": true, "typeof": true, "unsized": true, "virtual": true, "yield": true,
	"union": true,
}

// Identifier is a sanitized identifier optionally carrying a namespace
// path and generic type-parameter tokens, per SPEC_FULL.md §4.1.
type Identifier struct {
	Name       string
	Namespace  []string
	TypeParams []string
}

// Simple wraps a bare name with no namespace or type-parameter tail.
func Simple(name string) Identifier { return Identifier{Name: name} }

// Render produces target (Rust) syntax: namespace segments joined by
// "::", then Name, then "<T, U>" if TypeParams is non-empty.
func (id Identifier) Render() string {
	var b strings.Builder
	for _, seg := range id.Namespace {
		b.WriteString(seg)
		b.WriteString("::")
	}
	b.WriteString(id.Name)
	if len(id.TypeParams) > 0 {
		b.WriteByte('<')
		b.WriteString(strings.Join(id.TypeParams, ", "))
		b.WriteByte('>')
	}
	return b.String()
}

func isXIDStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isXIDContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Sanitize converts s into a valid Rust identifier according to form, per
// SPEC_FULL.md / spec.md §4.1.
func Sanitize(s string, form Form) Identifier {
	switch form {
	case Snake:
		return Simple(sanitizeRaw(snakeCase(s)))
	case Camel:
		return Simple(sanitizeRaw(camelCase(s)))
	case Namespace:
		s = strings.TrimSuffix(s, ".d.ts")
		s = strings.TrimSuffix(s, ".ts")
		return Simple(sanitizeRaw(snakeCase(s)))
	default:
		return Simple(sanitizeRaw(s))
	}
}

// sanitizeRaw implements the `raw` sanitation rule of SPEC_FULL.md §4.1:
// substitute any character that doesn't satisfy XID_START/XID_CONTINUE
// with "_", then append "_" while the result collides with a reserved
// keyword.
func sanitizeRaw(s string) string {
	if s == "" {
		return "_"
	}
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		switch {
		case i == 0:
			if isXIDStart(r) && r != '_' {
				b.WriteRune(r)
			} else if r == '_' {
				// leading underscore isn't a valid XID_START per spec; substitute.
				b.WriteRune('_')
			} else {
				b.WriteRune('_')
			}
		default:
			if isXIDContinue(r) {
				b.WriteRune(r)
			} else {
				b.WriteRune('_')
			}
		}
	}
	out := b.String()
	for reserved[out] {
		out += "_"
	}
	return out
}

// camelCase mirrors tfbridge.camelCase: upper-case the first letter
// following each "_" and drop the separator, grounded on
// cgstrings.ModifyStringAroundDelimeter as used in pkg/tfbridge/token.go.
func camelCase(s string) string {
	return cgstrings.ModifyStringAroundDelimeter(s, "_", cgstrings.UppercaseFirst)
}

// snakeCase converts a mixedCase or PascalCase identifier into
// lower_snake_case by inserting "_" before each interior uppercase run
// boundary.
func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "_")
}

// Unique appends "_" to desired until taken reports false for the
// candidate, then sanitizes the result with the raw form.
func Unique(desired string, taken func(string) bool) Identifier {
	candidate := desired
	for taken(candidate) {
		candidate += "_"
	}
	return Simple(sanitizeRaw(candidate))
}
