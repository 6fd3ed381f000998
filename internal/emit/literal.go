package emit

import (
	"strconv"
	"strings"

	"github.com/ctron/ts-bindgen/internal/ident"
)

// rustNameOf sanitizes a bare identifier string (not a TypeName) into a
// valid Rust identifier using the raw sanitizer, for enum member and
// union case names that don't originate from a declared TypeIdent.
func rustNameOf(s string) string { return ident.Sanitize(s, ident.Raw).Render() }

func quoteRust(s string) string { return strconv.Quote(s) }

func floatLiteral(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func boolLiteral(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
