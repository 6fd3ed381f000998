package emit

import (
	"fmt"
	"strings"

	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

// Fingerprint derives a union case identifier from t's rendered native
// type name: upper-camel the leading letter of the rust type name and
// append "Case" (f64 -> F64Case, String -> StringCase, Foo -> FooCase).
func Fingerprint(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) string {
	name := RustTypeName(r, t, ctxFile)
	return shortDescription(name) + "Case"
}

// shortDescription trims any generic-argument tail (Vec<T> -> Vec) and
// upper-cases the leading character, so a compound native name still
// yields a single readable case identifier.
func shortDescription(rustName string) string {
	if i := strings.IndexByte(rustName, '<'); i >= 0 {
		rustName = rustName[:i]
	}
	rustName = strings.TrimPrefix(rustName, "&")
	if rustName == "" {
		return "Unit"
	}
	r := []rune(rustName)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// Disambiguate appends an index suffix to base whenever base has already
// been used earlier in the same union's case list, so collisions (e.g.
// two interface members that both fingerprint to "FooCase" because they
// share a rendered name) stay distinguishable.
func Disambiguate(base string, used map[string]int) string {
	n := used[base]
	used[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s%d", base, n)
}
