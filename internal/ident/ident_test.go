package ident_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctron/ts-bindgen/internal/ident"
)

func TestSanitizeRawIdempotent(t *testing.T) {
	for _, s := range []string{"fooBar", "type", "123abc", "a-b-c", "", "_private", "Self"} {
		once := ident.Sanitize(s, ident.Raw)
		twice := ident.Sanitize(once.Name, ident.Raw)
		assert.Equal(t, once, twice, "sanitize(sanitize(%q)) should be a fixpoint", s)
	}
}

func TestSanitizeRawRejectsReservedKeywords(t *testing.T) {
	id := ident.Sanitize("type", ident.Raw)
	assert.Equal(t, "type_", id.Name)
}

func TestSanitizeRawSubstitutesInvalidChars(t *testing.T) {
	id := ident.Sanitize("123-abc!", ident.Raw)
	require.NotEmpty(t, id.Name)
	assert.Equal(t, "_23_abc_", id.Name)
}

func TestSanitizeNamespaceStripsExtension(t *testing.T) {
	assert.Equal(t, "foo_bar", ident.Sanitize("FooBar.d.ts", ident.Namespace).Name)
	assert.Equal(t, "foo_bar", ident.Sanitize("FooBar.ts", ident.Namespace).Name)
}

func TestSanitizeCamel(t *testing.T) {
	assert.Equal(t, "fooBar", ident.Sanitize("foo_bar", ident.Camel).Name)
}

func TestUniqueAppendsUnderscoreUntilFree(t *testing.T) {
	taken := map[string]bool{"x": true, "x_": true}
	id := ident.Unique("x", func(s string) bool { return taken[s] })
	assert.Equal(t, "x__", id.Name)
}

func TestIdentifierRender(t *testing.T) {
	id := ident.Identifier{Name: "Foo", Namespace: []string{"root", "pkg"}, TypeParams: []string{"T", "U"}}
	assert.Equal(t, "root::pkg::Foo<T, U>", id.Render())
}
