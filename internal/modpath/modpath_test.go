package modpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ctron/ts-bindgen/internal/modpath"
	"github.com/ctron/ts-bindgen/ir"
)

func TestPathSegmentsBasic(t *testing.T) {
	segs := modpath.PathSegments("/project/p/a.d.ts")
	var got []string
	for _, s := range segs {
		got = append(got, s.Name)
	}
	assert.Equal(t, []string{"project", "p", "a"}, got)
}

func TestPathSegmentsStopsAtVendorDir(t *testing.T) {
	segs := modpath.PathSegments("/repo/node_modules/p/a.d.ts")
	var got []string
	for _, s := range segs {
		got = append(got, s.Name)
	}
	assert.Equal(t, []string{"p", "a"}, got)
}

func TestPathSegmentsEmptyIffNoComponentsOutsideVendorDir(t *testing.T) {
	segs := modpath.PathSegments("/repo/node_modules")
	assert.Empty(t, segs)

	segs = modpath.PathSegments("/repo/node_modules/a.d.ts")
	assert.NotEmpty(t, segs)
}

func TestNameSegmentsOnlyForQualifiedName(t *testing.T) {
	segs := modpath.NameSegments(ir.QualifiedName("NS", "Inner"))
	assert.Len(t, segs, 1)
	assert.Equal(t, "ns", segs[0].Name)

	assert.Empty(t, modpath.NameSegments(ir.LocalName("Foo")))
}

func TestRelativeNSEmitsSuperPerFromDepth(t *testing.T) {
	from := modpath.PathSegments("/project/p/a.d.ts")
	to := ir.TypeName{File: "/project/p/b.d.ts"}
	toks := modpath.RelativeNS(from, to)
	assert.Equal(t, []string{"super", "super", "super", "project", "p", "b"}, toks)
}
