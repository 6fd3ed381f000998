package emit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctron/ts-bindgen/internal/emit"
	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

func typeName(file, local string) ir.TypeName {
	return ir.TypeName{File: file, Ident: ir.LocalName(local)}
}

func TestEmitInterfaceRendersFieldsAndTrait(t *testing.T) {
	prog := ir.NewProgram()
	iface := &ir.Type{
		Name: typeName("/f.d.ts", "Point"),
		Info: ir.Interface(map[string]ir.TypeRef{
			"x": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveNumber)}},
			"y": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveNumber)}},
		}, nil, nil, nil),
		Exported: true,
		Ctx:      ir.Context{File: "/f.d.ts"},
	}
	prog.Add(iface)

	e := emit.New(resolve.New(prog))
	w := emit.NewWriter()
	require.NoError(t, e.EmitType(w, iface))

	out := w.String()
	assert.Contains(t, out, "pub struct Point")
	assert.Contains(t, out, `#[serde(rename = "x")]`)
	assert.Contains(t, out, "pub x: f64,")
	assert.Contains(t, out, "pub trait PointTrait")
	assert.Contains(t, out, "fn x(&self) -> Result<f64, JsErr>;")
}

func TestEmitInterfaceIndexerFlattensExtraFields(t *testing.T) {
	prog := ir.NewProgram()
	iface := &ir.Type{
		Name: typeName("/f.d.ts", "Dict"),
		Info: ir.Interface(nil, &ir.Indexer{Value: ir.TypeRef{Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveString)}}}, nil, nil),
		Ctx:  ir.Context{File: "/f.d.ts"},
	}
	prog.Add(iface)

	e := emit.New(resolve.New(prog))
	w := emit.NewWriter()
	require.NoError(t, e.EmitType(w, iface))

	out := w.String()
	assert.Contains(t, out, `#[serde(flatten)]`)
	assert.Contains(t, out, "pub extra_fields: std::collections::HashMap<String, String>,")
}

func TestEmitUnionSortsWidestFirst(t *testing.T) {
	prog := ir.NewProgram()
	wide := typeName("/f.d.ts", "Wide")
	prog.Add(&ir.Type{
		Name: wide,
		Info: ir.Interface(map[string]ir.TypeRef{
			"a": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveNumber)}},
			"b": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveNumber)}},
		}, nil, nil, nil),
		Ctx: ir.Context{File: "/f.d.ts"},
	})

	u := &ir.Type{
		Name: typeName("/f.d.ts", "U"),
		Info: ir.Union(
			ir.PrimitiveType(ir.PrimitiveString),
			ir.Ref(ir.TypeRef{Name: wide}),
		),
		Ctx: ir.Context{File: "/f.d.ts"},
	}
	prog.Add(u)

	e := emit.New(resolve.New(prog))
	w := emit.NewWriter()
	require.NoError(t, e.EmitType(w, u))

	out := w.String()
	wideIdx := strings.Index(out, "WideCase")
	stringIdx := strings.Index(out, "StringCase")
	require.NotEqual(t, -1, wideIdx)
	require.NotEqual(t, -1, stringIdx)
	assert.Less(t, wideIdx, stringIdx, "wider struct case must sort before the scalar case")
}

func TestEmitAliasPreservesExportedness(t *testing.T) {
	prog := ir.NewProgram()
	a := &ir.Type{
		Name:     typeName("/f.d.ts", "ID"),
		Info:     ir.Alias(ir.TypeRef{Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveString)}}, nil),
		Exported: true,
		Ctx:      ir.Context{File: "/f.d.ts"},
	}
	prog.Add(a)

	e := emit.New(resolve.New(prog))
	w := emit.NewWriter()
	require.NoError(t, e.EmitType(w, a))

	assert.Equal(t, "pub type ID = String;\n", w.String())
}

func TestEmitTupleUsesPositionalFields(t *testing.T) {
	tup := &ir.Type{
		Name: typeName("/f.d.ts", "Pair"),
		Info: ir.Tuple(ir.PrimitiveType(ir.PrimitiveNumber), ir.PrimitiveType(ir.PrimitiveString)),
		Ctx:  ir.Context{File: "/f.d.ts"},
	}
	e := emit.New(resolve.New(ir.NewProgram()))
	w := emit.NewWriter()
	require.NoError(t, e.EmitType(w, tup))

	assert.Contains(t, w.String(), "struct Pair(pub f64, pub String);")
}

func TestEmitIntersectionOfInterfacesMergesFields(t *testing.T) {
	prog := ir.NewProgram()
	a := typeName("/f.d.ts", "A")
	b := typeName("/f.d.ts", "B")
	prog.Add(&ir.Type{
		Name: a,
		Info: ir.Interface(map[string]ir.TypeRef{"x": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveNumber)}}}, nil, nil, nil),
		Ctx:  ir.Context{File: "/f.d.ts"},
	})
	prog.Add(&ir.Type{
		Name: b,
		Info: ir.Interface(map[string]ir.TypeRef{"y": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveString)}}}, nil, nil, nil),
		Ctx:  ir.Context{File: "/f.d.ts"},
	})

	inter := &ir.Type{
		Name: typeName("/f.d.ts", "AB"),
		Info: ir.Intersection(ir.Ref(ir.TypeRef{Name: a}), ir.Ref(ir.TypeRef{Name: b})),
		Ctx:  ir.Context{File: "/f.d.ts"},
	}

	e := emit.New(resolve.New(prog))
	w := emit.NewWriter()
	require.NoError(t, e.EmitType(w, inter))

	out := w.String()
	assert.Contains(t, out, "pub x: f64,")
	assert.Contains(t, out, "pub y: String,")
}

func TestEmitEnumWithLiteralDiscriminants(t *testing.T) {
	en := &ir.Type{
		Name: typeName("/f.d.ts", "Status"),
		Info: ir.Enum([]ir.EnumMember{
			{ID: "Ok", Literal: &ir.Literal{IsNumber: true, Num: 0}},
			{ID: "Err", Literal: &ir.Literal{IsNumber: true, Num: 1}},
		}),
		Ctx: ir.Context{File: "/f.d.ts"},
	}
	e := emit.New(resolve.New(ir.NewProgram()))
	w := emit.NewWriter()
	require.NoError(t, e.EmitType(w, en))

	out := w.String()
	assert.Contains(t, out, "Ok = 0.0,")
	assert.Contains(t, out, "Err = 1.0,")
}

func TestFingerprintDisambiguatesCollisions(t *testing.T) {
	used := map[string]int{}
	first := emit.Disambiguate("FooCase", used)
	second := emit.Disambiguate("FooCase", used)
	assert.Equal(t, "FooCase", first)
	assert.Equal(t, "FooCase1", second)
}
