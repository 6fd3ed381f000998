package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

func typeName(file, local string) ir.TypeName {
	return ir.TypeName{File: file, Ident: ir.LocalName(local)}
}

func TestResolveTargetTypeFollowsAliasChain(t *testing.T) {
	prog := ir.NewProgram()
	prog.Add(&ir.Type{
		Name: typeName("/f.d.ts", "A"),
		Info: ir.Alias(ir.TypeRef{Name: typeName("/f.d.ts", "B")}, nil),
	})
	prog.Add(&ir.Type{
		Name: typeName("/f.d.ts", "B"),
		Info: ir.PrimitiveType(ir.PrimitiveString),
	})

	r := resolve.New(prog)
	info, ok := r.ResolveTargetType(ir.Ref(ir.TypeRef{Name: typeName("/f.d.ts", "A")}), "/f.d.ts")
	require.True(t, ok)
	assert.Equal(t, ir.KindPrimitive, info.Kind)
	assert.Equal(t, ir.PrimitiveString, info.Primitive)
}

func TestResolveTargetTypeDetectsCycle(t *testing.T) {
	prog := ir.NewProgram()
	prog.Add(&ir.Type{
		Name: typeName("/f.d.ts", "A"),
		Info: ir.Alias(ir.TypeRef{Name: typeName("/f.d.ts", "B")}, nil),
	})
	prog.Add(&ir.Type{
		Name: typeName("/f.d.ts", "B"),
		Info: ir.Alias(ir.TypeRef{Name: typeName("/f.d.ts", "A")}, nil),
	})

	r := resolve.New(prog)
	_, ok := r.ResolveTargetType(ir.Ref(ir.TypeRef{Name: typeName("/f.d.ts", "A")}), "/f.d.ts")
	assert.False(t, ok)
}

func TestResolveTargetTypeMissingReferenceIsNotFatal(t *testing.T) {
	prog := ir.NewProgram()
	r := resolve.New(prog)
	_, ok := r.ResolveTargetType(ir.Ref(ir.TypeRef{Name: typeName("/f.d.ts", "Missing")}), "/f.d.ts")
	assert.False(t, ok)
	assert.Error(t, r.Diagnostics())
}

func TestIsUninhabited(t *testing.T) {
	assert.True(t, resolve.IsUninhabited(ir.PrimitiveType(ir.PrimitiveNull)))
	assert.True(t, resolve.IsUninhabited(ir.PrimitiveType(ir.PrimitiveUndefined)))
	assert.True(t, resolve.IsUninhabited(ir.Union(
		ir.PrimitiveType(ir.PrimitiveNull),
		ir.PrimitiveType(ir.PrimitiveUndefined),
	)))
	assert.False(t, resolve.IsUninhabited(ir.Union(
		ir.PrimitiveType(ir.PrimitiveNull),
		ir.PrimitiveType(ir.PrimitiveString),
	)))
	assert.False(t, resolve.IsUninhabited(ir.PrimitiveType(ir.PrimitiveString)))
}

func TestIsPotentiallyUndefined(t *testing.T) {
	assert.True(t, resolve.IsPotentiallyUndefined(ir.Optional(ir.PrimitiveType(ir.PrimitiveString))))
	assert.True(t, resolve.IsPotentiallyUndefined(ir.Union(
		ir.PrimitiveType(ir.PrimitiveString),
		ir.PrimitiveType(ir.PrimitiveUndefined),
	)))
	assert.False(t, resolve.IsPotentiallyUndefined(ir.PrimitiveType(ir.PrimitiveString)))
}

func TestSerializationTypeClassifiesFn(t *testing.T) {
	prog := ir.NewProgram()
	r := resolve.New(prog)
	fnRef := ir.Ref(ir.TypeRef{Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinFn)}})
	assert.Equal(t, resolve.SerializationFn, r.SerializationType(fnRef, "/f.d.ts"))
}

func TestSerializationTypeRawForPrimitives(t *testing.T) {
	r := resolve.New(ir.NewProgram())
	assert.Equal(t, resolve.SerializationRaw, r.SerializationType(ir.PrimitiveType(ir.PrimitiveNumber), "/f.d.ts"))
	assert.Equal(t, resolve.SerializationRaw, r.SerializationType(ir.PrimitiveType(ir.PrimitiveString), "/f.d.ts"))
}

func TestArgumentSerializationTypePrefersRefForStrings(t *testing.T) {
	r := resolve.New(ir.NewProgram())
	assert.Equal(t, resolve.SerializationRef, r.ArgumentSerializationType(ir.PrimitiveType(ir.PrimitiveString), "/f.d.ts"))
	assert.Equal(t, resolve.SerializationRaw, r.SerializationType(ir.PrimitiveType(ir.PrimitiveString), "/f.d.ts"))
}

func TestRecursiveFieldsInheritsAndOverrides(t *testing.T) {
	prog := ir.NewProgram()
	a := typeName("/f.d.ts", "A")
	b := typeName("/f.d.ts", "B")
	prog.Add(&ir.Type{
		Name: a,
		Info: ir.Interface(map[string]ir.TypeRef{
			"a": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveNumber)}},
			"b": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveNumber)}},
		}, nil, nil, nil),
	})
	bInfo := ir.Interface(map[string]ir.TypeRef{
		"b": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveString)}},
	}, nil, []ir.TypeRef{{Name: a}}, nil)
	prog.Add(&ir.Type{Name: b, Info: bInfo})

	r := resolve.New(prog)
	fields := r.RecursiveFields(bInfo, "B", "/f.d.ts", resolve.Env{})
	names := map[string]bool{}
	for _, f := range fields {
		names[f.Name] = true
		if f.Name == "b" {
			// B's own "b" (string) overrides the inherited A.b (number).
			assert.Equal(t, ir.BuiltinPrimitiveString, f.Type.Name.Ident.Builtin)
		}
	}
	assert.True(t, names["a"])
	assert.True(t, names["b"])
	assert.Len(t, fields, 2)
}
