package moduletree_test

import (
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctron/ts-bindgen/internal/emit"
	"github.com/ctron/ts-bindgen/internal/moduletree"
	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

func typeName(file, local string) ir.TypeName {
	return ir.TypeName{File: file, Ident: ir.LocalName(local)}
}

func findChild(n *moduletree.Node, name string) *moduletree.Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// TestModuleTreeIsPrefixClosed covers spec.md §8's "the module tree is
// prefix-closed: if a path /a/b/c yields Types at module a::b::c, then
// modules a and a::b exist (possibly empty) in the tree" property.
func TestModuleTreeIsPrefixClosed(t *testing.T) {
	prog := ir.NewProgram()
	prog.Add(&ir.Type{
		Name:     typeName("/a/b/c.d.ts", "Point"),
		Info:     ir.Interface(nil, nil, nil, nil),
		Exported: true,
	})

	tree := moduletree.New()
	tree.Insert(prog)
	root := tree.Freeze()

	a := findChild(root, "a")
	require.NotNil(t, a)
	b := findChild(a, "b")
	require.NotNil(t, b)
	c := findChild(b, "c")
	require.NotNil(t, c)
	assert.Empty(t, a.Types)
	assert.Empty(t, b.Types)
	assert.Len(t, c.Types, 1)
}

func TestModuleTreeMergesSharedPrefix(t *testing.T) {
	prog := ir.NewProgram()
	prog.Add(&ir.Type{Name: typeName("/p/m.d.ts", "Point"), Info: ir.Interface(nil, nil, nil, nil), Exported: true})
	prog.Add(&ir.Type{Name: typeName("/p/n.d.ts", "Line"), Info: ir.Interface(nil, nil, nil, nil), Exported: true})

	tree := moduletree.New()
	tree.Insert(prog)
	root := tree.Freeze()

	p := findChild(root, "p")
	require.NotNil(t, p)
	assert.Len(t, p.Children, 2)
	assert.NotNil(t, findChild(p, "m"))
	assert.NotNil(t, findChild(p, "n"))
}

func TestRenderWritesNestedModBlocks(t *testing.T) {
	prog := ir.NewProgram()
	prog.Add(&ir.Type{
		Name:     typeName("/p/m.d.ts", "Point"),
		Info:     ir.Interface(map[string]ir.TypeRef{"x": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveNumber)}}}, nil, nil, nil),
		Exported: true,
		Ctx:      ir.Context{File: "/p/m.d.ts"},
	})

	tree := moduletree.New()
	tree.Insert(prog)
	root := tree.Freeze()

	e := emit.New(resolve.New(prog))
	fs := afero.NewMemMapFs()
	require.NoError(t, moduletree.Render(e, root, fs, "/out/lib.rs"))

	data, err := afero.ReadFile(fs, "/out/lib.rs")
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `pub mod p {`)
	assert.Contains(t, out, `pub mod m {`)
	assert.Contains(t, out, "pub struct Point")
}

// TestRenderGoldenOutput pins the full rendered crate source for a single
// exported Interface, the way pkg/tests/schema_generation_test.go pins
// full generated provider schemas.
func TestRenderGoldenOutput(t *testing.T) {
	prog := ir.NewProgram()
	prog.Add(&ir.Type{
		Name:     typeName("/p/m.d.ts", "Point"),
		Info:     ir.Interface(map[string]ir.TypeRef{"x": {Name: ir.TypeName{Ident: ir.Builtin_(ir.BuiltinPrimitiveNumber)}}}, nil, nil, nil),
		Exported: true,
		Ctx:      ir.Context{File: "/p/m.d.ts"},
	})

	tree := moduletree.New()
	tree.Insert(prog)
	root := tree.Freeze()

	e := emit.New(resolve.New(prog))
	fs := afero.NewMemMapFs()
	require.NoError(t, moduletree.Render(e, root, fs, "/out/lib.rs"))

	data, err := afero.ReadFile(fs, "/out/lib.rs")
	require.NoError(t, err)

	autogold.Expect(`#[cfg(target_arch = "wasm32")]
pub mod p {
    #[cfg(target_arch = "wasm32")]
    pub mod m {
        use crate::prelude::*;
        #[derive(Clone, Serialize, Deserialize)]
        pub struct Point {
            #[serde(rename = "x")]
            pub x: f64,
        }
        pub trait PointTrait {
            fn x(&self) -> Result<f64, JsErr>;
            fn set_x(&mut self, value: f64) -> Result<(), JsErr>;
        }
    }
}
`).Equal(t, string(data))
}
