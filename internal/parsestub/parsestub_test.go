package parsestub_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctron/ts-bindgen/internal/parsestub"
	"github.com/ctron/ts-bindgen/ir"
)

func TestLoadBuildsProgramFromFixture(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/m.d.ts", []byte(`{
		"interfaces": [
			{"name": "Point", "exported": true, "fields": [
				{"name": "x", "type": "number"},
				{"name": "y", "type": "number"},
				{"name": "label", "type": "string", "optional": true}
			]}
		],
		"aliases": [
			{"name": "ID", "exported": true, "target": "string"}
		],
		"funcs": [
			{"name": "greet", "exported": true, "params": [{"name": "name", "type": "string"}], "returnType": "string"}
		]
	}`), 0o644))

	prog, err := parsestub.Load(fs, []string{"/p/m.d.ts"})
	require.NoError(t, err)

	point, ok := prog.Lookup(ir.TypeName{File: "/p/m.d.ts", Ident: ir.LocalName("Point")})
	require.True(t, ok)
	assert.Equal(t, ir.KindInterface, point.Info.Kind)
	assert.Len(t, point.Info.Fields, 3)

	id, ok := prog.Lookup(ir.TypeName{File: "/p/m.d.ts", Ident: ir.LocalName("ID")})
	require.True(t, ok)
	assert.Equal(t, ir.KindAlias, id.Info.Kind)

	greet, ok := prog.Lookup(ir.TypeName{File: "/p/m.d.ts", Ident: ir.LocalName("greet")})
	require.True(t, ok)
	assert.Equal(t, ir.KindFunc, greet.Info.Kind)
	assert.Len(t, greet.Info.FuncInfo.Params, 1)
}

func TestLoadRejectsUnsupportedPrimitive(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/m.d.ts", []byte(`{
		"aliases": [{"name": "X", "target": "not-a-type"}]
	}`), 0o644))

	_, err := parsestub.Load(fs, []string{"/p/m.d.ts"})
	assert.Error(t, err)
}
