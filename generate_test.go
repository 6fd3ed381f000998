package tsbindgen_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tsbindgen "github.com/ctron/ts-bindgen"
)

func TestGenerateRendersEntryPointToOutFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/p/m.d.ts", []byte(`{
		"interfaces": [
			{"name": "Point", "exported": true, "fields": [
				{"name": "x", "type": "number"},
				{"name": "y", "type": "number"}
			]}
		]
	}`), 0o644))

	err := tsbindgen.Generate(fs, tsbindgen.Config{
		EntryPoints: []string{"/src/p/m.d.ts"},
		OutDir:      "/out",
	})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/out/lib.rs")
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "pub mod src")
	assert.Contains(t, out, "pub struct Point")
}

func TestGenerateRequiresAtLeastOneEntryPoint(t *testing.T) {
	err := tsbindgen.Generate(afero.NewMemMapFs(), tsbindgen.Config{OutDir: "/out"})
	assert.Error(t, err)
}
