// Package tsbindgen orchestrates the full pipeline of SPEC_FULL.md: load
// entry points (internal/parsestub), resolve and emit every declared Type
// (internal/resolve, internal/emit), assemble and render the module tree
// (internal/moduletree). Grounded on pkg/tfgen/generate.go's generator.Generate:
// gather -> prepare -> convert -> emit -> write, with every stage error
// wrapped via github.com/pkg/errors.
package tsbindgen

// Config holds the orchestration-level settings a CLI or test harness
// supplies to Generate, per SPEC_FULL.md §9 "Config": a single flat
// struct populated by flags, with no separate config-file format (the
// teacher's own config story for tfgen itself is likewise just flags).
type Config struct {
	// EntryPoints lists the absolute, canonicalized entry-point file
	// paths to load, per spec.md §6's "File paths must be absolute and
	// canonicalized before the assembler runs".
	EntryPoints []string

	// OutDir is the directory the rendered crate source is written to.
	OutDir string

	// OutFile is the filename within OutDir the rendered module tree is
	// written to; defaults to "lib.rs".
	OutFile string

	// CrateName names the generated crate, threaded through only for
	// diagnostic messages at this scale (no Cargo.toml templating is in
	// scope).
	CrateName string
}

func (c Config) outFile() string {
	if c.OutFile == "" {
		return "lib.rs"
	}
	return c.OutFile
}
