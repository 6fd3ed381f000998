package tsbindgen

import (
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/ctron/ts-bindgen/internal/concur"
	"github.com/ctron/ts-bindgen/internal/emit"
	"github.com/ctron/ts-bindgen/internal/moduletree"
	"github.com/ctron/ts-bindgen/internal/parsestub"
	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

// Generate runs the full pipeline against cfg, reading entry points and
// writing the rendered crate source through fs. It is process-local to
// one invocation (SPEC_FULL.md §5): two concurrent calls from separate
// goroutines share no state beyond fs itself.
func Generate(fs afero.Fs, cfg Config) error {
	if len(cfg.EntryPoints) == 0 {
		return errors.New("tsbindgen: at least one entry point is required")
	}

	prog, err := gatherEntryPoints(fs, cfg.EntryPoints)
	if err != nil {
		return errors.Wrap(err, "failed to gather entry points")
	}

	r := resolve.New(prog)
	e := emit.New(r)

	tree := moduletree.New()
	tree.Insert(prog)
	root := tree.Freeze()

	outPath := filepath.Join(cfg.OutDir, cfg.outFile())
	if err := moduletree.Render(e, root, fs, outPath); err != nil {
		return errors.Wrap(err, "failed to render module tree")
	}

	if diag := r.Diagnostics(); diag != nil {
		glog.Warningf("tsbindgen: crate %s: entry points %v produced resolution diagnostics: %v", cfg.CrateName, cfg.EntryPoints, diag)
	}
	return nil
}

// gatherEntryPoints parses every entry point independently and merges the
// resulting per-file Programs, per SPEC_FULL.md §5: the per-entry-point
// parse+gather passes are the one place true parallelism is useful, run
// here via internal/concur.ParMap (generalized from pkg/tfgen/par.go)
// ahead of the single-threaded resolve+assemble+emit phase below.
func gatherEntryPoints(fs afero.Fs, entryPoints []string) (ir.Program, error) {
	inputs := map[string]string{}
	for _, p := range entryPoints {
		inputs[p] = p
	}

	parsed, err := concur.ParMap(inputs, func(batch map[string]string) (map[string]ir.Program, error) {
		out := map[string]ir.Program{}
		for key, path := range batch {
			prog, err := parsestub.Load(fs, []string{path})
			if err != nil {
				return nil, err
			}
			out[key] = prog
		}
		return out, nil
	}, -1, 1)
	if err != nil {
		return nil, err
	}

	merged := ir.NewProgram()
	for _, p := range entryPoints {
		for file, f := range parsed[p] {
			merged[file] = f
		}
	}
	return merged, nil
}
