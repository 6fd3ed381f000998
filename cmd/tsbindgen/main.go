// Command tsbindgen is the out-of-scope CLI stand-in of SPEC_FULL.md §1/§9:
// a thin cobra wrapper around tsbindgen.Generate, grounded on
// pkg/tfgen/main.go's newTFGenCmd (one output-directory flag, glog
// flushed after the run completes).
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	tsbindgen "github.com/ctron/ts-bindgen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tsbindgen: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outDir string
	var outFile string
	var crateName string

	cmd := &cobra.Command{
		Use:   "tsbindgen <entry-point.d.ts>...",
		Short: "Generate a wasm-bindgen Rust crate from TypeScript declaration files",
		Long: "tsbindgen reads one or more entry-point files, each holding the JSON fixture\n" +
			"format of the built-in parser stand-in (not TypeScript source), and emits a\n" +
			"single Rust source file exposing a wasm-bindgen binding crate mirroring their\n" +
			"module structure and type shapes.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := tsbindgen.Config{
				EntryPoints: args,
				OutDir:      outDir,
				OutFile:     outFile,
				CrateName:   crateName,
			}
			return tsbindgen.Generate(afero.NewOsFs(), cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}

	cmd.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "Directory to write the generated crate source to")
	cmd.PersistentFlags().StringVar(&outFile, "out-file", "lib.rs", "Filename (within --out) to write the generated source to")
	cmd.PersistentFlags().StringVar(&crateName, "crate-name", "bindings", "Name of the generated crate, used in diagnostic messages")

	return cmd
}
