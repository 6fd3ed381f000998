package moduletree

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/ctron/ts-bindgen/internal/emit"
)

// Render walks root (as produced by Tree.Freeze) and writes the rendered
// source text to path on fs, per spec.md §4.5's output template and the
// ambient afero wiring of SPEC_FULL.md §4.5 (mirroring
// languageBackend.emitFiles(spec, overlay, root afero.Fs) in
// pkg/tfgen/language.go). The root node's own Types and Children are
// written unwrapped (they are the crate root); every other node is
// wrapped in a `#[cfg(target_arch = "wasm32")] pub mod <name> { ... }`
// block.
func Render(e *emit.Emitter, root *Node, fs afero.Fs, path string) error {
	w := emit.NewWriter()
	if err := renderRoot(w, e, root); err != nil {
		return errors.Wrapf(err, "rendering module tree")
	}

	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if _, err := f.WriteString(w.String()); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func renderRoot(w *emit.Writer, e *emit.Emitter, n *Node) error {
	if err := renderBody(w, e, n); err != nil {
		return err
	}
	return nil
}

func renderBody(w *emit.Writer, e *emit.Emitter, n *Node) error {
	if len(n.Types) > 0 {
		w.Writefmtln("use crate::prelude::*;")
	}
	for _, t := range n.Types {
		if err := e.EmitType(w, t); err != nil {
			return errors.Wrapf(err, "emitting %s", t.Name)
		}
	}
	for _, child := range n.Children {
		if err := renderNode(w, e, child); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(w *emit.Writer, e *emit.Emitter, n *Node) error {
	w.Writefmtln(`#[cfg(target_arch = "wasm32")]`)
	var innerErr error
	w.Block("pub mod "+n.Name, func() {
		innerErr = renderBody(w, e, n)
	})
	return innerErr
}
