// Package moduletree builds the recursive module tree of SPEC_FULL.md
// §4.5: per (file path, TypeIdent -> Type) entry in a Program, a Type is
// attached at the module path implied by its file, and again at the
// deeper module path implied by its own qualified name if it has one.
// Construction mutates a working tree; Freeze hands the caller an
// immutable snapshot for rendering, matching spec.md §9's explicit
// "mutable tree building" design note: a purely-functional build would
// force repeated map merges that obscure the insertion policy.
package moduletree

import (
	"sort"

	"github.com/ctron/ts-bindgen/internal/ident"
	"github.com/ctron/ts-bindgen/internal/modpath"
	"github.com/ctron/ts-bindgen/ir"
)

type mutableNode struct {
	types    []*ir.Type
	children map[string]*mutableNode
}

func newMutableNode() *mutableNode {
	return &mutableNode{children: map[string]*mutableNode{}}
}

// Tree is the mutable working tree built by Insert and consumed by
// Freeze.
type Tree struct {
	root *mutableNode
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{root: newMutableNode()}
}

// Insert attaches every Type in prog to the tree, per spec.md §4.5 steps
// 1-2. Calling Insert more than once (e.g. across several parsed entry
// points) is safe: the merging policy reuses existing nodes by name.
func (t *Tree) Insert(prog ir.Program) {
	for _, file := range prog.Files() {
		for _, typ := range sortedTypes(prog[file]) {
			modPath := modpath.PathSegments(typ.Name.File)
			t.walk(modPath).types = append(t.walk(modPath).types, typ)

			if typ.Name.Ident.Kind == ir.IdentQualifiedName {
				qualified := append(append([]ident.Identifier{}, modPath...), modpath.NameSegments(typ.Name.Ident)...)
				t.walk(qualified).types = append(t.walk(qualified).types, typ)
			}
		}
	}
}

func (t *Tree) walk(segs []ident.Identifier) *mutableNode {
	cur := t.root
	for _, s := range segs {
		name := s.Render()
		child, ok := cur.children[name]
		if !ok {
			child = newMutableNode()
			cur.children[name] = child
		}
		cur = child
	}
	return cur
}

func sortedTypes(f ir.File) []*ir.Type {
	out := make([]*ir.Type, 0, len(f))
	for _, t := range f {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name.Ident.Leaf() < out[j].Name.Ident.Leaf()
	})
	return out
}

// Node is an immutable snapshot of one module-tree position: its own
// Name (empty for the root), the Types attached directly at this
// position, and its Children in deterministic (name-sorted) order.
type Node struct {
	Name     string
	Types    []*ir.Type
	Children []*Node
}

// Freeze converts t's working tree into an immutable Node rooted at the
// (unnamed) crate root, per spec.md §4.5 "converts the mutable tree into
// an immutable one and hands it to the emission model".
func (t *Tree) Freeze() *Node {
	return freeze("", t.root)
}

func freeze(name string, n *mutableNode) *Node {
	names := make([]string, 0, len(n.children))
	for k := range n.children {
		names = append(names, k)
	}
	sort.Strings(names)

	children := make([]*Node, 0, len(names))
	for _, k := range names {
		children = append(children, freeze(k, n.children[k]))
	}

	return &Node{Name: name, Types: n.types, Children: children}
}
