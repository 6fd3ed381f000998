package ir

import "sort"

// File is the per-file slice of the Program container: TypeIdent (keyed
// via TypeIdentKey, since TypeIdent is not itself comparable) -> Type.
type File map[TypeIdentKey]*Type

// Program is the root input to the resolver and emitter: "a mapping file
// path -> (TypeIdent -> Type) produced by the parser collaborator"
// (SPEC_FULL.md §6). The parser owns every Type reachable from a Program;
// the resolver and emitter treat it as read-only (SPEC_FULL.md §3
// Lifecycle).
type Program map[string]File

// NewProgram returns an empty Program ready for population by a parser
// collaborator (or, in tests, internal/parsestub).
func NewProgram() Program { return make(Program) }

// Add registers t under its own TypeName, creating the file entry if
// necessary. Per the §3 invariant "within one file, a TypeIdent identifies
// at most one Type", Add overwrites any prior entry at the same key —
// callers that need duplicate-detection must check Lookup first.
func (p Program) Add(t *Type) {
	f, ok := p[t.Name.File]
	if !ok {
		f = make(File)
		p[t.Name.File] = f
	}
	f[t.Name.Key()] = t
}

// Lookup resolves a TypeName to its Type, if present.
func (p Program) Lookup(name TypeName) (*Type, bool) {
	f, ok := p[name.File]
	if !ok {
		return nil, false
	}
	t, ok := f[name.Key()]
	return t, ok
}

// Files returns the set of file paths with at least one Type, in
// insertion-independent (but stable per call) sorted order.
func (p Program) Files() []string {
	out := make([]string, 0, len(p))
	for f := range p {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
