package resolve

import (
	"sort"

	"github.com/ctron/ts-bindgen/ir"
)

// FieldEntry is one resolved field of an Interface's recursive-field
// expansion: its name and its type, with generic substitutions already
// applied.
type FieldEntry struct {
	Name string
	Type ir.TypeRef
}

// RecursiveFields computes the union of iface's own Fields and the fields
// of every transitive Extends target, applying generic substitutions at
// each inheritance step, per spec.md §4.3. Name collisions resolve to the
// most-derived definition: iface's own fields are applied last, so they
// always win. Among the Extends list, supers are walked in order and a
// later super's field replaces an earlier super's field of the same name.
// A super reached twice (a diamond) is walked only the first time. The
// output keeps the order in which each name was first seen.
func (r *Resolver) RecursiveFields(iface ir.TypeInfo, ifaceName string, ctxFile string, env Env) []FieldEntry {
	order := []string{}
	byName := map[string]FieldEntry{}

	r.collectFields(iface, ifaceName, ctxFile, env, &order, byName, map[ir.TypeIdentKey]bool{})

	out := make([]FieldEntry, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

func (r *Resolver) collectFields(
	iface ir.TypeInfo, ifaceName string, ctxFile string, env Env,
	order *[]string, byName map[string]FieldEntry, visiting map[ir.TypeIdentKey]bool,
) {
	// Supers first, so the current interface's own fields (applied after)
	// win on collision, per the "most-derived wins" rule.
	for _, ext := range iface.Extends {
		key := ext.Name.Key()
		if visiting[key] {
			continue
		}
		visiting[key] = true

		target, ok := r.prog.Lookup(ext.Name)
		if !ok {
			r.warnf("interface %s extends missing type %s", ifaceName, ext.Name)
			continue
		}
		if target.Info.Kind != ir.KindInterface {
			continue
		}
		superEnv := ApplyTypeParams(substituteRefParams(ext, env), target.Info.TypeParams, env)
		r.collectFields(target.Info, ifaceName, ext.Name.File, superEnv, order, byName, visiting)
	}

	names := make([]string, 0, len(iface.Fields))
	for name := range iface.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		resolved := substituteRefParams(iface.Fields[name], env)
		if _, seen := byName[name]; !seen {
			*order = append(*order, name)
		}
		byName[name] = FieldEntry{Name: name, Type: resolved}
	}
}
