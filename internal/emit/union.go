package emit

import (
	"fmt"
	"sort"

	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

// emitUnion renders t (Kind == Union) as an untagged sum type, per
// spec.md §4.4.4 "Union": partition members into (undefined, standard),
// sort standard members by field-count descending (stable, so ties keep
// source order), emit one case per standard member, then append a case
// per undefined member annotated to serialize and deserialize as
// undefined via the runtime's serialize_undefined/deserialize_undefined
// helpers.
func (e *Emitter) emitUnion(w *Writer, t *ir.Type) error {
	name := rustName(t.Name)

	var standard, undefined []ir.TypeInfo
	for _, item := range t.Info.Items {
		if isUndefinedMember(item) {
			undefined = append(undefined, item)
		} else {
			standard = append(standard, item)
		}
	}
	sort.SliceStable(standard, func(i, j int) bool {
		return fieldCount(e.Resolver, standard[i], t.Ctx.File) > fieldCount(e.Resolver, standard[j], t.Ctx.File)
	})

	w.Writefmtln("#[derive(Clone, Serialize, Deserialize)]")
	w.Writefmtln("#[serde(untagged)]")
	used := map[string]int{}
	w.Block(fmt.Sprintf("%s enum %s", visibility(t.Exported), name), func() {
		for _, item := range standard {
			caseName := Disambiguate(Fingerprint(e.Resolver, item, t.Ctx.File), used)
			if resolve.IsUninhabited(item) {
				w.Writefmtln("%s,", caseName)
			} else {
				w.Writefmtln("%s(%s),", caseName, RustTypeName(e.Resolver, item, t.Ctx.File))
			}
		}
		for range undefined {
			caseName := Disambiguate("UndefinedCase", used)
			w.Writefmtln("#[serde(serialize_with = \"serialize_undefined\", deserialize_with = \"deserialize_undefined\")]")
			w.Writefmtln("%s,", caseName)
		}
	})
	return nil
}

func isUndefinedMember(t ir.TypeInfo) bool {
	return t.Kind == ir.KindPrimitive && (t.Primitive == ir.PrimitiveUndefined || t.Primitive == ir.PrimitiveVoid)
}

// fieldCount approximates the "field-count" ordering key of spec.md
// §4.4.4: the number of fields on an Interface, the number of members on
// a Class, the arity of a Tuple, and 1 for every other (scalar) shape —
// enough to make wider structural types sort before narrower ones.
func fieldCount(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) int {
	resolved := t
	if target, ok := r.ResolveTargetType(t, ctxFile); ok {
		resolved = *target
	}
	switch resolved.Kind {
	case ir.KindInterface:
		return len(resolved.Fields)
	case ir.KindClass:
		return len(resolved.Members)
	case ir.KindTuple:
		return len(resolved.Items)
	default:
		return 1
	}
}
