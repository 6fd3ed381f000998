package emit

import "github.com/ctron/ts-bindgen/ir"

// emitIntersection renders t (Kind == Intersection), per spec.md §4.4.4
// "Intersection": if every member resolves to an Interface, synthesize a
// single Interface whose fields are the union of all member fields
// (later members win on collision) and whose indexer is the first
// indexer found, then emit that as an Interface. Otherwise, emit the
// first member's type unchanged.
func (e *Emitter) emitIntersection(w *Writer, t *ir.Type) error {
	allInterfaces := true
	var resolvedInfos []ir.TypeInfo
	for _, item := range t.Info.Items {
		resolved, ok := e.Resolver.ResolveTargetType(item, t.Ctx.File)
		if !ok || resolved.Kind != ir.KindInterface {
			allInterfaces = false
			break
		}
		resolvedInfos = append(resolvedInfos, *resolved)
	}

	if !allInterfaces {
		if len(t.Info.Items) == 0 {
			return nil
		}
		first := t.Info.Items[0]
		if first.Kind == ir.KindRef {
			// A bare Ref is not a top-level shape; emit it as an alias to
			// the referenced type.
			first = ir.Alias(first.Target, t.Info.TypeParams)
		}
		synthesized := &ir.Type{Name: t.Name, Info: first, Exported: t.Exported, Ctx: t.Ctx}
		return e.EmitType(w, synthesized)
	}

	fields := map[string]ir.TypeRef{}
	var indexer *ir.Indexer
	for _, info := range resolvedInfos {
		for name, ref := range info.Fields {
			fields[name] = ref
		}
		if indexer == nil && info.Indexer != nil {
			indexer = info.Indexer
		}
	}

	merged := ir.Interface(fields, indexer, nil, t.Info.TypeParams)
	synthesized := &ir.Type{Name: t.Name, Info: merged, Exported: t.Exported, Ctx: t.Ctx}
	return e.emitInterface(w, synthesized)
}
