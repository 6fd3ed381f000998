package emit

import "github.com/ctron/ts-bindgen/ir"

// emitTuple renders t (Kind == Tuple) as a tuple struct with public
// positional fields, per spec.md §4.4.4 "Tuple".
func (e *Emitter) emitTuple(w *Writer, t *ir.Type) {
	name := rustName(t.Name)
	fields := make([]string, len(t.Info.Items))
	for i, item := range t.Info.Items {
		fields[i] = "pub " + RustTypeName(e.Resolver, item, t.Ctx.File)
	}
	w.Writefmtln("#[derive(Clone, Serialize, Deserialize)]")
	w.Writefmtln("%s struct %s(%s);", visibility(t.Exported), name, joinStrs(fields, ", "))
}
