package emit

import "github.com/ctron/ts-bindgen/ir"

// emitAlias renders t (Kind == Alias) as a type alias to the target's
// projection, preserving exportedness, per spec.md §4.4.4 "Alias".
func (e *Emitter) emitAlias(w *Writer, t *ir.Type) {
	name := rustName(t.Name)
	target := RustTypeName(e.Resolver, ir.Ref(t.Info.Target), t.Ctx.File)
	w.Writefmtln("%s type %s%s = %s;", visibility(t.Exported), name, typeParamList(t.Info.TypeParams), target)
}
