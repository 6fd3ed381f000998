package emit

import (
	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

// serializeFnName/deserializeFnName name the per-field adapter functions
// generated for a Fn-typed struct field, per spec.md §4.4.5.
func serializeFnName(field string) string   { return "__tsb__serialize_" + field }
func deserializeFnName(field string) string { return "__tsb__deserialize_" + field }

// emitFnFieldAdapters renders the serializer/deserializer pair for a
// Fn-typed field named field (already snake_cased), per spec.md §4.4.5:
// the serializer wraps the field's native callable in the same
// JS-exposed closure shape func.go's buildClosure builds for wrapper
// arguments, and serializes the closure's JsValue; the deserializer casts
// the incoming JsValue to a JS function handle and produces a native
// callable that marshals each argument forward to a JsValue, invokes the
// function, and converts the result back.
func emitFnFieldAdapters(w *Writer, r *resolve.Resolver, field string, t ir.TypeInfo, ctxFile string) {
	fnType := RustTypeName(r, t, ctxFile)
	argTypes := fnArgTypes(r, t, ctxFile)
	retType := fnRetType(r, t, ctxFile)

	w.Writefmtln("fn %s<S>(value: &%s, serializer: S) -> Result<S::Ok, S::Error>", serializeFnName(field), fnType)
	w.Block("where\n    S: serde::Serializer", func() {
		w.Writefmtln("let f = value.clone();")
		w.Writefmtln("let closure = %s;", buildClosure(r, "f", t, ctxFile))
		w.Writefmtln("serialize_as_jsvalue(closure.as_ref(), serializer)")
	})
	w.Writefmtln("")

	w.Writefmtln("fn %s<'de, D>(deserializer: D) -> Result<%s, D::Error>", deserializeFnName(field), fnType)
	w.Block("where\n    D: serde::Deserializer<'de>", func() {
		w.Writefmtln("let value = deserialize_as_jsvalue(deserializer)?;")
		w.Writefmtln("let func: js_sys::Function = value.unchecked_into();")
		w.Writefmtln("Ok(Box::new(move |%s| -> Result<%s, JsErr> {", fnArgsJSNamed(r, t, ctxFile), fnReturnJS(r, t, ctxFile))
		w.Indent()
		w.Writefmtln("let args = js_sys::Array::new();")
		for i, at := range argTypes {
			w.Writefmtln("args.push(&%s);", toJsValueExpr(r, fnArgName(i), at, ctxFile))
		}
		w.Writefmtln("let result = func.apply(&JsValue::NULL, &args).map_err(JsErr::from)?;")
		w.Writefmtln("Ok(%s)", jsToRustExpr(r, "result", retType, ctxFile))
		w.Outdent()
		w.Writefmtln("}))")
	})
	w.Writefmtln("")
}

// toJsValueExpr renders an expression converting a native value into the
// JsValue a js_sys::Array push or js_sys::Function call argument needs;
// complex (SerdeJson-classified) values go through the runtime's
// IntoSerdeOrDefault bridge, everything else through JsValue::from.
func toJsValueExpr(r *resolve.Resolver, varName string, t ir.TypeInfo, ctxFile string) string {
	if r.ArgumentSerializationType(t, ctxFile) == resolve.SerializationSerdeJSON {
		return varName + ".into_serde_or_default()"
	}
	return "JsValue::from(" + varName + ")"
}
