package emit

import (
	"fmt"

	"github.com/ctron/ts-bindgen/internal/emit/fnproto"
	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

// emitFunc renders t (Kind == Func) as a top-level extern declaration
// followed by its wrapper function, per spec.md §4.4.4 "Func (top-level)"
// and §4.4.2 "Per-function artifacts".
func (e *Emitter) emitFunc(w *Writer, t *ir.Type) {
	name := rustName(t.Name)
	proto := fnproto.FromFunc(*t.Info.FuncInfo)
	e.emitExternDecl(w, t.Name.Ident.Leaf(), internExternName(name), proto, t.Ctx.File)
	w.Writefmtln("")
	e.emitWrapper(w, name, internExternName(name), "", proto, t.Ctx.File)
}

func internExternName(name string) string { return name + "_extern" }

// emitExternDecl renders the internal extern declaration of 4.4.2 item 1:
// a signature using the exposed-to-js projection, annotated with js_name,
// variadic, and catch attributes. Callers needing additional wasm_bindgen
// attribute clauses (e.g. "method", "constructor") use
// emitExternDeclNoAttr and write their own attribute line.
func (e *Emitter) emitExternDecl(w *Writer, jsName, externName string, proto fnproto.Prototype, ctxFile string) {
	attrs := fmt.Sprintf("js_name = %q, catch", jsName)
	if proto.IsVariadic() {
		attrs += ", variadic"
	}
	w.Writefmtln("#[wasm_bindgen(%s)]", attrs)
	e.emitExternDeclNoAttr(w, externName, proto, ctxFile)
}

// emitExternDeclNoAttr renders just the `fn name(params) -> ret;` line,
// for callers that have already written their own wasm_bindgen attribute.
func (e *Emitter) emitExternDeclNoAttr(w *Writer, externName string, proto fnproto.Prototype, ctxFile string) {
	params := ""
	for i, p := range proto.Parameters() {
		if i > 0 {
			params += ", "
		}
		params += fmt.Sprintf("%s: %s", snakeName(p.Name), ProjectParam(e.Resolver, p, ctxFile, ExposedToJSParam))
	}
	w.Writefmtln("fn %s(%s) -> %s;", externName, params, Project(e.Resolver, proto.ReturnType(), ctxFile, ExposedToJSReturn))
}

// emitWrapper renders 4.4.2 item 2: the native-idiomatic wrapper. receiver
// is the expression to invoke externName through ("" for a free function,
// "self." for a class method); closures are built for every Fn-typed
// argument before the call, per spec.md §4.4.2.
func (e *Emitter) emitWrapper(w *Writer, wrapperName, externName, receiver string, proto fnproto.Prototype, ctxFile string) {
	params := ""
	for i, p := range proto.Arguments() {
		if i > 0 {
			params += ", "
		}
		params += fmt.Sprintf("%s: %s", snakeName(p.Name), ProjectParam(e.Resolver, p, ctxFile, ExposedToRustParam))
	}
	selfParam := ""
	if proto.IsMember() && proto.Kind() != fnproto.KindCtor {
		selfParam = "&self"
		if params != "" {
			selfParam += ", "
		}
	}
	w.Writefmtln("pub fn %s(%s%s) -> Result<%s, JsErr> {", snakeName(wrapperName), selfParam, params,
		RustTypeName(e.Resolver, proto.ReturnType(), ctxFile))
	w.Indent()

	callArgs := ""
	for i, p := range proto.Arguments() {
		if i > 0 {
			callArgs += ", "
		}
		varName := snakeName(p.Name)
		switch {
		case p.IsVariadic:
			// Already projected as &[T] on both sides (ProjectParam
			// above); forward the slice through unchanged.
			callArgs += varName
		case e.Resolver.ArgumentSerializationType(p.Type, ctxFile) == resolve.SerializationFn:
			closureVar := varName + "_closure"
			w.Writefmtln("let %s = %s;", closureVar, buildClosure(e.Resolver, varName, p.Type, ctxFile))
			callArgs += closureVar + ".as_ref()"
		default:
			callArgs += rustToJSExpr(e.Resolver, varName, p.Type, ctxFile)
		}
	}
	if proto.IsMember() {
		w.Writefmtln("let raw = %s%s(%s)?;", receiver, externName, callArgs)
	} else {
		w.Writefmtln("let raw = %s(%s)?;", externName, callArgs)
	}
	w.Writefmtln("Ok(%s)", jsToRustExpr(e.Resolver, "raw", proto.ReturnType(), ctxFile))
	w.Outdent()
	w.Writefmtln("}")
}

// buildClosure renders the Closure adapter for a Fn-typed argument: a
// closure taking the JS-projected argument types that invokes the
// user-supplied callable and wraps it for the JS runtime. Arguments and
// the result are forwarded unchanged, with no per-argument or result
// conversion; the callable's own type (builtinRustName) is rendered with
// the same JS-projected argument and return types.
func buildClosure(r *resolve.Resolver, varName string, t ir.TypeInfo, ctxFile string) string {
	named := fnArgsJSNamed(r, t, ctxFile)
	argNames := fnArgNames(r, t, ctxFile)
	args := fnArgsJS(r, t, ctxFile)
	ret := fnReturnJS(r, t, ctxFile)
	return fmt.Sprintf(
		"Closure::wrap(Box::new(move |%s| -> Result<%s, JsErr> { %s(%s) }) as Box<dyn Fn(%s) -> Result<%s, JsErr>>)",
		named, ret, varName, argNames, args, ret,
	)
}

func rustToJSExpr(r *resolve.Resolver, varName string, t ir.TypeInfo, ctxFile string) string {
	switch r.ArgumentSerializationType(t, ctxFile) {
	case resolve.SerializationRef:
		return "&" + varName
	case resolve.SerializationSerdeJSON:
		return varName + ".into_serde_or_default()"
	default:
		return varName
	}
}

func jsToRustExpr(r *resolve.Resolver, varName string, t ir.TypeInfo, ctxFile string) string {
	switch r.SerializationType(t, ctxFile) {
	case resolve.SerializationRaw, resolve.SerializationRef:
		return varName + ".into()"
	default:
		return "from_serde_or_undefined(" + varName + ")"
	}
}
