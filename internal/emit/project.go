package emit

import (
	"fmt"

	"github.com/ctron/ts-bindgen/internal/ident"
	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

// Position names one of the four call sites a TypeRef can be projected
// into, per spec.md §4.4.3.
type Position int

const (
	ExposedToJSParam Position = iota
	ExposedToJSReturn
	ExposedToRustParam
	ExposedToRustReturn
)

// Project renders t's projection at pos, following resolve.Resolver's
// classification of t's SerializationType (for params) so the same IR
// shape renders differently depending on where it is used, per the
// §4.4.3 table.
func Project(r *resolve.Resolver, t ir.TypeInfo, ctxFile string, pos Position) string {
	switch pos {
	case ExposedToJSParam:
		return projectToJS(r, t, ctxFile, r.SerializationType(t, ctxFile))
	case ExposedToJSReturn:
		return fmt.Sprintf("Result<%s, JsErr>", projectToJS(r, t, ctxFile, r.SerializationType(t, ctxFile)))
	case ExposedToRustParam:
		return projectToRustParam(r, t, ctxFile)
	case ExposedToRustReturn:
		return RustTypeName(r, t, ctxFile)
	default:
		return RustTypeName(r, t, ctxFile)
	}
}

func projectToJS(r *resolve.Resolver, t ir.TypeInfo, ctxFile string, s resolve.Serialization) string {
	switch s {
	case resolve.SerializationRaw:
		return RustTypeName(r, t, ctxFile)
	case resolve.SerializationRef:
		return "&" + RustTypeName(r, t, ctxFile)
	case resolve.SerializationFn:
		return fmt.Sprintf("&Closure<dyn Fn(%s) -> Result<%s, JsErr>>",
			fnArgsJS(r, t, ctxFile), fnReturnJS(r, t, ctxFile))
	default:
		return "JsValue"
	}
}

func projectToRustParam(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) string {
	s := r.ArgumentSerializationType(t, ctxFile)
	switch s {
	case resolve.SerializationRef:
		return "&" + RustTypeName(r, t, ctxFile)
	case resolve.SerializationFn:
		return "&'static " + RustTypeName(r, t, ctxFile)
	default:
		return RustTypeName(r, t, ctxFile)
	}
}

// ProjectParam renders p's projection at pos, special-casing a variadic
// parameter (only ever the last Param of a Func, spec.md line 67) as a
// slice of its element type rather than p.Type's own projection, per
// spec.md §8 ("A variadic function's last parameter renders as a slice
// type in all four projections").
func ProjectParam(r *resolve.Resolver, p ir.Param, ctxFile string, pos Position) string {
	if !p.IsVariadic {
		return Project(r, p.Type, ctxFile, pos)
	}
	elem := p.Type
	if elem.Kind == ir.KindArray && elem.Elem != nil {
		elem = *elem.Elem
	}
	switch pos {
	case ExposedToJSParam:
		return "&[" + projectToJS(r, elem, ctxFile, r.SerializationType(elem, ctxFile)) + "]"
	case ExposedToRustParam:
		return "&[" + projectToRustParam(r, elem, ctxFile) + "]"
	default:
		return Project(r, p.Type, ctxFile, pos)
	}
}

// fnArgTypes/fnRetType split a Fn-typed reference's type_params into its
// callable's argument types and return type, per the builtin Fn convention
// (spec.md §3: "the last type-param is the return type").
func fnArgTypes(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) []ir.TypeInfo {
	resolved, ok := r.ResolveTargetType(t, ctxFile)
	if !ok || resolved.Kind != ir.KindRef || len(resolved.Target.TypeParam) == 0 {
		return nil
	}
	return resolved.Target.TypeParam[:len(resolved.Target.TypeParam)-1]
}

func fnRetType(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) ir.TypeInfo {
	resolved, ok := r.ResolveTargetType(t, ctxFile)
	if !ok || resolved.Kind != ir.KindRef || len(resolved.Target.TypeParam) == 0 {
		return ir.PrimitiveType(ir.PrimitiveVoid)
	}
	return resolved.Target.TypeParam[len(resolved.Target.TypeParam)-1]
}

// fnArgsJS/fnReturnJS project the parameter and return type of a Fn-typed
// reference's underlying callable signature, used when rendering the
// Closure<dyn Fn(...)> projection above.
func fnArgsJS(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) string {
	out := ""
	for i, p := range fnArgTypes(r, t, ctxFile) {
		if i > 0 {
			out += ", "
		}
		out += Project(r, p, ctxFile, ExposedToJSParam)
	}
	return out
}

func fnReturnJS(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) string {
	resolved, ok := r.ResolveTargetType(t, ctxFile)
	if !ok || resolved.Kind != ir.KindRef || len(resolved.Target.TypeParam) == 0 {
		return "()"
	}
	return Project(r, fnRetType(r, t, ctxFile), ctxFile, ExposedToJSParam)
}

// fnArgsJSNamed is fnArgsJS with a synthesized arg0..argN name attached to
// each parameter, for contexts that need an actual closure parameter list
// rather than a bare type list (e.g. Closure::wrap's |arg0: T0, ...| body).
func fnArgsJSNamed(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) string {
	out := ""
	for i, p := range fnArgTypes(r, t, ctxFile) {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %s", fnArgName(i), Project(r, p, ctxFile, ExposedToJSParam))
	}
	return out
}

// fnArgNames renders the bare arg0, arg1, ... names matching
// fnArgsJSNamed's parameter list, for forwarding them unchanged into a
// call expression.
func fnArgNames(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) string {
	out := ""
	for i := range fnArgTypes(r, t, ctxFile) {
		if i > 0 {
			out += ", "
		}
		out += fnArgName(i)
	}
	return out
}

func fnArgName(i int) string {
	return fmt.Sprintf("arg%d", i)
}

// RustTypeName renders t's bare native type name, ignoring boundary
// projection; used as the base every Position wraps (&T, Result<T,...>,
// Closure<dyn Fn(...)>).
func RustTypeName(r *resolve.Resolver, t ir.TypeInfo, ctxFile string) string {
	switch t.Kind {
	case ir.KindPrimitive:
		return primitiveRustName(t.Primitive)
	case ir.KindRef:
		if t.Target.Name.Ident.Kind == ir.IdentBuiltin {
			return builtinRustName(r, t.Target.Name.Ident.Builtin, t.Target.TypeParam, t, ctxFile)
		}
		name := ident.Sanitize(t.Target.Name.Ident.Leaf(), ident.Raw).Render()
		if len(t.Target.TypeParam) == 0 {
			return name
		}
		args := ""
		for i, p := range t.Target.TypeParam {
			if i > 0 {
				args += ", "
			}
			args += RustTypeName(r, p, ctxFile)
		}
		return fmt.Sprintf("%s<%s>", name, args)
	case ir.KindArray:
		return fmt.Sprintf("Vec<%s>", RustTypeName(r, *t.Elem, ctxFile))
	case ir.KindOptional:
		return fmt.Sprintf("Option<%s>", RustTypeName(r, *t.Elem, ctxFile))
	case ir.KindMapped:
		return fmt.Sprintf("HashMap<String, %s>", RustTypeName(r, *t.Elem, ctxFile))
	case ir.KindAlias:
		return RustTypeName(r, ir.Ref(t.Target), ctxFile)
	case ir.KindClass, ir.KindInterface, ir.KindEnum:
		return "JsValue"
	default:
		return "JsValue"
	}
}

// builtinRustName renders a Ref naming a Builtin TypeIdent, per spec.md
// §4.4.3: the scalar builtins map to their Rust primitive, Array/Optional
// thread their single type parameter through Vec/Option, and Fn renders
// as the boxed-closure shape shared with the Closure<...> projection
// above. Date and Promise are opaque js_sys handles.
func builtinRustName(r *resolve.Resolver, b ir.Builtin, typeParams []ir.TypeInfo, t ir.TypeInfo, ctxFile string) string {
	switch b {
	case ir.BuiltinFn:
		return fmt.Sprintf("dyn Fn(%s) -> Result<%s, JsErr>", fnArgsJS(r, t, ctxFile), fnReturnJS(r, t, ctxFile))
	case ir.BuiltinArray:
		if len(typeParams) == 0 {
			return "Vec<JsValue>"
		}
		return fmt.Sprintf("Vec<%s>", RustTypeName(r, typeParams[0], ctxFile))
	case ir.BuiltinOptional:
		if len(typeParams) == 0 {
			return "Option<JsValue>"
		}
		return fmt.Sprintf("Option<%s>", RustTypeName(r, typeParams[0], ctxFile))
	case ir.BuiltinDate:
		return "js_sys::Date"
	case ir.BuiltinPromise:
		return "js_sys::Promise"
	case ir.BuiltinPrimitiveNumber:
		return primitiveRustName(ir.PrimitiveNumber)
	case ir.BuiltinPrimitiveBoolean:
		return primitiveRustName(ir.PrimitiveBoolean)
	case ir.BuiltinPrimitiveString:
		return primitiveRustName(ir.PrimitiveString)
	case ir.BuiltinPrimitiveBigInt:
		return primitiveRustName(ir.PrimitiveBigInt)
	case ir.BuiltinPrimitiveVoid:
		return primitiveRustName(ir.PrimitiveVoid)
	case ir.BuiltinPrimitiveUndefined:
		return primitiveRustName(ir.PrimitiveUndefined)
	case ir.BuiltinPrimitiveNull:
		return primitiveRustName(ir.PrimitiveNull)
	case ir.BuiltinPrimitiveSymbol:
		return primitiveRustName(ir.PrimitiveSymbol)
	case ir.BuiltinPrimitiveAny, ir.BuiltinPrimitiveObject:
		return "JsValue"
	default:
		return "JsValue"
	}
}

func primitiveRustName(p ir.PrimitiveKind) string {
	switch p {
	case ir.PrimitiveNumber:
		return "f64"
	case ir.PrimitiveBoolean:
		return "bool"
	case ir.PrimitiveString:
		return "String"
	case ir.PrimitiveBigInt:
		return "i64"
	case ir.PrimitiveVoid, ir.PrimitiveUndefined:
		return "()"
	case ir.PrimitiveNull:
		return "()"
	case ir.PrimitiveSymbol:
		return "JsValue"
	default:
		return "JsValue"
	}
}
