package emit

import (
	"fmt"

	"github.com/ctron/ts-bindgen/internal/emit/fnproto"
	"github.com/ctron/ts-bindgen/ir"
)

// emitClass renders t (Kind == Class) as an opaque extern handle type plus
// its wrapper methods and trait definition, per spec.md §4.4.4 "Class".
func (e *Emitter) emitClass(w *Writer, t *ir.Type) error {
	name := rustName(t.Name)

	w.Writefmtln("#[wasm_bindgen]")
	w.Block("extern \"C\"", func() {
		w.Writefmtln("#[wasm_bindgen(js_name = %q)]", t.Name.Ident.Leaf())
		w.Writefmtln("pub type %s;", name)
		w.Writefmtln("")

		for _, mname := range sortedMemberNames(t.Info.Members) {
			m := t.Info.Members[mname]
			switch m.Kind {
			case ir.MemberConstructor:
				proto := fnproto.FromCtor(name, *m.Constructor)
				w.Writefmtln("#[wasm_bindgen(constructor, js_class = %q)]", name)
				e.emitExternDeclNoAttr(w, internExternName("new_"+name), proto, t.Ctx.File)
			case ir.MemberMethod:
				proto := fnproto.FromFunc(*m.Method)
				variadic := ""
				if proto.IsVariadic() {
					variadic = ", variadic"
				}
				w.Writefmtln("#[wasm_bindgen(method, js_class = %q, js_name = %q, catch%s)]", name, mname, variadic)
				e.emitExternDeclNoAttr(w, externFnName(mname), proto, t.Ctx.File)
			case ir.MemberProperty:
				propType := ir.Ref(*m.Property)
				getter := fnproto.FromGetter(name, mname, propType)
				setter := fnproto.FromSetter(name, mname, propType)
				w.Writefmtln("#[wasm_bindgen(method, getter = %q)]", mname)
				w.Writefmtln("fn %s(this: &%s) -> %s;", externGetterName(mname), name,
					Project(e.Resolver, getter.ReturnType(), t.Ctx.File, ExposedToJSParam))
				w.Writefmtln("#[wasm_bindgen(method, setter = %q)]", mname)
				w.Writefmtln("fn %s(this: &%s, value: %s);", externSetterName(mname), name,
					Project(e.Resolver, setter.Arguments()[0].Type, t.Ctx.File, ExposedToJSParam))
			}
			w.Writefmtln("")
		}
	})

	w.Block(fmt.Sprintf("impl %s", name), func() {
		for _, mname := range sortedMemberNames(t.Info.Members) {
			m := t.Info.Members[mname]
			e.emitClassWrapper(w, name, mname, m, t.Ctx.File)
		}
	})

	w.Writefmtln("impl Clone for %s {", name)
	w.Indent()
	w.Writefmtln("fn clone(&self) -> Self { JsCast::unchecked_into(JsValue::from(self).clone()) }")
	w.Outdent()
	w.Writefmtln("}")
	w.Writefmtln("")
	w.Writefmtln("impl serde::Serialize for %s {", name)
	w.Indent()
	w.Writefmtln("fn serialize<S: serde::Serializer>(&self, s: S) -> Result<S::Ok, S::Error> { serialize_as_jsvalue(self, s) }")
	w.Outdent()
	w.Writefmtln("}")
	w.Writefmtln("")
	w.Writefmtln("impl<'de> serde::Deserialize<'de> for %s {", name)
	w.Indent()
	w.Writefmtln("fn deserialize<D: serde::Deserializer<'de>>(d: D) -> Result<Self, D::Error> { deserialize_as_jsvalue(d) }")
	w.Outdent()
	w.Writefmtln("}")
	w.Writefmtln("")

	e.emitTraitForClass(w, name, t)
	return nil
}

func (e *Emitter) emitClassWrapper(w *Writer, className, mname string, m ir.Member, ctxFile string) {
	switch m.Kind {
	case ir.MemberConstructor:
		proto := fnproto.FromCtor(className, *m.Constructor)
		e.emitWrapper(w, "new", internExternName("new_"+className), "", proto, ctxFile)
	case ir.MemberMethod:
		proto := fnproto.FromFunc(*m.Method)
		e.emitWrapper(w, mname, externFnName(mname), "self.", proto, ctxFile)
	case ir.MemberProperty:
		propType := ir.Ref(*m.Property)
		getter := fnproto.FromGetter(className, mname, propType)
		setter := fnproto.FromSetter(className, mname, propType)
		ret := RustTypeName(e.Resolver, getter.ReturnType(), ctxFile)
		valueParam := setter.Arguments()[0]
		w.Writefmtln("pub fn %s(&self) -> %s { %s }", snakeName(mname), ret,
			jsToRustExpr(e.Resolver, "self."+externGetterName(mname)+"()", getter.ReturnType(), ctxFile))
		w.Writefmtln("pub fn set_%s(&self, value: %s) { self.%s(%s) }", snakeName(mname), ret,
			externSetterName(mname), rustToJSExpr(e.Resolver, valueParam.Name, valueParam.Type, ctxFile))
	}
	w.Writefmtln("")
}

func externFnName(m string) string     { return snakeName(m) + "_js" }
func externGetterName(m string) string { return snakeName(m) + "_js" }
func externSetterName(m string) string { return "set_" + snakeName(m) + "_js" }
