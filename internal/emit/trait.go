package emit

import (
	"fmt"
	"sort"

	"github.com/ctron/ts-bindgen/internal/emit/fnproto"
	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

func traitName(entityName string) string { return entityName + "Trait" }

// emitTraitForInterface renders <Name>Trait for an Interface, per spec.md
// §4.4.6: a getter/setter pair per field (interfaces have no methods of
// their own; their "members" are just fields).
func (e *Emitter) emitTraitForInterface(w *Writer, name string, t *ir.Type, fields []resolve.FieldEntry) {
	supers := superTraitNames(t.Info.Extends)
	header := traitName(name)
	if len(supers) > 0 {
		header += ": " + joinStrs(supers, " + ")
	}
	w.Block("pub trait "+header, func() {
		for _, f := range fields {
			ret := RustTypeName(e.Resolver, ir.Ref(f.Type), t.Ctx.File)
			w.Writefmtln("fn %s(&self) -> Result<%s, JsErr>;", snakeName(f.Name), ret)
			w.Writefmtln("fn set_%s(&mut self, value: %s) -> Result<(), JsErr>;", snakeName(f.Name), ret)
		}
	})
	e.emitSuperDelegations(w, name, t, interfaceDelegate)
}

// emitTraitForClass renders <Name>Trait for a Class, per spec.md §4.4.6:
// new(...) -> Self for the constructor, <snake_name>(&self, ...) -> for
// each method, and the getter/setter pair for each property.
func (e *Emitter) emitTraitForClass(w *Writer, name string, t *ir.Type) {
	supers := superTraitNames(classSuperRefs(t.Info))
	header := traitName(name)
	if len(supers) > 0 {
		header += ": " + joinStrs(supers, " + ")
	}
	w.Block("pub trait "+header, func() {
		for _, mname := range sortedMemberNames(t.Info.Members) {
			m := t.Info.Members[mname]
			switch m.Kind {
			case ir.MemberConstructor:
				w.Writefmtln("fn new(%s) -> Self;", rustParamList(e.Resolver, fnproto.FromCtor(name, *m.Constructor), t.Ctx.File))
			case ir.MemberMethod:
				proto := fnproto.FromFunc(*m.Method)
				w.Writefmtln("fn %s(&self%s) -> Result<%s, JsErr>;", snakeName(mname), prefixedArgList(e.Resolver, proto, t.Ctx.File),
					RustTypeName(e.Resolver, proto.ReturnType(), t.Ctx.File))
			case ir.MemberProperty:
				ret := RustTypeName(e.Resolver, ir.Ref(*m.Property), t.Ctx.File)
				w.Writefmtln("fn %s(&self) -> Result<%s, JsErr>;", snakeName(mname), ret)
				w.Writefmtln("fn set_%s(&mut self, value: %s) -> Result<(), JsErr>;", snakeName(mname), ret)
			}
		}
	})
	e.emitSuperDelegations(w, name, t, classDelegate)
}

type delegateStrategy func(receiverVar, superTypeName string) string

func interfaceDelegate(receiverVar, superTypeName string) string {
	// The flattened struct already carries every inherited field
	// directly (resolve.RecursiveFields), so delegation is just `self`.
	return "self"
}

func classDelegate(receiverVar, superTypeName string) string {
	return fmt.Sprintf("AsRef::<%s>::as_ref(self)", superTypeName)
}

// emitSuperDelegations emits, for every direct super-type of t (Extends
// for an Interface; Super and Implements for a Class), a concrete impl of
// that super-type's trait delegating each method to the matching field
// (Interface) or to a fully-qualified call through an AsRef cast (Class).
// Super-types of those super-types are not visited, so no impl is emitted
// for them.
func (e *Emitter) emitSuperDelegations(w *Writer, name string, t *ir.Type, strategy delegateStrategy) {
	supers := classSuperRefs(t.Info)
	if t.Info.Kind == ir.KindInterface {
		supers = t.Info.Extends
	}
	for _, super := range supers {
		target, ok := e.Resolver.Program().Lookup(super.Name)
		if !ok {
			continue
		}
		superName := rustName(super.Name)
		w.Block(fmt.Sprintf("impl %s for %s", traitName(superName), name), func() {
			if target.Info.Kind == ir.KindInterface {
				env := resolve.ApplyTypeParams(super, target.Info.TypeParams, resolve.Env{})
				for _, f := range e.Resolver.RecursiveFields(target.Info, superName, super.Name.File, env) {
					ret := RustTypeName(e.Resolver, ir.Ref(f.Type), t.Ctx.File)
					w.Writefmtln("fn %s(&self) -> Result<%s, JsErr> { Ok(%s.%s.clone()) }",
						snakeName(f.Name), ret, strategy("", superName), snakeName(f.Name))
					w.Writefmtln("fn set_%s(&mut self, value: %s) -> Result<(), JsErr> { self.%s = value; Ok(()) }",
						snakeName(f.Name), ret, snakeName(f.Name))
				}
			} else {
				for _, mname := range sortedMemberNames(target.Info.Members) {
					m := target.Info.Members[mname]
					if m.Kind != ir.MemberMethod {
						continue
					}
					proto := fnproto.FromFunc(*m.Method)
					call := strategy("", superName)
					for _, param := range proto.Arguments() {
						call += ", " + snakeName(param.Name)
					}
					w.Writefmtln("fn %s(&self%s) -> Result<%s, JsErr> { %s::%s(%s) }",
						snakeName(mname), prefixedArgList(e.Resolver, proto, t.Ctx.File),
						RustTypeName(e.Resolver, proto.ReturnType(), t.Ctx.File),
						superName, snakeName(mname), call)
				}
			}
		})
	}
}

func classSuperRefs(info ir.TypeInfo) []ir.TypeRef {
	var out []ir.TypeRef
	if info.Super != nil {
		out = append(out, *info.Super)
	}
	out = append(out, info.Implements...)
	return out
}

func superTraitNames(refs []ir.TypeRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = traitName(rustName(r.Name))
	}
	return out
}

func sortedMemberNames(m map[string]ir.Member) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func joinStrs(items []string, sep string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += sep
		}
		out += s
	}
	return out
}

func rustParamList(r *resolve.Resolver, p fnproto.Prototype, ctxFile string) string {
	out := ""
	for i, param := range p.Arguments() {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %s", snakeName(param.Name), ProjectParam(r, param, ctxFile, ExposedToRustParam))
	}
	return out
}

func prefixedArgList(r *resolve.Resolver, p fnproto.Prototype, ctxFile string) string {
	args := rustParamList(r, p, ctxFile)
	if args == "" {
		return ""
	}
	return ", " + args
}
