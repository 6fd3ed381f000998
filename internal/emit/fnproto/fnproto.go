// Package fnproto implements the function-prototype unification described
// in spec.md §4.4.1: a single polymorphic view over ordinary functions,
// constructors, property accessors, and callable-typed values, used by
// every function-like emission path. Grounded on the teacher's capability
// interfaces (moduleMember in pkg/tfgen/generate.go): rather than a single
// interface with many trivial adapters, we use a tagged variant, per the
// "Design Notes" guidance in spec.md §9 ("composes better with ownership
// since parameter iteration borrows from the entity").
package fnproto

import (
	"strconv"

	"github.com/ctron/ts-bindgen/ir"
)

// Kind tags which of the five entity kinds a Prototype wraps.
type Kind int

const (
	KindFunc Kind = iota
	KindCtor
	KindGetter
	KindSetter
	KindCallable
)

// Prototype is the unified, read-only view over a function-like entity.
type Prototype struct {
	kind     Kind
	receiver string // non-empty when IsMember(): the receiver's nominal type name
	params   []ir.Param
	args     []ir.Param
	ret      ir.TypeInfo
	isMember bool
	variadic bool
}

func (p Prototype) Kind() Kind              { return p.kind }
func (p Prototype) Parameters() []ir.Param  { return p.params }
func (p Prototype) Arguments() []ir.Param   { return p.args }
func (p Prototype) ReturnType() ir.TypeInfo { return p.ret }
func (p Prototype) IsMember() bool          { return p.isMember }
func (p Prototype) IsVariadic() bool        { return p.variadic }
func (p Prototype) Receiver() string        { return p.receiver }

const selfParamName = "self"

// FromFunc builds a Prototype for an ordinary function or method.
// Parameters = (self if f.ClassName set) ++ declared params; Arguments =
// declared params only; spec.md §4.4.1.
func FromFunc(f ir.Func) Prototype {
	args := f.Params
	params := args
	isMember := f.ClassName != ""
	if isMember {
		self := ir.Param{Name: selfParamName, Type: ir.Ref(ir.TypeRef{Name: ir.LocalNameRef(f.ClassName)})}
		params = append([]ir.Param{self}, args...)
	}
	return Prototype{
		kind:     KindFunc,
		receiver: f.ClassName,
		params:   params,
		args:     args,
		ret:      f.Return,
		isMember: isMember,
		variadic: lastIsVariadic(args),
	}
}

// FromCtor builds a Prototype for a class constructor. Parameters =
// Arguments = declared params; return_type = the enclosing class ref;
// is_member = true, per spec.md §4.4.1.
func FromCtor(className string, c ir.Ctor) Prototype {
	return Prototype{
		kind:     KindCtor,
		receiver: className,
		params:   c.Params,
		args:     c.Params,
		ret:      ir.Ref(ir.TypeRef{Name: ir.LocalNameRef(className)}),
		isMember: true,
		variadic: lastIsVariadic(c.Params),
	}
}

// FromGetter builds a Prototype for a property getter: parameters = [self],
// return_type = T.
func FromGetter(className, propName string, t ir.TypeInfo) Prototype {
	self := ir.Param{Name: selfParamName, Type: ir.Ref(ir.TypeRef{Name: ir.LocalNameRef(className)})}
	return Prototype{
		kind:     KindGetter,
		receiver: className,
		params:   []ir.Param{self},
		args:     nil,
		ret:      t,
		isMember: true,
	}
}

// FromSetter builds a Prototype for a property setter: parameters =
// [self(mut), value:T], return_type = void.
func FromSetter(className, propName string, t ir.TypeInfo) Prototype {
	self := ir.Param{Name: selfParamName, Type: ir.Ref(ir.TypeRef{Name: ir.LocalNameRef(className)})}
	value := ir.Param{Name: "value", Type: t}
	return Prototype{
		kind:     KindSetter,
		receiver: className,
		params:   []ir.Param{self, value},
		args:     []ir.Param{value},
		ret:      ir.PrimitiveType(ir.PrimitiveVoid),
		isMember: true,
	}
}

// FromCallable builds a Prototype for a TypeRef to Builtin::Fn: parameters
// = all-but-last of ref.TypeParam, named arg0..argN; return_type = last
// type_param, per spec.md §3 invariant ("the last type-param is the
// return type") and §4.4.1.
func FromCallable(ref ir.TypeRef) Prototype {
	if len(ref.TypeParam) == 0 {
		return Prototype{kind: KindCallable, ret: ir.PrimitiveType(ir.PrimitiveVoid)}
	}
	argTypes := ref.TypeParam[:len(ref.TypeParam)-1]
	ret := ref.TypeParam[len(ref.TypeParam)-1]
	params := make([]ir.Param, len(argTypes))
	for i, t := range argTypes {
		params[i] = ir.Param{Name: argName(i), Type: t}
	}
	return Prototype{
		kind:   KindCallable,
		params: params,
		args:   params,
		ret:    ret,
	}
}

func argName(i int) string {
	return "arg" + strconv.Itoa(i)
}

func lastIsVariadic(params []ir.Param) bool {
	if len(params) == 0 {
		return false
	}
	return params[len(params)-1].IsVariadic
}
