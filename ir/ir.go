// Package ir defines the intermediate representation produced by the
// (out-of-scope) declaration-file parser and consumed by the resolver and
// emitter. See SPEC_FULL.md §3 for the authoritative shape.
package ir

import "fmt"

// Builtin enumerates the TypeIdent variants that do not originate from a
// declared name in source.
type Builtin int

const (
	BuiltinFn Builtin = iota
	BuiltinPrimitiveAny
	BuiltinPrimitiveNumber
	BuiltinPrimitiveObject
	BuiltinPrimitiveBoolean
	BuiltinPrimitiveBigInt
	BuiltinPrimitiveString
	BuiltinPrimitiveSymbol
	BuiltinPrimitiveVoid
	BuiltinPrimitiveUndefined
	BuiltinPrimitiveNull
	BuiltinDate
	BuiltinPromise
	BuiltinArray
	BuiltinOptional
)

func (b Builtin) String() string {
	switch b {
	case BuiltinFn:
		return "Fn"
	case BuiltinPrimitiveAny:
		return "any"
	case BuiltinPrimitiveNumber:
		return "number"
	case BuiltinPrimitiveObject:
		return "object"
	case BuiltinPrimitiveBoolean:
		return "boolean"
	case BuiltinPrimitiveBigInt:
		return "bigint"
	case BuiltinPrimitiveString:
		return "string"
	case BuiltinPrimitiveSymbol:
		return "symbol"
	case BuiltinPrimitiveVoid:
		return "void"
	case BuiltinPrimitiveUndefined:
		return "undefined"
	case BuiltinPrimitiveNull:
		return "null"
	case BuiltinDate:
		return "Date"
	case BuiltinPromise:
		return "Promise"
	case BuiltinArray:
		return "Array"
	case BuiltinOptional:
		return "Optional"
	default:
		return fmt.Sprintf("Builtin(%d)", int(b))
	}
}

// TypeIdentKind tags the TypeIdent sum.
type TypeIdentKind int

const (
	IdentBuiltin TypeIdentKind = iota
	IdentLocalName
	IdentQualifiedName
	IdentGeneratedName
)

// TypeIdent is the tagged sum described in SPEC_FULL.md §3. Exactly one of
// the kind-specific fields is meaningful, selected by Kind.
type TypeIdent struct {
	Kind TypeIdentKind

	Builtin Builtin // valid when Kind == IdentBuiltin

	Local string // valid when Kind == IdentLocalName

	Qualified []string // valid when Kind == IdentQualifiedName; last segment is the leaf

	Generated GeneratedName // valid when Kind == IdentGeneratedName
}

// GeneratedName is synthesized by the parser for anonymous structural
// types (e.g. an inline object-literal parameter type). Base names the
// nearest enclosing named entity the anonymous type was found inside;
// Disambiguator distinguishes multiple anonymous types under the same
// Base. See SPEC_FULL.md §10 item 1.
type GeneratedName struct {
	Base          string
	Disambiguator int
}

func Builtin_(b Builtin) TypeIdent            { return TypeIdent{Kind: IdentBuiltin, Builtin: b} }
func LocalName(s string) TypeIdent            { return TypeIdent{Kind: IdentLocalName, Local: s} }
func QualifiedName(segs ...string) TypeIdent  { return TypeIdent{Kind: IdentQualifiedName, Qualified: segs} }
func Generated(base string, n int) TypeIdent {
	return TypeIdent{Kind: IdentGeneratedName, Generated: GeneratedName{Base: base, Disambiguator: n}}
}

// Leaf returns the simple (unqualified) name this ident denotes, used for
// naming generated struct/trait/enum identifiers.
func (t TypeIdent) Leaf() string {
	switch t.Kind {
	case IdentBuiltin:
		return t.Builtin.String()
	case IdentLocalName:
		return t.Local
	case IdentQualifiedName:
		if len(t.Qualified) == 0 {
			return ""
		}
		return t.Qualified[len(t.Qualified)-1]
	case IdentGeneratedName:
		return fmt.Sprintf("%s_%d", t.Generated.Base, t.Generated.Disambiguator)
	default:
		return ""
	}
}

func (t TypeIdent) String() string {
	switch t.Kind {
	case IdentBuiltin:
		return t.Builtin.String()
	case IdentLocalName:
		return t.Local
	case IdentQualifiedName:
		out := ""
		for i, s := range t.Qualified {
			if i > 0 {
				out += "."
			}
			out += s
		}
		return out
	case IdentGeneratedName:
		return t.Leaf()
	default:
		return "<invalid TypeIdent>"
	}
}

// TypeName pairs a file path with a TypeIdent, per SPEC_FULL.md §3.
type TypeName struct {
	File  string
	Ident TypeIdent
}

func (n TypeName) String() string { return n.File + "#" + n.Ident.String() }

// LocalNameRef is a convenience constructor for the TypeName of a simple
// local declaration, used when synthesizing a receiver type (e.g. a
// class's own name as the "self" parameter's type in fnproto).
func LocalNameRef(name string) TypeName { return TypeName{Ident: LocalName(name)} }

// Key flattens TypeName into a value usable as a Go map key (TypeIdent
// contains a slice, so TypeName itself is not comparable).
func (n TypeName) Key() TypeIdentKey {
	return TypeIdentKey{
		File:      n.File,
		Kind:      n.Ident.Kind,
		Builtin:   n.Ident.Builtin,
		Local:     n.Ident.Local,
		Qualified: joinDot(n.Ident.Qualified),
		Base:      n.Ident.Generated.Base,
		Disambig:  n.Ident.Generated.Disambiguator,
	}
}

func joinDot(segs []string) string {
	out := ""
	for i, s := range segs {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}

// TypeIdentKey is a comparable flattening of TypeName, suitable as a map
// key for the Program container (SPEC_FULL.md §3 "Lifecycle").
type TypeIdentKey struct {
	File      string
	Kind      TypeIdentKind
	Builtin   Builtin
	Local     string
	Qualified string
	Base      string
	Disambig  int
}

// Context back-points a Type to the file it came from and carries the
// generic-substitution environment active at its definition site.
type Context struct {
	File string
	Env  map[string]TypeRef // type-parameter name -> bound argument, if any
}

// TypeRef is an application of a name to zero or more type-parameter
// arguments: "an occurrence of a type", as opposed to Type, which is "the
// definition of a type".
type TypeRef struct {
	Name      TypeName
	TypeParam []TypeInfo
}

// Type is the IR's root entity: a named, exported-or-not definition with a
// shape (TypeInfo) and originating Context.
type Type struct {
	Name     TypeName
	Info     TypeInfo
	Exported bool
	Ctx      Context
}

func (t *Type) String() string {
	return fmt.Sprintf("Type{%s, exported=%v, %s}", t.Name, t.Exported, t.Info.Kind)
}
