package ir

// TypeInfoKind tags the TypeInfo sum described in SPEC_FULL.md §3.
type TypeInfoKind int

const (
	KindInterface TypeInfoKind = iota
	KindClass
	KindEnum
	KindAlias
	KindRef
	KindUnion
	KindIntersection
	KindTuple
	KindArray
	KindOptional
	KindMapped
	KindFunc
	KindCtor
	KindNamespaceImport
	KindPrimitive
)

func (k TypeInfoKind) String() string {
	names := [...]string{
		"Interface", "Class", "Enum", "Alias", "Ref", "Union", "Intersection",
		"Tuple", "Array", "Optional", "Mapped", "Func", "Ctor", "NamespaceImport", "Primitive",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// TypeParamConfig describes one generic type-parameter slot on an entity:
// its name, an optional default (used by apply_type_params when the
// applying Ref supplies fewer arguments than the target declares), and an
// optional constraint. Per spec.md §1 Non-goals, constraints are recorded
// but never enforced or projected.
type TypeParamConfig struct {
	Name       string
	Default    *TypeInfo
	Constraint *TypeInfo
}

// Indexer models a TypeScript index signature: `[key: string]: V`.
type Indexer struct {
	ReadOnly bool
	Value    TypeRef
}

// EnumMember is one case of an Enum, optionally carrying an explicit
// literal value (used as a discriminant when present).
type EnumMember struct {
	ID      string
	Literal *Literal
}

// Literal is a literal value attached to an EnumMember discriminant.
type Literal struct {
	IsString bool
	IsNumber bool
	IsBool   bool
	Str      string
	Num      float64
	Bool     bool
}

// MemberKind tags Member.
type MemberKind int

const (
	MemberConstructor MemberKind = iota
	MemberMethod
	MemberProperty
)

// Member is one entry of a Class or Interface member map.
type Member struct {
	Kind        MemberKind
	Constructor *Ctor    // valid when Kind == MemberConstructor
	Method      *Func    // valid when Kind == MemberMethod
	Property    *TypeRef // valid when Kind == MemberProperty
}

// Param is one parameter of a Func or Ctor.
type Param struct {
	Name       string
	Type       TypeInfo
	IsVariadic bool
	Ctx        Context
}

// Func models an ordinary function, method, or callable-typed value body.
// When ClassName is non-empty the function is a method and gains an
// implicit receiver parameter in HasFnPrototype's Parameters projection
// (SPEC_FULL.md / spec.md §4.4.1).
type Func struct {
	Params     []Param
	TypeParams []TypeParamConfig
	Return     TypeInfo
	ClassName  string // non-empty => method of the named class/interface
}

// Ctor models a class constructor. It has no declared return type: its
// result is always the enclosing class.
type Ctor struct {
	Params []Param
}

// NamespaceImportKind tags NamespaceImport.
type NamespaceImportKind int

const (
	NamespaceImportAll NamespaceImportKind = iota
	NamespaceImportDefault
	NamespaceImportNamed
)

// NamespaceImport models `import * as x`, `import x`, and `import {x}`
// re-export forms.
type NamespaceImport struct {
	Kind NamespaceImportKind
	Src  string
	Name string // valid when Kind == NamespaceImportNamed
}

// PrimitiveKind enumerates the bare Primitive TypeInfo variant (distinct
// from Builtin TypeIdents, which name primitives as *references*; a
// Primitive TypeInfo is what a Ref to such a Builtin resolves to).
type PrimitiveKind int

const (
	PrimitiveAny PrimitiveKind = iota
	PrimitiveNumber
	PrimitiveObject
	PrimitiveBoolean
	PrimitiveBigInt
	PrimitiveString
	PrimitiveSymbol
	PrimitiveVoid
	PrimitiveUndefined
	PrimitiveNull
)

// TypeInfo is the tagged sum over IR shapes described in SPEC_FULL.md §3.
// Exactly one group of fields is populated per Kind.
type TypeInfo struct {
	Kind TypeInfoKind

	// Interface
	Fields     map[string]TypeRef
	Indexer    *Indexer
	Extends    []TypeRef
	TypeParams []TypeParamConfig

	// Class (reuses TypeParams/Indexer is unused)
	Super      *TypeRef
	Members    map[string]Member
	Implements []TypeRef

	// Enum
	EnumMembers []EnumMember

	// Alias / Ref
	Target TypeRef

	// Union / Intersection / Tuple
	Items []TypeInfo

	// Array / Optional / Mapped
	Elem *TypeInfo

	// Func
	FuncInfo *Func

	// Ctor
	CtorInfo *Ctor

	// NamespaceImport
	Import *NamespaceImport

	// Primitive
	Primitive PrimitiveKind
}

func Interface(fields map[string]TypeRef, indexer *Indexer, extends []TypeRef, tp []TypeParamConfig) TypeInfo {
	return TypeInfo{Kind: KindInterface, Fields: fields, Indexer: indexer, Extends: extends, TypeParams: tp}
}

func Class(super *TypeRef, members map[string]Member, implements []TypeRef, tp []TypeParamConfig) TypeInfo {
	return TypeInfo{Kind: KindClass, Super: super, Members: members, Implements: implements, TypeParams: tp}
}

func Enum(members []EnumMember) TypeInfo {
	return TypeInfo{Kind: KindEnum, EnumMembers: members}
}

func Alias(target TypeRef, tp []TypeParamConfig) TypeInfo {
	return TypeInfo{Kind: KindAlias, Target: target, TypeParams: tp}
}

func Ref(target TypeRef) TypeInfo {
	return TypeInfo{Kind: KindRef, Target: target}
}

func Union(items ...TypeInfo) TypeInfo        { return TypeInfo{Kind: KindUnion, Items: items} }
func Intersection(items ...TypeInfo) TypeInfo { return TypeInfo{Kind: KindIntersection, Items: items} }
func Tuple(items ...TypeInfo) TypeInfo        { return TypeInfo{Kind: KindTuple, Items: items} }

func Array(elem TypeInfo) TypeInfo    { return TypeInfo{Kind: KindArray, Elem: &elem} }
func Optional(elem TypeInfo) TypeInfo { return TypeInfo{Kind: KindOptional, Elem: &elem} }
func Mapped(value TypeInfo) TypeInfo  { return TypeInfo{Kind: KindMapped, Elem: &value} }

func FuncType(f Func) TypeInfo { return TypeInfo{Kind: KindFunc, FuncInfo: &f} }
func CtorType(c Ctor) TypeInfo { return TypeInfo{Kind: KindCtor, CtorInfo: &c} }

func NamespaceImportType(n NamespaceImport) TypeInfo {
	return TypeInfo{Kind: KindNamespaceImport, Import: &n}
}

func PrimitiveType(p PrimitiveKind) TypeInfo { return TypeInfo{Kind: KindPrimitive, Primitive: p} }
