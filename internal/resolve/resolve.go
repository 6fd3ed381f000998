// Package resolve implements the IR resolver of SPEC_FULL.md §4.3: chasing
// Ref/Alias/NamespaceImport chains to their target, classifying a type's
// serialization strategy at the JS boundary, and detecting uninhabited /
// potentially-undefined types. Resolution misses (SPEC_FULL.md §7) are
// accumulated rather than propagated, grounded on pkg/tfgen/generate.go's
// gatherResources/gatherDataSources pattern of collecting per-entry errors
// into a *multierror.Error while continuing to process the rest of the
// program.
package resolve

import (
	"fmt"
	"path"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/ctron/ts-bindgen/ir"
)

// Serialization is one of {Raw, Ref, SerdeJson, Fn}: the conversion
// strategy the emitter inserts at a boundary crossing for a value of a
// given type (spec.md GLOSSARY "Serialization strategy").
type Serialization int

const (
	SerializationRaw Serialization = iota
	SerializationRef
	SerializationSerdeJSON
	SerializationFn
)

func (s Serialization) String() string {
	switch s {
	case SerializationRaw:
		return "Raw"
	case SerializationRef:
		return "Ref"
	case SerializationSerdeJSON:
		return "SerdeJson"
	case SerializationFn:
		return "Fn"
	default:
		return "Unknown"
	}
}

// Resolver walks a Program's types. It is process-local to one invocation
// (SPEC_FULL.md §5): callers create a fresh Resolver per Generate call.
type Resolver struct {
	prog  ir.Program
	diags *multierror.Error

	// targetCache is allocated by New but no resolution path reads or
	// writes it: every ResolveTargetType call walks its chain afresh.
	targetCache map[ir.TypeIdentKey]targetResult
}

type targetResult struct {
	info *ir.TypeInfo
	ok   bool
}

// New returns a Resolver over prog.
func New(prog ir.Program) *Resolver {
	return &Resolver{prog: prog, targetCache: make(map[ir.TypeIdentKey]targetResult)}
}

// Program returns the Program this Resolver walks, for callers (e.g. the
// emitter's trait delegation) that need direct Lookup access alongside
// the higher-level resolve queries.
func (r *Resolver) Program() ir.Program { return r.prog }

// Diagnostics returns the accumulated resolution-miss errors, or nil if
// none occurred.
func (r *Resolver) Diagnostics() error {
	if r.diags == nil {
		return nil
	}
	return r.diags.ErrorOrNil()
}

func (r *Resolver) warnf(format string, args ...interface{}) {
	r.diags = multierror.Append(r.diags, fmt.Errorf(format, args...))
}

// ResolveTargetType follows Alias.Target, Ref.Name, and NamespaceImport
// chains to the first non-forwarding TypeInfo, per spec.md §4.3. It
// returns (nil, false) if any link in the chain is missing, and never
// loops: a name visited earlier in the same resolution returns (nil,
// false) rather than recursing again.
func (r *Resolver) ResolveTargetType(t ir.TypeInfo, ctxFile string) (*ir.TypeInfo, bool) {
	return r.resolveTargetType(t, ctxFile, map[ir.TypeIdentKey]bool{})
}

func (r *Resolver) resolveTargetType(t ir.TypeInfo, ctxFile string, visited map[ir.TypeIdentKey]bool) (*ir.TypeInfo, bool) {
	switch t.Kind {
	case ir.KindAlias:
		return r.followRef(t.Target, visited)
	case ir.KindRef:
		return r.followRef(t.Target, visited)
	case ir.KindNamespaceImport:
		return r.resolveNamespaceImport(*t.Import, ctxFile, visited)
	default:
		info := t
		return &info, true
	}
}

func (r *Resolver) followRef(ref ir.TypeRef, visited map[ir.TypeIdentKey]bool) (*ir.TypeInfo, bool) {
	// Builtin identifiers (Fn, Array, Optional, Date, Promise, the scalar
	// primitives) are intrinsic: the parser never emits a Program entry
	// for them, so a Lookup would always (and wrongly) report them
	// unresolved. Resolve them structurally instead.
	if ref.Name.Ident.Kind == ir.IdentBuiltin {
		info := builtinTargetInfo(ref)
		return &info, true
	}

	key := ref.Name.Key()
	if visited[key] {
		return nil, false
	}
	visited[key] = true

	target, ok := r.prog.Lookup(ref.Name)
	if !ok {
		r.warnf("unresolved reference to %s", ref.Name)
		return nil, false
	}
	return r.resolveTargetType(target.Info, ref.Name.File, visited)
}

// builtinTargetInfo resolves a Ref naming a Builtin TypeIdent to its
// structural TypeInfo. Fn, Date, and Promise have no further structural
// decomposition relevant to resolution (callers match on the Ref itself,
// or treat them opaquely), so they resolve to the Ref unchanged.
func builtinTargetInfo(ref ir.TypeRef) ir.TypeInfo {
	switch ref.Name.Ident.Builtin {
	case ir.BuiltinPrimitiveAny:
		return ir.PrimitiveType(ir.PrimitiveAny)
	case ir.BuiltinPrimitiveNumber:
		return ir.PrimitiveType(ir.PrimitiveNumber)
	case ir.BuiltinPrimitiveObject:
		return ir.PrimitiveType(ir.PrimitiveObject)
	case ir.BuiltinPrimitiveBoolean:
		return ir.PrimitiveType(ir.PrimitiveBoolean)
	case ir.BuiltinPrimitiveBigInt:
		return ir.PrimitiveType(ir.PrimitiveBigInt)
	case ir.BuiltinPrimitiveString:
		return ir.PrimitiveType(ir.PrimitiveString)
	case ir.BuiltinPrimitiveSymbol:
		return ir.PrimitiveType(ir.PrimitiveSymbol)
	case ir.BuiltinPrimitiveVoid:
		return ir.PrimitiveType(ir.PrimitiveVoid)
	case ir.BuiltinPrimitiveUndefined:
		return ir.PrimitiveType(ir.PrimitiveUndefined)
	case ir.BuiltinPrimitiveNull:
		return ir.PrimitiveType(ir.PrimitiveNull)
	case ir.BuiltinArray:
		if len(ref.TypeParam) > 0 {
			return ir.Array(ref.TypeParam[0])
		}
		return ir.Array(ir.PrimitiveType(ir.PrimitiveAny))
	case ir.BuiltinOptional:
		if len(ref.TypeParam) > 0 {
			return ir.Optional(ref.TypeParam[0])
		}
		return ir.Optional(ir.PrimitiveType(ir.PrimitiveAny))
	default:
		// Fn, Date, Promise: opaque to resolution; callers match on
		// Ref.Target.Name.Ident.Builtin directly (e.g. SerializationType's
		// Fn check).
		return ir.Ref(ref)
	}
}

func (r *Resolver) resolveNamespaceImport(n ir.NamespaceImport, ctxFile string, visited map[ir.TypeIdentKey]bool) (*ir.TypeInfo, bool) {
	if n.Kind != ir.NamespaceImportNamed {
		// All/Default namespace imports denote a module, not a single
		// type; there is no further TypeInfo to resolve to.
		return nil, false
	}
	srcFile := joinModulePath(ctxFile, n.Src)
	name := ir.TypeName{File: srcFile, Ident: ir.LocalName(n.Name)}
	key := name.Key()
	if visited[key] {
		return nil, false
	}
	visited[key] = true

	target, ok := r.prog.Lookup(name)
	if !ok {
		r.warnf("namespace import %q in %s references missing symbol %q in %q", n.Src, ctxFile, n.Name, srcFile)
		return nil, false
	}
	return r.resolveTargetType(target.Info, srcFile, visited)
}

// ArgumentSerializationType is SerializationType specialized for a value
// consumed as a call argument, where borrowing is legal. spec.md §4.3
// classifies strings, arrays, and classes as Ref in that position even
// though they are otherwise Raw (primitives, classes) or SerdeJson
// (arrays); everything else defers to SerializationType.
func (r *Resolver) ArgumentSerializationType(t ir.TypeInfo, ctxFile string) Serialization {
	if t.Kind == ir.KindPrimitive && t.Primitive == ir.PrimitiveString {
		return SerializationRef
	}
	if t.Kind == ir.KindArray {
		return SerializationRef
	}
	if t.Kind == ir.KindClass {
		return SerializationRef
	}
	if resolved, ok := r.ResolveTargetType(t, ctxFile); ok && resolved.Kind == ir.KindClass {
		return SerializationRef
	}
	return r.SerializationType(t, ctxFile)
}

// SerializationType classifies how a value of type t crosses the
// native<->JS boundary, per spec.md §4.3.
func (r *Resolver) SerializationType(t ir.TypeInfo, ctxFile string) Serialization {
	resolved, ok := r.ResolveTargetType(t, ctxFile)
	if ok && resolved.Kind == ir.KindRef && resolved.Target.Name.Ident.Kind == ir.IdentBuiltin &&
		resolved.Target.Name.Ident.Builtin == ir.BuiltinFn {
		return SerializationFn
	}

	switch t.Kind {
	case ir.KindPrimitive:
		switch t.Primitive {
		case ir.PrimitiveNumber, ir.PrimitiveBoolean, ir.PrimitiveString, ir.PrimitiveBigInt,
			ir.PrimitiveVoid, ir.PrimitiveUndefined, ir.PrimitiveAny:
			return SerializationRaw
		}
		return SerializationSerdeJSON
	case ir.KindClass:
		return SerializationRaw
	case ir.KindArray:
		return SerializationSerdeJSON
	case ir.KindOptional:
		inner := SerializationRaw
		if t.Elem != nil {
			inner = r.SerializationType(*t.Elem, ctxFile)
		}
		if inner == SerializationRaw {
			return SerializationRaw
		}
		return SerializationSerdeJSON
	default:
		if ok {
			switch resolved.Kind {
			case ir.KindClass:
				return SerializationRaw
			case ir.KindPrimitive:
				return r.SerializationType(*resolved, ctxFile)
			}
		}
		return SerializationSerdeJSON
	}
}

// IsUninhabited reports whether t can never hold a runtime value, per
// spec.md §4.3: true for null/undefined/void builtins and for unions all
// of whose members are uninhabited.
func IsUninhabited(t ir.TypeInfo) bool {
	switch t.Kind {
	case ir.KindPrimitive:
		return t.Primitive == ir.PrimitiveNull || t.Primitive == ir.PrimitiveUndefined || t.Primitive == ir.PrimitiveVoid
	case ir.KindUnion:
		if len(t.Items) == 0 {
			return false
		}
		for _, it := range t.Items {
			if !IsUninhabited(it) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsPotentiallyUndefined reports whether t may observe as `undefined`, per
// spec.md §4.3.
func IsPotentiallyUndefined(t ir.TypeInfo) bool {
	switch t.Kind {
	case ir.KindOptional:
		return true
	case ir.KindUnion:
		for _, it := range t.Items {
			if it.Kind == ir.KindPrimitive && it.Primitive == ir.PrimitiveUndefined {
				return true
			}
		}
		return false
	case ir.KindPrimitive:
		switch t.Primitive {
		case ir.PrimitiveAny, ir.PrimitiveObject, ir.PrimitiveVoid, ir.PrimitiveUndefined:
			return true
		}
		return false
	default:
		return false
	}
}

// joinModulePath resolves a NamespaceImport's relative "src" against the
// file it appears in. The out-of-scope parser is the real authority on
// module resolution (SPEC_FULL.md §1); this is the minimal join the
// emitter needs when the parser has not already normalized src to an
// absolute path.
func joinModulePath(ctxFile, src string) string {
	if !strings.HasPrefix(src, ".") {
		return src
	}
	return path.Clean(path.Join(path.Dir(ctxFile), src))
}
