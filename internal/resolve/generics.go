package resolve

import "github.com/ctron/ts-bindgen/ir"

// Env is a generic substitution environment: type-parameter name -> bound
// TypeInfo, per spec.md §4.3 ("resolve_generic_in_env(T, env: name->TypeRef)
// rewrites any Ref whose referent is a LocalName matching a key in env to
// the mapped TypeRef"). We key on the concrete TypeInfo an occurrence
// resolves to rather than re-wrapping it in a TypeRef, since a bound
// argument need not itself be a named reference (e.g. a union or inline
// object literal) — those get a GeneratedName TypeName precisely so they
// *can* be named when that's needed (§10 item 1), but substitution itself
// only needs the TypeInfo.
type Env map[string]ir.TypeInfo

// ResolveGenericInEnv rewrites any Ref whose referent is a LocalName
// matching a key in env to the mapped TypeInfo, recursing structurally
// through Ref/Alias type arguments, Union/Intersection/Tuple items,
// Array/Optional/Mapped elements, Interface fields and extends, and Func
// params and return. Class, Ctor and NamespaceImport shapes, and an
// Interface's Indexer, are returned without substitution.
func ResolveGenericInEnv(t ir.TypeInfo, env Env) ir.TypeInfo {
	switch t.Kind {
	case ir.KindRef:
		if t.Target.Name.Ident.Kind == ir.IdentLocalName {
			if bound, ok := env[t.Target.Name.Ident.Local]; ok {
				return bound
			}
		}
		t.Target = substituteRefParams(t.Target, env)
		return t
	case ir.KindAlias:
		t.Target = substituteRefParams(t.Target, env)
		return t
	case ir.KindUnion, ir.KindIntersection, ir.KindTuple:
		items := make([]ir.TypeInfo, len(t.Items))
		for i, it := range t.Items {
			items[i] = ResolveGenericInEnv(it, env)
		}
		t.Items = items
		return t
	case ir.KindArray, ir.KindOptional, ir.KindMapped:
		if t.Elem != nil {
			elem := ResolveGenericInEnv(*t.Elem, env)
			t.Elem = &elem
		}
		return t
	case ir.KindInterface:
		fields := make(map[string]ir.TypeRef, len(t.Fields))
		for k, v := range t.Fields {
			fields[k] = substituteRefParams(v, env)
		}
		t.Fields = fields
		extends := make([]ir.TypeRef, len(t.Extends))
		for i, e := range t.Extends {
			extends[i] = substituteRefParams(e, env)
		}
		t.Extends = extends
		return t
	case ir.KindFunc:
		f := *t.FuncInfo
		params := make([]ir.Param, len(f.Params))
		for i, p := range f.Params {
			p.Type = ResolveGenericInEnv(p.Type, env)
			params[i] = p
		}
		f.Params = params
		f.Return = ResolveGenericInEnv(f.Return, env)
		t.FuncInfo = &f
		return t
	default:
		return t
	}
}

func substituteRefParams(ref ir.TypeRef, env Env) ir.TypeRef {
	params := make([]ir.TypeInfo, len(ref.TypeParam))
	for i, p := range ref.TypeParam {
		params[i] = ResolveGenericInEnv(p, env)
	}
	ref.TypeParam = params
	return ref
}

// ApplyTypeParams extends outerEnv with the mapping from targetParams
// (the type-parameter configs of the interface/class being applied) to
// baseRef's supplied type-parameter arguments, defaulting any argument
// baseRef omits to the parameter's configured default. The returned Env is
// a new map; outerEnv is not mutated.
func ApplyTypeParams(baseRef ir.TypeRef, targetParams []ir.TypeParamConfig, outerEnv Env) Env {
	next := make(Env, len(outerEnv)+len(targetParams))
	for k, v := range outerEnv {
		next[k] = v
	}
	for i, tp := range targetParams {
		switch {
		case i < len(baseRef.TypeParam):
			next[tp.Name] = baseRef.TypeParam[i]
		case tp.Default != nil:
			next[tp.Name] = *tp.Default
		}
	}
	return next
}
