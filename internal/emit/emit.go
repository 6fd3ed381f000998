// Package emit renders a resolved ir.Type into native (Rust/wasm-bindgen)
// source text, per spec.md §4.4. Grounded on pkg/tfgen/generate_go.go's
// and generate_nodejs.go's per-language emission dispatch: one function
// per IR shape, each writing into a shared *Writer and returning an error
// rather than panicking on recoverable conditions, with unrecoverable IR
// invariant violations raised via contract.Failf.
package emit

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"

	"github.com/ctron/ts-bindgen/internal/ident"
	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

// Emitter renders Types from one Program via a shared Resolver. It is
// process-local to one invocation, per spec.md §5.
type Emitter struct {
	Resolver *resolve.Resolver
}

// New returns an Emitter backed by r.
func New(r *resolve.Resolver) *Emitter { return &Emitter{Resolver: r} }

// EmitType renders t into w, dispatching on t.Info.Kind per spec.md
// §4.4.4. t.Ctx.File, the file t was declared in, is used for resolving
// relative references encountered while rendering.
func (e *Emitter) EmitType(w *Writer, t *ir.Type) error {
	switch t.Info.Kind {
	case ir.KindInterface:
		return e.emitInterface(w, t)
	case ir.KindClass:
		return e.emitClass(w, t)
	case ir.KindEnum:
		e.emitEnum(w, t)
		return nil
	case ir.KindAlias:
		e.emitAlias(w, t)
		return nil
	case ir.KindUnion:
		return e.emitUnion(w, t)
	case ir.KindIntersection:
		return e.emitIntersection(w, t)
	case ir.KindTuple:
		e.emitTuple(w, t)
		return nil
	case ir.KindFunc:
		e.emitFunc(w, t)
		return nil
	case ir.KindNamespaceImport:
		e.emitNamespaceImport(w, t)
		return nil
	case ir.KindRef:
		// A bare Ref as a top-level standalone entity never occurs in a
		// well-formed program (spec.md §4.4.4); the parser always
		// attaches a Ref's defining shape (Alias, Interface, ...) to the
		// name it occurs under.
		contract.Failf("invariant violation: top-level Ref for %s", t.Name)
		return nil
	default:
		return errors.Errorf("emit: unsupported top-level shape %s for %s", t.Info.Kind, t.Name)
	}
}

func rustName(n ir.TypeName) string {
	return ident.Sanitize(n.Ident.Leaf(), ident.Raw).Render()
}

func snakeName(s string) string {
	return ident.Sanitize(s, ident.Snake).Render()
}

func visibility(exported bool) string {
	if exported {
		return "pub"
	}
	return ""
}

// sortedFieldNames returns m's keys sorted, for deterministic emission
// order across runs.
func sortedFieldNames(m map[string]ir.TypeRef) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func boundsForGeneric(tp ir.TypeParamConfig) string {
	return fmt.Sprintf("%s: Clone + Serialize + DeserializeOwned", tp.Name)
}

func typeParamList(tp []ir.TypeParamConfig) string {
	if len(tp) == 0 {
		return ""
	}
	names := make([]string, len(tp))
	for i, p := range tp {
		names[i] = p.Name
	}
	out := "<"
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out + ">"
}

func whereClause(tp []ir.TypeParamConfig) string {
	if len(tp) == 0 {
		return ""
	}
	bounds := make([]string, len(tp))
	for i, p := range tp {
		bounds[i] = boundsForGeneric(p)
	}
	out := " where "
	for i, b := range bounds {
		if i > 0 {
			out += ", "
		}
		out += b
	}
	return out
}
