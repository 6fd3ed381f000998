package emit

import (
	"fmt"

	"github.com/ctron/ts-bindgen/internal/ident"
	"github.com/ctron/ts-bindgen/internal/resolve"
	"github.com/ctron/ts-bindgen/ir"
)

// emitInterface renders t (Kind == Interface) as a struct carrying the
// recursive-field expansion, its extra_fields indexer catch-all, and the
// accompanying trait definition, per spec.md §4.4.4 "Interface".
func (e *Emitter) emitInterface(w *Writer, t *ir.Type) error {
	name := rustName(t.Name)
	fields := e.Resolver.RecursiveFields(t.Info, name, t.Ctx.File, resolve.Env{})

	extraFieldsName := ""
	if t.Info.Indexer != nil {
		taken := map[string]bool{}
		for _, f := range fields {
			taken[f.Name] = true
		}
		extraFieldsName = ident.Unique("extra_fields", func(s string) bool { return taken[s] }).Render()
	}

	w.Writefmtln("#[derive(Clone, Serialize, Deserialize)]")
	w.Block(fmt.Sprintf("%s struct %s%s%s", visibility(t.Exported), name, typeParamList(t.Info.TypeParams), whereClause(t.Info.TypeParams)), func() {
		for _, f := range fields {
			w.Writefmtln("#[serde(rename = %q)]", f.Name)
			fieldName := snakeName(f.Name)
			fieldInfo := ir.Ref(f.Type)
			fieldType := RustTypeName(e.Resolver, fieldInfo, t.Ctx.File)
			if e.Resolver.SerializationType(fieldInfo, t.Ctx.File) == resolve.SerializationFn {
				w.Writefmtln("#[serde(serialize_with = %q, deserialize_with = %q)]", serializeFnName(fieldName), deserializeFnName(fieldName))
			}
			w.Writefmtln("pub %s: %s,", fieldName, fieldType)
		}
		if extraFieldsName != "" {
			w.Writefmtln("#[serde(flatten)]")
			w.Writefmtln("pub %s: std::collections::HashMap<String, %s>,", extraFieldsName,
				RustTypeName(e.Resolver, ir.Ref(t.Info.Indexer.Value), t.Ctx.File))
		}
	})

	for _, f := range fields {
		fieldInfo := ir.Ref(f.Type)
		if e.Resolver.SerializationType(fieldInfo, t.Ctx.File) == resolve.SerializationFn {
			emitFnFieldAdapters(w, e.Resolver, snakeName(f.Name), fieldInfo, t.Ctx.File)
		}
	}

	e.emitTraitForInterface(w, name, t, fields)
	return nil
}
