// Package parsestub is the out-of-scope declaration-file parser's
// stand-in, per SPEC_FULL.md §1/§2: it loads a small JSON fixture format
// (one file per TypeScript declaration file) into an ir.Program, enough
// to exercise the resolver/emitter/module-tree pipeline end to end in
// tests and from the CLI without implementing an actual .d.ts parser.
// Grounded on pkg/tfgen/generate.go's schema-loading step, which likewise
// turns a declarative (here, JSON; there, pschema.PackageSpec) input into
// the IR the rest of the pipeline consumes — file I/O and unmarshal
// errors are wrapped with github.com/pkg/errors exactly as generate.go
// wraps provider-schema load failures.
package parsestub

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/ctron/ts-bindgen/ir"
)

// FieldFixture is one Interface field or Func parameter in the JSON
// fixture format.
type FieldFixture struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

// InterfaceFixture describes one `interface` declaration.
type InterfaceFixture struct {
	Name     string         `json:"name"`
	Exported bool           `json:"exported"`
	Fields   []FieldFixture `json:"fields,omitempty"`
	Extends  []string       `json:"extends,omitempty"`
}

// AliasFixture describes one `type X = ...` declaration, restricted (as
// this stub only needs to reach the primitive builtins) to a target
// naming a primitive type.
type AliasFixture struct {
	Name     string `json:"name"`
	Exported bool   `json:"exported"`
	Target   string `json:"target"`
}

// FuncFixture describes one top-level `function` declaration.
type FuncFixture struct {
	Name       string         `json:"name"`
	Exported   bool           `json:"exported"`
	Params     []FieldFixture `json:"params,omitempty"`
	ReturnType string         `json:"returnType"`
}

// FileFixture is the JSON document stored at each entry-point path.
type FileFixture struct {
	Interfaces []InterfaceFixture `json:"interfaces,omitempty"`
	Aliases    []AliasFixture     `json:"aliases,omitempty"`
	Funcs      []FuncFixture      `json:"funcs,omitempty"`
}

// Load reads the fixture file at each of paths (via fs) and merges their
// declarations into a single ir.Program, keyed by path per spec.md §6's
// "Input: a mapping file path -> (TypeIdent -> Type)".
func Load(fs afero.Fs, paths []string) (ir.Program, error) {
	prog := ir.NewProgram()
	for _, p := range paths {
		data, err := afero.ReadFile(fs, p)
		if err != nil {
			return nil, errors.Wrapf(err, "reading entry point %s", p)
		}
		var file FileFixture
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrapf(err, "parsing entry point %s", p)
		}
		if err := addFile(prog, p, file); err != nil {
			return nil, errors.Wrapf(err, "loading entry point %s", p)
		}
	}
	return prog, nil
}

func addFile(prog ir.Program, path string, file FileFixture) error {
	for _, iface := range file.Interfaces {
		fields := map[string]ir.TypeRef{}
		for _, f := range iface.Fields {
			ref, err := fieldRef(f)
			if err != nil {
				return errors.Wrapf(err, "interface %s field %s", iface.Name, f.Name)
			}
			fields[f.Name] = ref
		}
		var extends []ir.TypeRef
		for _, super := range iface.Extends {
			extends = append(extends, ir.TypeRef{Name: ir.TypeName{File: path, Ident: ir.LocalName(super)}})
		}
		prog.Add(&ir.Type{
			Name:     ir.TypeName{File: path, Ident: ir.LocalName(iface.Name)},
			Info:     ir.Interface(fields, nil, extends, nil),
			Exported: iface.Exported,
			Ctx:      ir.Context{File: path},
		})
	}

	for _, a := range file.Aliases {
		target, err := primitiveRef(a.Target)
		if err != nil {
			return errors.Wrapf(err, "alias %s", a.Name)
		}
		prog.Add(&ir.Type{
			Name:     ir.TypeName{File: path, Ident: ir.LocalName(a.Name)},
			Info:     ir.Alias(target, nil),
			Exported: a.Exported,
			Ctx:      ir.Context{File: path},
		})
	}

	for _, fn := range file.Funcs {
		var params []ir.Param
		for _, p := range fn.Params {
			ref, err := fieldRef(p)
			if err != nil {
				return errors.Wrapf(err, "func %s param %s", fn.Name, p.Name)
			}
			params = append(params, ir.Param{Name: p.Name, Type: ir.Ref(ref)})
		}
		retRef, err := primitiveRef(fn.ReturnType)
		if err != nil {
			return errors.Wrapf(err, "func %s return type", fn.Name)
		}
		prog.Add(&ir.Type{
			Name:     ir.TypeName{File: path, Ident: ir.LocalName(fn.Name)},
			Info:     ir.FuncType(ir.Func{Params: params, Return: ir.Ref(retRef)}),
			Exported: fn.Exported,
			Ctx:      ir.Context{File: path},
		})
	}
	return nil
}

func fieldRef(f FieldFixture) (ir.TypeRef, error) {
	inner, err := primitiveIdent(f.Type)
	if err != nil {
		return ir.TypeRef{}, err
	}
	if f.Optional {
		return ir.TypeRef{
			Name:      ir.TypeName{Ident: ir.Builtin_(ir.BuiltinOptional)},
			TypeParam: []ir.TypeInfo{ir.Ref(ir.TypeRef{Name: ir.TypeName{Ident: inner}})},
		}, nil
	}
	return ir.TypeRef{Name: ir.TypeName{Ident: inner}}, nil
}

func primitiveRef(name string) (ir.TypeRef, error) {
	inner, err := primitiveIdent(name)
	if err != nil {
		return ir.TypeRef{}, err
	}
	return ir.TypeRef{Name: ir.TypeName{Ident: inner}}, nil
}

func primitiveIdent(name string) (ir.TypeIdent, error) {
	switch name {
	case "number":
		return ir.Builtin_(ir.BuiltinPrimitiveNumber), nil
	case "string":
		return ir.Builtin_(ir.BuiltinPrimitiveString), nil
	case "boolean":
		return ir.Builtin_(ir.BuiltinPrimitiveBoolean), nil
	case "bigint":
		return ir.Builtin_(ir.BuiltinPrimitiveBigInt), nil
	case "any":
		return ir.Builtin_(ir.BuiltinPrimitiveAny), nil
	case "void":
		return ir.Builtin_(ir.BuiltinPrimitiveVoid), nil
	default:
		return ir.TypeIdent{}, errors.Errorf("parsestub: unsupported fixture primitive %q", name)
	}
}
