/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package schema

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxvalid/dxcore/types"
)

// declDoc is the YAML document shape of a schema declaration file:
//
//	schema: job
//	extends: [base]
//	fields:
//	  jobid:       { type: int }
//	  tries:       { type: bounded_int, min: 1, max: 20 }
//	  nodeblock:   { type: bool, default: fromtype }
//	  destination: { type: str, max: 256 }
//	  languages:   { type: list, elem: { type: str, max: 4 } }
//	  status:      { type: enum, values: [pending, active, done], default: pending }
//
// Fields is kept as a raw yaml.Node so that the document order of the
// field declarations is preserved; decoding into a Go map would lose the
// ordering that schema error reporting depends on.
type declDoc struct {
	Schema  string    `yaml:"schema"`
	Extends []string  `yaml:"extends"`
	Fields  yaml.Node `yaml:"fields"`
}

// fieldDecl is one field declaration in a schema file.
//
// The recognized type names are: int, float, bounded_int, bounded_float,
// bool, enum, str, bytes, list, tuple, semver, and the name of any schema
// already present in the registry passed to Parse.
type fieldDecl struct {
	Type   string     `yaml:"type"`
	Min    *float64   `yaml:"min"`
	Max    *float64   `yaml:"max"`
	Arity  *int       `yaml:"arity"`
	Values []any      `yaml:"values"`
	Elem   *fieldDecl `yaml:"elem"`

	// Default is kept as a raw node to distinguish three cases: key
	// absent (required field), the unquoted scalar fromtype (use the
	// type's own default), and any other value (literal default).
	// It is a value rather than a pointer because yaml.v3 only decodes
	// into yaml.Node fields of value type; an absent key leaves the
	// node zero.
	Default yaml.Node `yaml:"default"`
}

// Parse builds a Schema from a YAML schema declaration.
//
// The registry maps schema names to already-parsed schemas; it resolves
// both "extends" references and field declarations whose type is a schema
// name. Callers composing several declaration files parse them in
// dependency order and add each result to the registry themselves. A nil
// registry is valid when the declaration references no other schemas.
//
// Declaration problems are aggregated: every bad field, unknown type
// name, and unresolved parent reference in the document is reported in
// one combined error rather than only the first. A structurally sound
// declaration is then subject to the same construction-time checks as
// New, including eager literal default validation.
func Parse(data []byte, registry map[string]*Schema) (*Schema, error) {
	var doc declDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot unmarshal schema declaration: %w", err)
	}

	var merr error
	if doc.Schema == "" {
		merr = multierr.Append(merr, fmt.Errorf("schema declaration has no name"))
	}

	var parents []*Schema
	for _, name := range doc.Extends {
		p, ok := registry[name]
		if !ok {
			merr = multierr.Append(merr, fmt.Errorf("extends %q: unknown schema", name))
			continue
		}
		parents = append(parents, p)
	}

	fields, err := parseFields(&doc.Fields, registry)
	merr = multierr.Append(merr, err)
	if merr != nil {
		return nil, merr
	}

	return New(doc.Schema, parents, fields)
}

// ParseFile reads and parses a schema declaration file. See Parse.
func ParseFile(path string, registry map[string]*Schema) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read schema declaration: %w", err)
	}
	s, err := Parse(data, registry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// parseFields walks the fields mapping node in document order, collecting
// every per-field problem instead of stopping at the first.
func parseFields(node *yaml.Node, registry map[string]*Schema) ([]Field, error) {
	if node.IsZero() {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("fields must be a mapping")
	}

	var merr error
	fields := make([]Field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var decl fieldDecl
		if err := node.Content[i+1].Decode(&decl); err != nil {
			merr = multierr.Append(merr, fmt.Errorf("field %q: %w", name, err))
			continue
		}
		f, err := buildField(name, &decl, registry)
		if err != nil {
			merr = multierr.Append(merr, fmt.Errorf("field %q: %w", name, err))
			continue
		}
		fields = append(fields, f)
	}
	return fields, merr
}

func buildField(name string, decl *fieldDecl, registry map[string]*Schema) (Field, error) {
	typ, err := buildType(decl, registry)
	if err != nil {
		return Field{}, err
	}
	def, err := buildDefault(&decl.Default)
	if err != nil {
		return Field{}, err
	}
	return Field{Name: name, Type: typ, Default: def}, nil
}

// buildDefault maps the raw default node to the Default tagged union: an
// absent key means required, the unquoted scalar fromtype means the
// from-type sentinel, and anything else is a literal. Quoting the scalar
// ("fromtype") declares the literal string instead.
func buildDefault(node *yaml.Node) (Default, error) {
	if node.IsZero() {
		return NoDefault(), nil
	}
	if node.Kind == yaml.ScalarNode && node.Value == "fromtype" && node.Style == 0 {
		return FromType(), nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return Default{}, fmt.Errorf("cannot decode default: %w", err)
	}
	return Literal(v), nil
}

func buildType(decl *fieldDecl, registry map[string]*Schema) (types.Type, error) {
	switch decl.Type {
	case "":
		return nil, fmt.Errorf("missing type")
	case "int":
		return types.Int(), nil
	case "float":
		return types.Float(), nil
	case "bool":
		return types.Bool(), nil
	case "semver":
		return types.Semver(), nil
	case "bounded_int":
		if decl.Min == nil || decl.Max == nil {
			return nil, fmt.Errorf("bounded_int requires min and max")
		}
		return types.BoundedInt(int64(*decl.Min), int64(*decl.Max)), nil
	case "bounded_float":
		if decl.Min == nil || decl.Max == nil {
			return nil, fmt.Errorf("bounded_float requires min and max")
		}
		return types.BoundedFloat(*decl.Min, *decl.Max), nil
	case "str":
		return buildStringType(decl, types.StrRange)
	case "bytes":
		return buildStringType(decl, types.BytesRange)
	case "enum":
		if len(decl.Values) == 0 {
			return nil, fmt.Errorf("enum requires values")
		}
		return types.Enum(decl.Values...), nil
	case "list":
		elem, err := buildElem(decl, registry)
		if err != nil {
			return nil, err
		}
		switch {
		case decl.Min == nil && decl.Max == nil:
			return types.List(elem), nil
		case decl.Max == nil:
			return nil, fmt.Errorf("list with min requires max")
		case decl.Min == nil:
			return types.ListRange(elem, 0, int(*decl.Max)), nil
		default:
			return types.ListRange(elem, int(*decl.Min), int(*decl.Max)), nil
		}
	case "tuple":
		elem, err := buildElem(decl, registry)
		if err != nil {
			return nil, err
		}
		if decl.Arity == nil {
			return nil, fmt.Errorf("tuple requires arity")
		}
		return types.Tuple(elem, *decl.Arity), nil
	default:
		if s, ok := registry[decl.Type]; ok {
			return s, nil
		}
		return nil, fmt.Errorf("unknown type %q", decl.Type)
	}
}

func buildStringType(decl *fieldDecl, rangeType func(min, max int) types.Type) (types.Type, error) {
	if decl.Max == nil {
		return nil, fmt.Errorf("%s requires max", decl.Type)
	}
	min := 0
	if decl.Min != nil {
		min = int(*decl.Min)
	}
	return rangeType(min, int(*decl.Max)), nil
}

func buildElem(decl *fieldDecl, registry map[string]*Schema) (types.Type, error) {
	if decl.Elem == nil {
		return nil, fmt.Errorf("%s requires elem", decl.Type)
	}
	elem, err := buildType(decl.Elem, registry)
	if err != nil {
		return nil, fmt.Errorf("elem: %w", err)
	}
	return elem, nil
}
