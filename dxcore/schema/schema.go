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

// Package schema provides the record schema descriptor of the dxvalid
// validation system: a named, closed set of field declarations
// representing a mapping-shaped value, with multi-parent composition.
//
// A Schema is declared from an ordered list of Field declarations plus
// zero or more parent schemas to inherit fields from. The effective field
// set is computed and cached at construction time: parents are visited
// depth-first in declaration order, most-derived declarations override
// ancestor declarations of the same name, and an overriding declaration
// keeps the overridden field's position so that error ordering stays
// stable across the hierarchy. Cyclic parent references are rejected at
// construction time rather than looping at validation time.
//
// Construction validates every declaration and collects all problems
// before failing, so one construction attempt reports every invalid
// declaration. Literal defaults are validated eagerly through their own
// field's descriptor; a schema whose default could never validate cannot
// be constructed. A nil literal default is the one exception: it is an
// explicit "no value" default and is injected as-is.
//
// Schemas implement types.Type, so a schema can serve as a field type of
// another schema or as a sequence element type, nesting to any depth.
// Once constructed, a Schema is immutable and safe for concurrent reuse.
package schema

import (
	stderrors "errors"
	"fmt"

	"dirpx.dev/rxmerr"

	dxerrors "dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/types"
)

type defaultKind int

const (
	noDefault defaultKind = iota
	literalDefault
	fromTypeDefault
)

// Default is the default specification of a field declaration, a tagged
// union of three cases: no default (the field is required), a literal
// default value, and the from-type sentinel meaning "ask the field's type
// descriptor for its own default".
//
// The zero value is the no-default case, so a Field declared without a
// Default is required.
type Default struct {
	kind  defaultKind
	value any
}

// NoDefault returns the explicit no-default specification: the field is
// required and its omission from input is a validation failure. It is
// equivalent to the zero Default value.
func NoDefault() Default { return Default{} }

// Literal returns a default specification carrying a literal value. The
// field becomes optional; when absent from input, the literal (coerced
// through the field's descriptor at schema construction time) is placed in
// the output.
//
// Literal(nil) declares an explicit empty default: nil is injected as-is,
// without coercion.
func Literal(v any) Default { return Default{kind: literalDefault, value: v} }

// FromType returns the default specification meaning "use the type's own
// default". The field becomes optional; when absent from input, the field
// descriptor's Default method is invoked lazily at validation time (not at
// schema-definition time), so the resolved value can depend on the runtime
// behavior of the type.
func FromType() Default { return Default{kind: fromTypeDefault} }

// Field is one field declaration of a record schema: a name, the type
// descriptor values of the field must validate against, and the default
// specification deciding whether the field is required.
type Field struct {
	// Name is the field name, the key the field occupies in input and
	// output mappings. It MUST be non-empty and unique within one
	// declaration list.
	Name string

	// Type is the field's type descriptor. It MUST be non-nil; any
	// types.Type works, including another schema or a sequence.
	Type types.Type

	// Default is the default specification. The zero value means the
	// field is required.
	Default Default
}

// field is a normalized effective-field entry. literal holds the coerced
// literal default when optional && !fromType.
type field struct {
	name     string
	typ      types.Type
	optional bool
	fromType bool
	literal  any
}

// Schema is a named record schema descriptor. See the package
// documentation for declaration and composition semantics, and Check for
// validation semantics.
//
// Schema implements types.Type.
type Schema struct {
	name    string
	parents []*Schema
	own     []field
	eff     []field
}

var _ types.Type = (*Schema)(nil)

// New constructs a Schema from a name, an ordered list of parent schemas
// to inherit fields from, and an ordered list of its own field
// declarations.
//
// The effective field set is computed here and cached: parents contribute
// their effective fields first (visited depth-first, left to right), then
// the schema's own declarations are applied, with later applications
// overriding earlier ones for fields of the same name. Between sibling
// parents the later parent wins; the schema's own declarations win over
// every ancestor. This resolves deterministically for any acyclic parent
// graph.
//
// All declaration problems are collected before failing: empty or
// duplicate field names, nil field types, nil parents, cyclic parent
// references, and literal defaults rejected by their own field's
// descriptor each contribute a SchemaError, and the returned error carries
// every one of them. On success the Schema is immutable and safe for
// concurrent reuse across validation calls.
func New(name string, parents []*Schema, fields []Field) (*Schema, error) {
	c := rxmerr.NewCollector()
	if name == "" {
		c.Append(&dxerrors.SchemaError{Schema: name, Reason: "schema name must not be empty"})
	}

	s := &Schema{name: name}
	for i, p := range parents {
		if p == nil {
			c.Append(&dxerrors.SchemaError{Schema: name, Reason: fmt.Sprintf("parent %d is nil", i)})
			continue
		}
		s.parents = append(s.parents, p)
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			c.Append(&dxerrors.SchemaError{Schema: name, Reason: "field name must not be empty"})
			continue
		}
		if seen[f.Name] {
			c.Append(&dxerrors.SchemaError{Schema: name, Field: f.Name, Reason: "duplicate field declaration"})
			continue
		}
		seen[f.Name] = true
		if f.Type == nil {
			c.Append(&dxerrors.SchemaError{Schema: name, Field: f.Name, Reason: "field type must not be nil"})
			continue
		}

		nf := field{name: f.Name, typ: f.Type}
		switch f.Default.kind {
		case noDefault:
		case fromTypeDefault:
			nf.optional = true
			nf.fromType = true
		case literalDefault:
			nf.optional = true
			if f.Default.value == nil {
				break
			}
			coerced, err := f.Type.Check(f.Default.value, types.Options{})
			if err != nil {
				c.Append(&dxerrors.SchemaError{
					Schema: name,
					Field:  f.Name,
					Reason: "invalid literal default: " + formatCheckErr(err),
				})
				continue
			}
			nf.literal = coerced
		}
		s.own = append(s.own, nf)
	}

	state := make(map[*Schema]int)
	pos := make(map[string]int)
	if err := s.merge(state, pos, &s.eff); err != nil {
		c.Append(err)
	}

	if err := c.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustNew is like New but panics on error. It is intended for test code
// and package initialization, where an invalid schema declaration is a
// programming error that should fail immediately and loudly. Callers MUST
// NOT use MustNew on declarations derived from untrusted input.
func MustNew(name string, parents []*Schema, fields []Field) *Schema {
	s, err := New(name, parents, fields)
	if err != nil {
		panic(fmt.Sprintf("schema declaration failed for %s: %v", name, err))
	}
	return s
}

// Name returns the schema's declared name.
func (s *Schema) Name() string { return s.name }

// Fields returns the names of the effective field set in stable
// declaration order: base-most ancestor declarations first, with
// overridden fields keeping their original position.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.eff))
	for i, f := range s.eff {
		names[i] = f.name
	}
	return names
}

// merge state values for cycle detection.
const (
	unvisited = iota
	visiting
	done
)

// merge computes the effective field set by a depth-first topological
// visit of the parent graph, applying own declarations after all parents
// so that most-derived wins. A schema reached again while still on the
// visit stack is a cyclic parent reference.
func (s *Schema) merge(state map[*Schema]int, pos map[string]int, out *[]field) error {
	switch state[s] {
	case visiting:
		return &dxerrors.SchemaError{Schema: s.name, Reason: "cyclic parent reference"}
	case done:
		return nil
	}
	state[s] = visiting
	for _, p := range s.parents {
		if err := p.merge(state, pos, out); err != nil {
			return err
		}
	}
	for _, f := range s.own {
		if i, ok := pos[f.name]; ok {
			(*out)[i] = f
		} else {
			pos[f.name] = len(*out)
			*out = append(*out, f)
		}
	}
	state[s] = done
	return nil
}

// Default implements types.Type. The default for a record schema is an
// empty mapping.
func (s *Schema) Default() (any, error) {
	return map[string]any{}, nil
}

// Check implements types.Type for Schema.
//
// Input that is not a map[string]any fails immediately with "is not a
// map". Otherwise every effective field is processed in stable
// declaration order:
//
//   - Absent field, Options.Optional set: skipped entirely (no error, no
//     default, no output key).
//   - Absent optional field: its default is resolved (the coerced literal,
//     or the descriptor's own Default for from-type declarations) and
//     placed in the output.
//   - Absent required field: contributes the cause (".name", "is required").
//   - Present field: recursively checked against its descriptor with the
//     same Options; on success the coerced value goes to the output, on
//     failure every nested cause is re-homed under the ".name" prefix.
//
// All fields are attempted before failing, and the aggregate error carries
// every cause found. Input keys not declared in the schema are silently
// dropped: the output's key set is exactly the declared names that were
// present or resolved, never a superset.
func (s *Schema) Check(v any, o types.Options) (any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, dxerrors.Newf("", "is not a map")
	}

	out := make(map[string]any, len(s.eff))
	var causes []dxerrors.Cause

	for _, f := range s.eff {
		raw, present := m[f.name]
		if !present {
			if o.Optional {
				continue
			}
			if !f.optional {
				causes = append(causes, dxerrors.Cause{Path: "." + f.name, Message: "is required"})
				continue
			}
			if f.fromType {
				d, err := f.typ.Default()
				if err != nil {
					causes = append(causes, dxerrors.Cause{Path: "." + f.name, Message: "has no default defined"})
					continue
				}
				out[f.name] = d
				continue
			}
			out[f.name] = f.literal
			continue
		}

		coerced, err := f.typ.Check(raw, o)
		if err != nil {
			causes = append(causes, reHome("."+f.name, err)...)
			continue
		}
		out[f.name] = coerced
	}

	if len(causes) > 0 {
		return nil, dxerrors.New(causes...)
	}
	return out, nil
}

// reHome prefixes every cause path of a nested validation error with the
// field's path segment. Errors from descriptors outside this library that
// are not *errors.Error become a single cause at the field itself.
func reHome(prefix string, err error) []dxerrors.Cause {
	var ve *dxerrors.Error
	if !stderrors.As(err, &ve) {
		return []dxerrors.Cause{{Path: prefix, Message: err.Error()}}
	}
	causes := ve.Causes()
	for i := range causes {
		causes[i].Path = prefix + causes[i].Path
	}
	return causes
}

// formatCheckErr renders a descriptor failure for embedding in a
// SchemaError reason, preferring the aggregate's sentence form over the
// prefixed error string.
func formatCheckErr(err error) string {
	var ve *dxerrors.Error
	if stderrors.As(err, &ve) {
		return ve.Format()
	}
	return err.Error()
}
