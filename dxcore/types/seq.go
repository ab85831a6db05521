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

package types

import (
	stderrors "errors"
	"fmt"
	"reflect"

	dxerrors "dirpx.dev/dxvalid/dxcore/errors"
)

// List returns a sequence descriptor validating every element against elem,
// with no length constraint.
//
// Check accepts any Go slice or array (strings and maps are not
// sequences); other input fails with "is not a list". Every element is
// validated against the element descriptor, element failures are re-homed
// under "[index]" path prefixes, and the overall failure is deferred until
// all elements have been attempted, so one bad element never hides its
// siblings' defects. The coerced output is a freshly allocated []any.
//
// The default is an empty []any.
func List(elem Type) Type {
	return seqType{kind: "list", elem: elem}
}

// ListRange returns a List descriptor whose length is additionally
// constrained to the inclusive range [min, max], counted in elements and
// checked before element validation.
func ListRange(elem Type, min, max int) Type {
	return seqType{kind: "list", elem: elem, lr: &lenRange{word: "elements", min: min, max: max}}
}

// Tuple returns a fixed-arity sequence descriptor: exactly arity elements,
// each validated against elem.
//
// Tuple shares List's behavior, differing in the container kind it
// represents: shape mismatches fail with "is not a tuple", and the length
// range is pinned to exactly the declared arity. Tuple has no default,
// since a fixed-arity sequence cannot be defaulted element-wise; Default
// fails with an UndefinedDefaultError.
func Tuple(elem Type, arity int) Type {
	return seqType{kind: "tuple", elem: elem, lr: &lenRange{word: "elements", min: arity, max: arity}}
}

type seqType struct {
	kind string
	elem Type
	lr   *lenRange
}

func (t seqType) Default() (any, error) {
	if t.kind == "tuple" {
		return nil, &dxerrors.UndefinedDefaultError{Type: "Tuple"}
	}
	return []any{}, nil
}

func (t seqType) Check(v any, o Options) (any, error) {
	rv := reflect.ValueOf(v)
	if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, dxerrors.Newf("", "is not a %s", t.kind)
	}
	n := rv.Len()
	if t.lr != nil {
		if err := t.lr.check(n, true); err != nil {
			return nil, err
		}
	}

	out := make([]any, 0, n)
	var causes []dxerrors.Cause
	for i := 0; i < n; i++ {
		coerced, err := t.elem.Check(rv.Index(i).Interface(), o)
		if err != nil {
			causes = append(causes, reHome(fmt.Sprintf("[%d]", i), err)...)
			continue
		}
		out = append(out, coerced)
	}
	if len(causes) > 0 {
		return nil, dxerrors.New(causes...)
	}
	return out, nil
}

// reHome prefixes every cause path of a child validation error, turning
// the child's local paths into paths relative to the enclosing composite.
// Errors from descriptors outside this library that are not *errors.Error
// become a single cause at the prefix itself.
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
