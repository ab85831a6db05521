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
	"reflect"

	dxerrors "dirpx.dev/dxvalid/dxcore/errors"
)

// Enum returns a descriptor accepting only values from a fixed ordered set
// of allowed literals.
//
// Values outside the set fail with "is not a valid value". Matching
// values are returned unchanged; no coercion is performed. The default is
// the first item, so callers that want a defaultable enum SHOULD order the
// preferred value first. Callers MUST pass at least one item: an empty
// enumeration rejects every value and has no default.
//
// The items slice is copied at construction; the descriptor is immutable
// thereafter.
func Enum(items ...any) Type {
	is := make([]any, len(items))
	copy(is, items)
	return enumType{items: is}
}

type enumType struct {
	items []any
}

func (t enumType) Default() (any, error) {
	if len(t.items) == 0 {
		return nil, &dxerrors.UndefinedDefaultError{Type: "Enum"}
	}
	return t.items[0], nil
}

func (t enumType) Check(v any, _ Options) (any, error) {
	for _, item := range t.items {
		if reflect.DeepEqual(item, v) {
			return v, nil
		}
	}
	return nil, dxerrors.Newf("", "is not a valid value")
}
