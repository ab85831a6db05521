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
	"strings"
)

// falseTokens is the set of case-insensitive string inputs that coerce to
// false. This vocabulary is part of the Bool descriptor's stable contract.
var falseTokens = map[string]bool{
	"0":     true,
	"false": true,
	"no":    true,
	"off":   true,
}

// Bool returns a descriptor that coerces its input to a bool.
//
// Coercion maps falsy or empty input to false: nil, native false, zero
// numbers, empty strings, empty slices and maps, and the case-insensitive
// false tokens "0", "false", "no", and "off". Everything else coerces to
// true. Bool never fails.
//
// The default is false.
func Bool() Type { return boolType{} }

type boolType struct{}

func (boolType) Default() (any, error) { return false, nil }

func (boolType) Check(v any, _ Options) (any, error) {
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case string:
		return x != "" && !falseTokens[strings.ToLower(x)], nil
	case []byte:
		s := string(x)
		return s != "" && !falseTokens[strings.ToLower(s)], nil
	}
	if f, ok := coerceFloat64(v); ok {
		return f != 0, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0, nil
	}
	return !rv.IsZero(), nil
}
