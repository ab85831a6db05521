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
	"math"
	"strconv"
	"strings"

	dxerrors "dirpx.dev/dxvalid/dxcore/errors"
)

// Int returns a descriptor that coerces its input to an int64.
//
// Accepted inputs are Go integer kinds, floating-point values with no
// fractional information loss concerns (the fractional part is truncated,
// matching integer conversion semantics), booleans (false -> 0, true -> 1),
// and decimal strings or byte strings with optional surrounding whitespace.
// Anything else fails with "is not a valid int".
//
// The default is the zero value, int64(0). Applying Check to an already
// coerced int64 returns an equal value.
func Int() Type { return intType{} }

// Float returns a descriptor that coerces its input to a float64.
//
// Accepted inputs are Go floating-point and integer kinds, booleans
// (false -> 0, true -> 1), and decimal strings or byte strings with
// optional surrounding whitespace. Anything else fails with "is not a
// valid float".
//
// The default is the zero value, float64(0). Applying Check to an already
// coerced float64 returns an equal value.
func Float() Type { return floatType{} }

// BoundedInt returns an Int descriptor additionally constrained to the
// closed interval [min, max].
//
// Check first applies Int coercion, then range-checks the numeric result;
// out-of-range values fail with "must be between MIN and MAX". The default
// is min.
func BoundedInt(min, max int64) Type { return boundedIntType{min: min, max: max} }

// BoundedFloat returns a Float descriptor additionally constrained to the
// closed interval [min, max].
//
// Check first applies Float coercion, then range-checks the numeric
// result; out-of-range values fail with "must be between MIN and MAX".
// The default is min.
func BoundedFloat(min, max float64) Type { return boundedFloatType{min: min, max: max} }

type intType struct{}

func (intType) Default() (any, error) { return int64(0), nil }

func (intType) Check(v any, _ Options) (any, error) {
	n, ok := coerceInt64(v)
	if !ok {
		return nil, dxerrors.Newf("", "is not a valid int")
	}
	return n, nil
}

type floatType struct{}

func (floatType) Default() (any, error) { return float64(0), nil }

func (floatType) Check(v any, _ Options) (any, error) {
	f, ok := coerceFloat64(v)
	if !ok {
		return nil, dxerrors.Newf("", "is not a valid float")
	}
	return f, nil
}

type boundedIntType struct {
	min, max int64
}

func (t boundedIntType) Default() (any, error) { return t.min, nil }

func (t boundedIntType) Check(v any, o Options) (any, error) {
	coerced, err := Int().Check(v, o)
	if err != nil {
		return nil, err
	}
	n := coerced.(int64)
	if n < t.min || n > t.max {
		return nil, dxerrors.Newf("", "must be between %d and %d", t.min, t.max)
	}
	return n, nil
}

type boundedFloatType struct {
	min, max float64
}

func (t boundedFloatType) Default() (any, error) { return t.min, nil }

func (t boundedFloatType) Check(v any, o Options) (any, error) {
	coerced, err := Float().Check(v, o)
	if err != nil {
		return nil, err
	}
	f := coerced.(float64)
	if f < t.min || f > t.max {
		return nil, dxerrors.Newf("", "must be between %v and %v", t.min, t.max)
	}
	return f, nil
}

// coerceInt64 attempts a direct conversion of v to int64.
func coerceInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float32:
		return floatToInt64(float64(x))
	case float64:
		return floatToInt64(x)
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return n, err == nil
	case []byte:
		n, err := strconv.ParseInt(strings.TrimSpace(string(x)), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// floatToInt64 truncates the fractional part. NaN, infinities, and values
// outside the int64 range do not convert.
func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// coerceFloat64 attempts a direct conversion of v to float64.
func coerceFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
