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
	"bytes"
	"strings"
	"unicode/utf8"

	dxerrors "dirpx.dev/dxvalid/dxcore/errors"
)

// strDefaultChar is the pad character used to build minimum-length default
// strings for the Str and Bytes descriptors.
const strDefaultChar = "\x00"

// Str returns a text-oriented string descriptor with length range
// [0, max], counted in characters (runes).
//
// Check accepts a string, or a []byte holding valid UTF-8 which is coerced
// to a string. Input with no defined length fails "has no length defined";
// byte input that is not valid UTF-8 fails "is not a valid string" (an
// encoding mismatch: a byte string handed to a text field). The length
// range is checked before the encoding, so an over-long value reports its
// length defect.
//
// The default is the minimum-length string made of repeated NUL pad
// characters; with a zero minimum that is the empty string.
func Str(max int) Type { return StrRange(0, max) }

// StrRange returns a text-oriented string descriptor with the inclusive
// length range [min, max], counted in characters (runes). See Str.
func StrRange(min, max int) Type {
	return strType{lr: lenRange{word: "characters", min: min, max: max}}
}

// Bytes returns a byte-oriented string descriptor with length range
// [0, max], counted in bytes.
//
// Check accepts a []byte, which is copied, or an ASCII-only string, which
// is coerced to a []byte. Input with no defined length fails "has no
// length defined"; a string containing non-ASCII text fails "is not a
// valid byte string" (an encoding mismatch: text handed to a byte-string
// field).
//
// The default is the minimum-length byte string of NUL pad bytes; with a
// zero minimum that is an empty []byte.
func Bytes(max int) Type { return BytesRange(0, max) }

// BytesRange returns a byte-oriented string descriptor with the inclusive
// length range [min, max], counted in bytes. See Bytes.
func BytesRange(min, max int) Type {
	return bytesType{lr: lenRange{word: "characters", min: min, max: max}}
}

type strType struct {
	lr lenRange
}

func (t strType) Default() (any, error) {
	return strings.Repeat(strDefaultChar, t.lr.min), nil
}

func (t strType) Check(v any, _ Options) (any, error) {
	var s string
	var valid bool
	switch x := v.(type) {
	case string:
		s, valid = x, utf8.ValidString(x)
	case []byte:
		s, valid = string(x), utf8.Valid(x)
	default:
		return nil, t.lr.check(0, false)
	}
	if err := t.lr.check(utf8.RuneCountInString(s), true); err != nil {
		return nil, err
	}
	if !valid {
		return nil, dxerrors.Newf("", "is not a valid string")
	}
	return s, nil
}

type bytesType struct {
	lr lenRange
}

func (t bytesType) Default() (any, error) {
	return bytes.Repeat([]byte(strDefaultChar), t.lr.min), nil
}

func (t bytesType) Check(v any, _ Options) (any, error) {
	var b []byte
	var valid bool
	switch x := v.(type) {
	case []byte:
		b, valid = x, true
	case string:
		b, valid = []byte(x), isASCII(x)
	default:
		return nil, t.lr.check(0, false)
	}
	if err := t.lr.check(len(b), true); err != nil {
		return nil, err
	}
	if !valid {
		return nil, dxerrors.Newf("", "is not a valid byte string")
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
