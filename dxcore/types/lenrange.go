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

import dxerrors "dirpx.dev/dxvalid/dxcore/errors"

// lenRange is the reusable length-range policy shared by the string and
// sequence descriptors: an inclusive [min, max] bound on a value's length,
// together with the word describing the length unit ("characters",
// "elements") used in failure messages.
type lenRange struct {
	word string
	min  int
	max  int
}

// check verifies that a length n is within the inclusive range. The ok
// flag reports whether the checked value has a defined length at all;
// values without one fail with "has no length defined".
//
// Out-of-range lengths fail with one of three phrasings: "must be exactly
// N <word>" when min equals max, "must be between MIN and MAX <word>" when
// min is positive, and "must be no more than MAX <word>" when min is zero.
func (r lenRange) check(n int, ok bool) *dxerrors.Error {
	if !ok {
		return dxerrors.Newf("", "has no length defined")
	}
	if n >= r.min && n <= r.max {
		return nil
	}
	switch {
	case r.min == r.max:
		return dxerrors.Newf("", "must be exactly %d %s", r.min, r.word)
	case r.min > 0:
		return dxerrors.Newf("", "must be between %d and %d %s", r.min, r.max, r.word)
	default:
		return dxerrors.Newf("", "must be no more than %d %s", r.max, r.word)
	}
}
