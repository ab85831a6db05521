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

// Validate is the main entry point to the validation system.
//
// Call it with any type descriptor (a scalar, a sequence, or a record
// schema) and the raw data to validate. On success it returns the fully
// coerced, type-correct value; on failure it returns an *errors.Error
// carrying the complete aggregated (path, message) cause list for every
// defect found.
//
// Validate is deliberately uniform: it performs no logic beyond
// dispatching to the descriptor's Check with the given Options, which
// descriptors thread unchanged through every recursive call. It is
// stateless and safe for concurrent use.
func Validate(t Type, data any, o Options) (any, error) {
	return t.Check(data, o)
}
