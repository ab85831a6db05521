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

// Package types provides the type descriptor hierarchy of the dxvalid
// validation system.
//
// A type descriptor is an immutable value describing how to validate and
// coerce one shape of untrusted data (typically loosely typed input such as
// strings from configuration or request payloads). Descriptors are
// constructed once through the factory functions in this package (Int,
// Float, BoundedInt, Bool, Enum, Str, Bytes, List, Tuple, Semver, ...) and
// are then safe for concurrent reuse across any number of simultaneous
// validation calls without synchronization.
//
// Scalar descriptors fail with exactly one empty-path cause, leaving path
// context to the enclosing composite. Composite descriptors (sequences
// here, record schemas in the schema package) validate every child and
// aggregate all failures with fully qualified paths before reporting;
// validation never stops at the first bad element.
//
// Project authors are encouraged to implement their own application
// specific descriptors against the Type interface as needed; the Semver
// descriptor in this package is an example of such an extension.
package types

// Options is the immutable configuration threaded through every recursive
// validation call.
//
// Options is passed by value; callers of nested descriptors (sequence
// elements, record fields) MUST pass the same Options down to preserve its
// semantics at arbitrary nesting depth. The zero value is the default
// validation behavior.
type Options struct {
	// Optional treats every record field at every nesting level as
	// optional: missing fields produce no error, no default is injected,
	// and no key appears in the output for them. Values that are present
	// are still validated, and the effect applies recursively.
	Optional bool
}

// Type is the contract implemented by every dxvalid type descriptor.
//
// Implementations MUST be immutable after construction and safe for
// concurrent use. The output value and any error returned by Check are
// created fresh per call and owned by the caller.
type Type interface {
	// Default produces a type-appropriate default value, or fails with
	// *errors.UndefinedDefaultError when no default is meaningful for the
	// descriptor. Callers MUST only invoke Default where a default was
	// explicitly or implicitly requested (for example, when resolving a
	// record field declared with the from-type default sentinel).
	Default() (any, error)

	// Check validates v and returns the coerced value of the descriptor's
	// semantic type, or fails with an *errors.Error. Scalar descriptors
	// fail with exactly one empty-path cause; composite descriptors fail
	// with a fully path-qualified aggregate covering every defect found.
	Check(v any, o Options) (any, error)
}
