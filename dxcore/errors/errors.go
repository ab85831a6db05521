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

// Package errors provides the error types shared by all dxvalid packages.
//
// The central type is Error, the aggregate validation failure produced by
// type descriptors and record schemas. An Error carries an ordered sequence
// of (path, message) causes, one per independent defect found during a
// validation call. Causes are aggregated, never merged or deduplicated, and
// their order of discovery is preserved, so a caller can rely on seeing
// exactly one cause for every defect in the input.
//
// Paths identify where in a nested structure a defect was found. Scalar
// descriptors report an empty path ("this value itself"); composite
// descriptors re-home the causes of their children by prefixing ".field"
// for record fields and "[index]" for sequence elements as validation
// unwinds. A fully qualified path therefore reads like ".jobs[2].name".
//
// The remaining types cover failures outside a validation call:
//
//   - UndefinedDefaultError
//     Returned by a descriptor's Default method when no default value is
//     meaningful for that descriptor. Callers MUST only invoke Default
//     where a default was explicitly or implicitly requested; receiving
//     this error elsewhere indicates a schema declaration problem.
//
//   - SchemaError
//     Returned when a record schema declaration is itself invalid: an
//     empty or duplicate field name, a nil field type, a literal default
//     that does not validate against its own field's type, or a cyclic
//     parent reference. SchemaError is raised at schema construction time,
//     never during validation.
//
// All messages use the stable "dxvalid:" prefix. The formats are
// intentionally stable so that callers can rely on them for diagnostics,
// while still preferring type assertions (errors.As) where possible.
package errors

import (
	"fmt"
	"strings"

	"dirpx.dev/dxvalid/dxcore/util"
)

// Cause is one (path, message) pair inside an aggregate validation Error.
//
// Path locates the defect within the validated structure. An empty Path
// means the defect applies to the value itself; record fields contribute a
// ".name" prefix and sequence elements an "[index]" prefix, concatenated as
// validation descends. Message summarizes why validation failed at that
// location, phrased so that "<path> <message>" reads as a sentence fragment
// (for example, ".tries must be between 1 and 20").
type Cause struct {
	// Path is the dotted/bracketed location of the defect. Empty means
	// the validated value itself.
	Path string

	// Message is the human-readable reason validation failed there.
	Message string
}

// Error is the aggregate validation failure produced by dxvalid.
//
// An Error holds one or more Causes in their order of discovery. Composite
// descriptors (sequences, record schemas) collect the causes of all of
// their children before failing, so a single Error describes every defect
// found in one validation call; validation never short-circuits on the
// first bad field or element within a composite.
//
// Error values are immutable once constructed and safe for concurrent use.
// The Causes accessor returns a defensive copy so that callers cannot
// disturb the snapshot.
type Error struct {
	causes []Cause
}

// New constructs an Error from one or more causes.
//
// The causes slice is copied; later mutation of the arguments does not
// affect the constructed Error. Callers MUST pass at least one cause: an
// Error is only ever created to report a failure, and an empty Error would
// format as an empty sentence.
func New(causes ...Cause) *Error {
	cs := make([]Cause, len(causes))
	copy(cs, causes)
	return &Error{causes: cs}
}

// Newf constructs an Error with a single cause whose message is built with
// fmt.Sprintf. It is the convenience form used by scalar descriptors,
// which always fail with exactly one cause and an empty path, leaving path
// context to the enclosing composite.
func Newf(path, format string, args ...any) *Error {
	return New(Cause{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Causes returns a copy of the ordered (path, message) pairs carried by
// the Error, for programmatic handling.
func (e *Error) Causes() []Cause {
	cs := make([]Cause, len(e.causes))
	copy(cs, e.causes)
	return cs
}

// Len returns the number of causes carried by the Error.
func (e *Error) Len() int {
	return len(e.causes)
}

// Format returns one human-readable sentence summarizing every cause.
//
// For each cause, any leading path separator is stripped and an empty path
// is rendered as the literal word "value"; path and message are then
// concatenated with a space. The resulting phrases are joined with
// util.KoolJoin("and", ...): fewer than three phrases use only the
// connector word, three or more use comma-separated list style with the
// connector before the final phrase. For example:
//
//	"a is required, b must be between 1 and 20, and c is not a valid value"
//
// Format never truncates or reorders causes.
func (e *Error) Format() string {
	phrases := make([]string, 0, len(e.causes))
	for _, c := range e.causes {
		path := strings.TrimPrefix(c.Path, ".")
		if path == "" {
			path = "value"
		}
		phrases = append(phrases, path+" "+c.Message)
	}
	return util.KoolJoin("and", phrases)
}

// Error implements the error interface for Error.
//
// The message format is:
//
//	"dxvalid: " + Format()
//
// For example:
//
//	"dxvalid: jobid is required and tries must be between 1 and 20"
func (e *Error) Error() string {
	return "dxvalid: " + e.Format()
}

// UndefinedDefaultError is returned by a descriptor's Default method when
// no default value is meaningful for that descriptor.
//
// Type identifies the logical descriptor kind (for example, "Tuple" or
// "Semver"). This is the general case for descriptors: only descriptors
// whose documentation states a default MUST be asked for one. A record
// schema surfaces this condition as a validation cause when a field
// declared with the from-type default sentinel names a descriptor that has
// no default of its own.
type UndefinedDefaultError struct {
	// Type is the logical name of the descriptor kind that has no default.
	Type string
}

// Error implements the error interface for UndefinedDefaultError.
//
// The message format is:
//
//	"dxvalid: no default defined for {Type}"
func (e *UndefinedDefaultError) Error() string {
	return "dxvalid: no default defined for " + e.Type
}

// SchemaError is returned when a record schema declaration is invalid.
//
// Schema identifies the schema being constructed, Field optionally
// identifies the offending field declaration, and Reason explains the
// problem. Schema construction collects every declaration problem before
// failing, so one construction attempt reports all invalid declarations
// rather than only the first.
type SchemaError struct {
	// Schema is the name of the schema whose declaration is invalid.
	Schema string

	// Field is the name of the offending field declaration.
	// Empty if the error applies to the schema as a whole.
	Field string

	// Reason is a short, human-readable explanation of the problem.
	Reason string
}

// Error implements the error interface for SchemaError.
//
// The message format is:
//
//	"dxvalid: invalid schema {Schema}.{Field}: {Reason}" (when Field is set)
//	"dxvalid: invalid schema {Schema}: {Reason}" (when Field is empty)
func (e *SchemaError) Error() string {
	if e.Field != "" {
		return "dxvalid: invalid schema " + e.Schema + "." + e.Field + ": " + e.Reason
	}
	return "dxvalid: invalid schema " + e.Schema + ": " + e.Reason
}
