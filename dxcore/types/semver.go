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
	"strings"

	bsemver "github.com/blang/semver/v4"

	dxerrors "dirpx.dev/dxvalid/dxcore/errors"
)

// Semver returns a descriptor that coerces a version string to its
// canonical Semantic Versioning 2.0.0 form.
//
// Check accepts a string or byte string in the format
// "Major.Minor.Patch[-Prerelease][+Metadata]"; an optional leading "v" is
// tolerated and stripped. Parsing uses github.com/blang/semver/v4 for full
// SemVer 2.0.0 compliance, and the coerced output is the canonical
// rendering (so "v1.2.3" coerces to "1.2.3"). Anything else fails with
// "is not a valid semantic version".
//
// Semver is an application-specific extension of the scalar descriptor
// family; it demonstrates how project authors can add their own
// descriptors against the Type interface. There is no sensible default
// version, so Default fails with an UndefinedDefaultError.
func Semver() Type { return semverType{} }

type semverType struct{}

func (semverType) Default() (any, error) {
	return nil, &dxerrors.UndefinedDefaultError{Type: "Semver"}
}

func (semverType) Check(v any, _ Options) (any, error) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		return nil, dxerrors.Newf("", "is not a valid semantic version")
	}
	bv, err := bsemver.Parse(strings.TrimPrefix(strings.TrimSpace(s), "v"))
	if err != nil {
		return nil, dxerrors.Newf("", "is not a valid semantic version")
	}
	return bv.String(), nil
}
