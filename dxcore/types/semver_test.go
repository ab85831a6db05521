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
	"testing"

	dxerrors "dirpx.dev/dxvalid/dxcore/errors"
)

func TestSemver_Check(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain", "1.2.3", "1.2.3"},
		{"leading v stripped", "v2.0.0", "2.0.0"},
		{"prerelease", "1.0.0-rc.1", "1.0.0-rc.1"},
		{"metadata", "1.0.0+build.42", "1.0.0+build.42"},
		{"byte string", []byte("0.1.0"), "0.1.0"},
		{"whitespace tolerated", " 1.2.3 ", "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustCheck(t, Semver(), tt.input)
			if got != tt.want {
				t.Errorf("Check(%v) = %v, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSemver_CheckBad(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"not a version", "banana"},
		{"missing patch", "1.2"},
		{"not a string", 123},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := mustFail(t, Semver(), tt.input); msg != "is not a valid semantic version" {
				t.Errorf("message = %q, want %q", msg, "is not a valid semantic version")
			}
		})
	}
}

func TestSemver_Default(t *testing.T) {
	_, err := Semver().Default()
	var ude *dxerrors.UndefinedDefaultError
	if !stderrors.As(err, &ude) {
		t.Fatalf("Default() error = %v, want *errors.UndefinedDefaultError", err)
	}
	if ude.Type != "Semver" {
		t.Errorf("UndefinedDefaultError.Type = %q, want Semver", ude.Type)
	}
}
