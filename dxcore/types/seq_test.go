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
	"reflect"
	"testing"

	dxerrors "dirpx.dev/dxvalid/dxcore/errors"
)

func TestList_Check(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []any
	}{
		{"coerces every element", []any{"1", "2"}, []any{int64(1), int64(2)}},
		{"typed slice accepted", []string{"1", "2"}, []any{int64(1), int64(2)}},
		{"empty", []any{}, []any{}},
		{"already coerced", []any{int64(1)}, []any{int64(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustCheck(t, List(Int()), tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Check(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestList_CheckShape(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"string is not a sequence", "12"},
		{"map is not a sequence", map[string]any{}},
		{"nil", nil},
		{"scalar", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if msg := mustFail(t, List(Int()), tt.input); msg != "is not a list" {
				t.Errorf("message = %q, want %q", msg, "is not a list")
			}
		})
	}
}

func TestList_CheckAggregatesAllElements(t *testing.T) {
	_, err := List(Int()).Check([]any{"1", "bad", "3", "worse"}, Options{})
	if err == nil {
		t.Fatal("Check() expected error, got none")
	}
	var ve *dxerrors.Error
	if !stderrors.As(err, &ve) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	want := []dxerrors.Cause{
		{Path: "[1]", Message: "is not a valid int"},
		{Path: "[3]", Message: "is not a valid int"},
	}
	if got := ve.Causes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Causes() = %v, want %v", got, want)
	}
}

func TestListRange_Check(t *testing.T) {
	typ := ListRange(Int(), 0, 1)

	if got := mustCheck(t, typ, []any{"1"}); !reflect.DeepEqual(got, []any{int64(1)}) {
		t.Errorf("Check() = %v", got)
	}
	if msg := mustFail(t, typ, []any{1, 2}); msg != "must be no more than 1 elements" {
		t.Errorf("message = %q, want %q", msg, "must be no more than 1 elements")
	}

	bounded := ListRange(Int(), 2, 4)
	if msg := mustFail(t, bounded, []any{1}); msg != "must be between 2 and 4 elements" {
		t.Errorf("message = %q, want %q", msg, "must be between 2 and 4 elements")
	}
}

func TestTuple_Check(t *testing.T) {
	typ := Tuple(Int(), 2)

	got := mustCheck(t, typ, []any{"1", "2"})
	if !reflect.DeepEqual(got, []any{int64(1), int64(2)}) {
		t.Errorf("Check() = %v", got)
	}

	if msg := mustFail(t, typ, []any{"1"}); msg != "must be exactly 2 elements" {
		t.Errorf("message = %q, want %q", msg, "must be exactly 2 elements")
	}
	if msg := mustFail(t, typ, "12"); msg != "is not a tuple" {
		t.Errorf("message = %q, want %q", msg, "is not a tuple")
	}
}

func TestSeq_Defaults(t *testing.T) {
	got, err := List(Int()).Default()
	if err != nil {
		t.Fatalf("List Default() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []any{}) {
		t.Errorf("List Default() = %v, want empty slice", got)
	}

	_, err = Tuple(Int(), 2).Default()
	var ude *dxerrors.UndefinedDefaultError
	if !stderrors.As(err, &ude) {
		t.Fatalf("Tuple Default() error = %v, want *errors.UndefinedDefaultError", err)
	}
}

func TestList_NestedPathPrefixes(t *testing.T) {
	typ := List(List(Int()))
	_, err := typ.Check([]any{[]any{"1"}, []any{"x"}}, Options{})
	if err == nil {
		t.Fatal("Check() expected error, got none")
	}
	var ve *dxerrors.Error
	if !stderrors.As(err, &ve) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	causes := ve.Causes()
	if len(causes) != 1 || causes[0].Path != "[1][0]" {
		t.Errorf("Causes() = %v, want single cause at [1][0]", causes)
	}
}
