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
	"testing"
)

func TestValidate_DispatchesToDescriptor(t *testing.T) {
	got, err := Validate(Int(), "42", Options{})
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if got != int64(42) {
		t.Errorf("Validate() = %v, want 42", got)
	}

	if _, err := Validate(Int(), "x", Options{}); err == nil {
		t.Error("Validate() expected error for bad input")
	}
}

func TestValidate_ThreadsOptionsDown(t *testing.T) {
	// Options are handled by record schemas; for plain descriptors they
	// must simply pass through without changing behavior.
	got, err := Validate(List(Int()), []any{"1"}, Options{Optional: true})
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []any{int64(1)}) {
		t.Errorf("Validate() = %v", got)
	}
}

func TestValidate_ConcurrentReuse(t *testing.T) {
	typ := ListRange(BoundedInt(1, 100), 1, 10)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if _, err := Validate(typ, []any{"7", "42"}, Options{}); err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	close(done)
}
