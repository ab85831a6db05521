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

package util

import "testing"

func TestKoolJoin(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		phrases []string
		want    string
	}{
		{"empty", "and", nil, ""},
		{"single", "and", []string{"a is required"}, "a is required"},
		{"pair no comma", "and", []string{"a is required", "b is required"}, "a is required and b is required"},
		{"triple oxford", "and", []string{"a", "b", "c"}, "a, b, and c"},
		{"quad oxford", "and", []string{"a", "b", "c", "d"}, "a, b, c, and d"},
		{"other word", "or", []string{"a", "b"}, "a or b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KoolJoin(tt.word, tt.phrases); got != tt.want {
				t.Errorf("KoolJoin() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKoolJoin_DoesNotMutateInput(t *testing.T) {
	phrases := []string{"a", "b", "c"}
	KoolJoin("and", phrases)
	if phrases[2] != "c" {
		t.Errorf("KoolJoin mutated its input: %v", phrases)
	}
}
