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

// Package util provides small string utilities shared by dxvalid packages.
package util

import "strings"

// KoolJoin joins a sequence of phrases into one readable list, inserting
// the connector word before the final phrase when there are three or more
// phrases.
//
// Fewer than three phrases are joined with the connector word only, no
// commas. Three or more phrases are joined comma-separated, with the
// connector word prepended to the final phrase (Oxford-style aggregation).
//
// Examples:
//
//	KoolJoin("and", []string{"a"})           -> "a"
//	KoolJoin("and", []string{"a", "b"})      -> "a and b"
//	KoolJoin("and", []string{"a", "b", "c"}) -> "a, b, and c"
//
// KoolJoin is a pure function: it never truncates, reorders, or mutates
// its input. Its only in-repo caller is the error formatter, but it is
// exported as a general list-joining helper.
func KoolJoin(word string, phrases []string) string {
	if len(phrases) < 3 {
		return strings.Join(phrases, " "+word+" ")
	}
	joined := make([]string, len(phrases))
	copy(joined, phrases)
	joined[len(joined)-1] = word + " " + joined[len(joined)-1]
	return strings.Join(joined, ", ")
}
