// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reqdiff_test

import (
	"fmt"

	"znkr.io/reqdiff"
)

// Compare two strings rune by rune.
func ExampleEdits() {
	x := []rune("Hello, World")
	y := []rune("Hello, 世界")
	edits := reqdiff.Edits(x, y)
	for _, edit := range edits {
		switch edit.Op {
		case reqdiff.Match:
			fmt.Printf("%s", string(edit.X))
		case reqdiff.Delete:
			fmt.Printf("-%s", string(edit.X))
		case reqdiff.Insert:
			fmt.Printf("+%s", string(edit.Y))
		default:
			panic("never reached")
		}
	}
	// Output:
	// Hello, -W-o-r-l-d+世+界
}
