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

package textdiff_test

import (
	"fmt"

	"znkr.io/reqdiff/textdiff"
)

func ExampleLines() {
	x := "model: small\ntemperature: 0.2\nstream: true"
	y := "model: large\ntemperature: 0.2"

	rows := textdiff.Lines(x, y)
	for _, row := range rows {
		left, right := "-", "-"
		if row.Left != nil {
			left = *row.Left
		}
		if row.Right != nil {
			right = *row.Right
		}
		fmt.Printf("%-8v | %-16s | %s\n", row.Kind, left, right)
	}
	fmt.Println(textdiff.Hunks(rows))
	// Output:
	// modified | model: small     | model: large
	// same     | temperature: 0.2 | temperature: 0.2
	// removed  | stream: true     | -
	// [{0 0} {2 2}]
}

func ExampleInline() {
	for _, s := range textdiff.Inline(`"status": 200`, `"status": 404`) {
		fmt.Printf("%v %q\n", s.Op, s.Text)
	}
	// Output:
	// Match "\"status\": "
	// Delete "200"
	// Insert "404"
}
