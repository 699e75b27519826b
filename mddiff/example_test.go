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

package mddiff_test

import (
	"fmt"

	"znkr.io/reqdiff/mddiff"
)

func ExampleDiff() {
	before := `# Setup

Install the tool with the package manager.

Run the tests before committing.
`
	after := `# Setup

Run the tests before committing.

Install the tool with your package manager.
`
	r := mddiff.Diff(before, after)
	for _, p := range r.Paragraphs {
		fmt.Printf("%-8v %s\n", p.Status, p.Content)
	}
	fmt.Println("changed:", r.Changed)
	// Output:
	// same     Setup
	// moved    Run the tests before committing.
	// modified Install the tool with your package manager.
	// changed: 2
}
