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

package fieldpath_test

import (
	"encoding/json"
	"fmt"

	"znkr.io/reqdiff/fieldpath"
)

func ExampleResolve() {
	var body any
	_ = json.Unmarshal([]byte(`{"messages": [{"role": "user", "content": "hello"}]}`), &body)

	v, ok := fieldpath.Resolve(body, "messages[0].content")
	fmt.Println(v, ok)

	v, ok = fieldpath.Resolve(body, "messages[0].content.text")
	fmt.Println(v, ok)
	// Output:
	// hello true
	// <nil> false
}
