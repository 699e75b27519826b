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

package fieldpath

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		path string
		want []Segment
	}{
		{"a", []Segment{{Key: "a"}}},
		{".a", []Segment{{Key: "a"}}},
		{"a.b", []Segment{{Key: "a"}, {Key: "b"}}},
		{"a[0].b", []Segment{{Key: "a"}, {Index: 0, IsIndex: true}, {Key: "b"}}},
		{"[3]", []Segment{{Index: 3, IsIndex: true}}},
		{"m[1][12]", []Segment{{Key: "m"}, {Index: 1, IsIndex: true}, {Index: 12, IsIndex: true}}},
		{"tool-calls.$ref", []Segment{{Key: "tool-calls"}, {Key: "$ref"}}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.path, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) result is different [-want,+got]:\n%s", tt.path, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, path := range []string{"", ".", "a..b", "a.", "a[", "a[x]", "a[-1]", "a[+1]", "a[]", "a]b", "a[0]b"} {
		t.Run(path, func(t *testing.T) {
			_, err := Parse(path)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) = %v, want ErrSyntax", path, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	var root any
	doc := `{
		"a": [{"b": 1}],
		"n": null,
		"s": "text",
		"messages": [
			{"role": "user", "content": [{"type": "text", "text": "hi"}, {"type": "image"}]}
		]
	}`
	if err := json.Unmarshal([]byte(doc), &root); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		root   any
		path   string
		want   any
		wantOK bool
	}{
		{name: "nested", root: root, path: "a[0].b", want: 1.0, wantOK: true},
		{name: "deep", root: root, path: "messages[0].content[0].text", want: "hi", wantOK: true},
		{name: "object", root: root, path: "messages[0].content[1]", want: map[string]any{"type": "image"}, wantOK: true},
		{name: "null-value", root: root, path: "n", want: nil, wantOK: true},
		{name: "through-scalar", root: map[string]any{"a": 1.0}, path: "a.b.c"},
		{name: "through-null", root: root, path: "n.x"},
		{name: "missing-key", root: root, path: "nope"},
		{name: "out-of-range", root: root, path: "a[1]"},
		{name: "index-on-object", root: root, path: "s[0]"},
		{name: "key-on-array", root: root, path: "a.b"},
		{name: "empty-path", root: root, path: ""},
		{name: "malformed", root: root, path: "a[0"},
		{name: "scalar-root", root: "text", path: "a"},
		{name: "nil-root", root: nil, path: "a"},
		{name: "array-root", root: []any{"x", "y"}, path: "[1]", want: "y", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.root, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(..., %q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve(..., %q) result is different [-want,+got]:\n%s", tt.path, diff)
			}
		})
	}
}
