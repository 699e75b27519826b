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

// Package fieldpath resolves path expressions like "messages[0].content[2].text" against decoded
// JSON values.
//
// Values are expected in the form produced by encoding/json when decoding into an any: objects are
// map[string]any and arrays are []any.
package fieldpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned by [Parse] for malformed paths.
var ErrSyntax = errors.New("invalid path syntax")

// Segment is one step of a path. If IsIndex is set, the segment indexes into an array, otherwise it
// looks up Key in an object.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return "." + s.Key
}

// Parse splits a path into segments.
//
// A path is a sequence of keys separated by '.' and array indices in brackets. The leading '.' is
// optional. Keys may contain any character except '.', '[' and ']'.
func Parse(path string) ([]Segment, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSyntax)
	}
	var segs []Segment
	s := path
	for i := 0; len(s) > 0; i++ {
		switch {
		case s[0] == '[':
			end := strings.IndexByte(s, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated '[' in %q", ErrSyntax, path)
			}
			n, err := strconv.Atoi(s[1:end])
			if err != nil || n < 0 || s[1] == '+' {
				return nil, fmt.Errorf("%w: invalid index %q in %q", ErrSyntax, s[1:end], path)
			}
			segs = append(segs, Segment{Index: n, IsIndex: true})
			s = s[end+1:]
		case s[0] == '.' || i == 0:
			if s[0] == '.' {
				s = s[1:]
			}
			end := strings.IndexAny(s, ".[]")
			if end < 0 {
				end = len(s)
			}
			if end == 0 {
				return nil, fmt.Errorf("%w: empty key in %q", ErrSyntax, path)
			}
			segs = append(segs, Segment{Key: s[:end]})
			s = s[end:]
		default:
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrSyntax, s[0], path)
		}
	}
	return segs, nil
}

// Resolve walks root along path and returns the value found there.
//
// Resolve never fails. It reports false if the path is malformed, if root is neither an object nor
// an array, if a key or index does not exist, or if a segment has to be applied to a value of the
// wrong kind (including null).
func Resolve(root any, path string) (any, bool) {
	switch root.(type) {
	case map[string]any, []any:
	default:
		return nil, false
	}
	segs, err := Parse(path)
	if err != nil {
		return nil, false
	}
	return Walk(root, segs)
}

// Walk is like [Resolve] for a path that has already been parsed.
func Walk(root any, segs []Segment) (any, bool) {
	cur := root
	for _, seg := range segs {
		if seg.IsIndex {
			arr, ok := cur.([]any)
			if !ok || seg.Index >= len(arr) {
				return nil, false
			}
			cur = arr[seg.Index]
			continue
		}
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[seg.Key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
