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

package shape

import (
	"maps"
	"slices"
)

// TypeChange records that the kind of a value changed.
type TypeChange struct {
	From Kind `json:"from"`
	To   Kind `json:"to"`
}

// LengthChange records that the length of an array changed.
type LengthChange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Result is the outcome of [Compare]. All paths are rooted at the label passed to Compare.
type Result struct {
	AddedFields        []string                `json:"addedFields"`
	RemovedFields      []string                `json:"removedFields"`
	TypeChanges        map[string]TypeChange   `json:"typeChanges"`
	ArrayLengthChanges map[string]LengthChange `json:"arrayLengthChanges"`
}

// Empty reports whether the comparison found no differences.
func (r *Result) Empty() bool {
	return len(r.AddedFields) == 0 && len(r.RemovedFields) == 0 && len(r.TypeChanges) == 0 &&
		len(r.ArrayLengthChanges) == 0
}

// Compare walks before and after in parallel and reports how their shapes differ.
//
// If the kinds of two values at the same path differ, a type change is recorded and the subtrees
// below that path are not compared. Arrays are compared by length only. For objects, keys only
// present in after are added fields, keys only present in before are removed fields, and values of
// common keys are compared recursively.
//
// Paths are formed by joining root and the keys along the way with '.'; if root is empty, the path
// of a top level key is the key itself. Object keys are visited in sorted order, so the output is
// deterministic.
func Compare(before, after any, root string) Result {
	r := Result{
		AddedFields:        []string{},
		RemovedFields:      []string{},
		TypeChanges:        map[string]TypeChange{},
		ArrayLengthChanges: map[string]LengthChange{},
	}
	compare(&r, before, after, root)
	return r
}

func compare(r *Result, before, after any, path string) {
	kb, ka := KindOf(before), KindOf(after)
	if kb != ka {
		r.TypeChanges[path] = TypeChange{From: kb, To: ka}
		return
	}

	switch kb {
	case KindArray:
		if lb, la := length(before), length(after); lb != la {
			r.ArrayLengthChanges[path] = LengthChange{From: lb, To: la}
		}
	case KindObject:
		fb, fa := fields(before), fields(after)
		for _, key := range slices.Sorted(maps.Keys(fa)) {
			if _, ok := fb[key]; !ok {
				r.AddedFields = append(r.AddedFields, join(path, key))
			}
		}
		for _, key := range slices.Sorted(maps.Keys(fb)) {
			if _, ok := fa[key]; !ok {
				r.RemovedFields = append(r.RemovedFields, join(path, key))
			}
		}
		for _, key := range slices.Sorted(maps.Keys(fb)) {
			if va, ok := fa[key]; ok {
				compare(r, fb[key], va, join(path, key))
			}
		}
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
