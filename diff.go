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

package reqdiff

import (
	"fmt"
	"strings"

	"znkr.io/reqdiff/internal/myers"
)

// Op describes an edit operation.
type Op int

const (
	Match  Op = iota // Two slice elements match
	Delete           // A deletion from an element on the left slice
	Insert           // An insertion of an element from the right side
)

func (op Op) String() string {
	switch op {
	case Match:
		return "Match"
	case Delete:
		return "Delete"
	case Insert:
		return "Insert"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// MarshalText implements [encoding.TextMarshaler]; ops are encoded as "match", "delete" and
// "insert".
func (op Op) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(op.String())), nil
}

// Edit describes a single edit of a diff.
//
//   - For Match, both X and Y contain the matching element.
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Edits compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// Edits returns one edit for every element in the input slices. If x and y are identical, the
// output will consist of a match edit for every input element. The result is a shortest edit
// script; among the shortest scripts, deletions are preferred over insertions at the start of a
// run of changes.
func Edits[T comparable](x, y []T) []Edit[T] {
	return edits(x, y, myers.Diff(x, y))
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other.
//
// EditsFunc returns edits for every element in the input. If both x and y are identical, the output
// will consist of a match edit for every input element.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool) []Edit[T] {
	return edits(x, y, myers.DiffFunc(x, y, eq))
}

func edits[T any](x, y []T, script []myers.Op) []Edit[T] {
	if len(script) == 0 {
		return nil
	}
	eout := make([]Edit[T], 0, len(script))
	s, t := 0, 0
	for _, op := range script {
		switch op {
		case myers.Match:
			eout = append(eout, Edit[T]{Op: Match, X: x[s], Y: y[t]})
			s++
			t++
		case myers.Delete:
			eout = append(eout, Edit[T]{Op: Delete, X: x[s]})
			s++
		case myers.Insert:
			eout = append(eout, Edit[T]{Op: Insert, Y: y[t]})
			t++
		}
	}
	return eout
}
