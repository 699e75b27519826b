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

package myers

import (
	"fmt"
	"slices"
)

// Op is a single step of an edit script.
type Op uint8

const (
	Match  Op = iota // x[s] and y[t] match, advance both.
	Delete           // Delete x[s], advance s.
	Insert           // Insert y[t], advance t.
)

func (op Op) String() string {
	switch op {
	case Match:
		return "M"
	case Delete:
		return "D"
	case Insert:
		return "I"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Diff compares the contents of x and y and returns a shortest edit script that transforms x into
// y. Replaying the script from the start with one cursor into x and one into y visits every element
// of both inputs exactly once.
func Diff[T comparable](x, y []T) []Op {
	return DiffFunc(x, y, func(a, b T) bool { return a == b })
}

// DiffFunc is like [Diff] but uses eq to compare elements.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) []Op {
	n, m := len(x), len(y)
	if n+m == 0 {
		return nil
	}

	// v[off+k] is the furthest reaching s on diagonal k. The slice is large enough for every
	// diagonal a path can reach in n+m steps.
	dmax := n + m
	off := dmax
	v := make([]int, 2*dmax+1)
	trace := make([][]int, 0, 8)

	for d := 0; d <= dmax; d++ {
		// Snapshot of the (d-1)-paths, needed to retrace the path later.
		trace = append(trace, slices.Clone(v))

		for k := -d; k <= d; k += 2 {
			var s int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				s = v[off+k+1] // vertical edge from k+1 (insertion)
			} else {
				s = v[off+k-1] + 1 // horizontal edge from k-1 (deletion)
			}
			t := s - k
			for s < n && t < m && eq(x[s], y[t]) {
				s++
				t++
			}
			v[off+k] = s

			if s >= n && t >= m {
				return backtrack(trace, n, m, off)
			}
		}
	}
	panic("never reached")
}

// backtrack walks the snapshots in trace backwards from (n, m) to (0, 0) and returns the edit
// script in forward order.
func backtrack(trace [][]int, n, m, off int) []Op {
	script := make([]Op, 0, n+m)
	s, t := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := s - t

		var pk int
		if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := v[off+pk]
		pt := ps - pk

		for s > ps && t > pt {
			script = append(script, Match)
			s--
			t--
		}
		if d == 0 {
			break
		}
		if s == ps {
			script = append(script, Insert)
			t--
		} else {
			script = append(script, Delete)
			s--
		}
	}
	slices.Reverse(script)
	return script
}
