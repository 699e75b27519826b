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

// Package myers contains an implementation of Myers' algorithm.
//
// The implementation in this package is the basic greedy variant described in section 2 of the
// paper. It keeps a snapshot of the furthest reaching paths for every d in order to reconstruct the
// edit script by walking the snapshots backwards. That's simpler than the linear space variant at
// the price of O((N+M)^2) memory in the worst case. Callers are expected to bound the input size.
//
// The runtime is O((N+M)D) where N and M are the lengths of the inputs and D is the number of
// differences. No heuristics are applied, the result is always a shortest edit script.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For simplicity, let's say that T is the []byte representation of string and the inputs are x =
// "ABCABBA" and y = "CBABAC". Then we can represent all possible edits from x to y with the graph:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// Every vertex (intersections in the graph above) corresponds to a state. The top left (0,0)
// corresponds to x and bottom right (7,6) to y.
//
// Every edge represents an edit. A step to the right represents a deletion of an element (e.g.
// moving from (0,0) to (1,0) deletes the first "A") and a step down represents an insertion (e.g.
// moving from (0,0) to (0,1) inserts a "C"). When both elements are identical, we also have
// diagonal edges representing a match.
//
// The idea behind Myers' algorithm is to find an optimal diff (fewest insertions and deletions) by
// finding a minimum-cost path from the top left (i.e. x) to the bottom right (i.e. y) where
// horizontal and vertical edges have a cost of 1 and diagonal edges have a cost of 0.
//
// We use s and t for the horizontal and vertical coordinates and k = s - t for diagonals. The k=0
// diagonal is the diagonal starting in (0, 0).
//
// Let a D-path be a path that has exactly D non-diagonal edges. A 0-path consists of only diagonal
// edges. A D-path consists of a (D-1)-path plus a non-diagonal edge plus a possibly empty sequence
// of diagonal edges.
//
// Lemma 1: A D-path must end on diagonal k in {-D, -D+2, ..., D-2, D}.
//
// A D-path is furthest reaching in diagonal k if and only if it is one of the D-paths ending on
// diagonal k whose end point has the greatest possible column number of all such paths.
//
// Lemma 2: A furthest reaching D-path on diagonal k can without loss of generality be decomposed
// into a furthest reaching (D-1)-path on diagonal k-1, followed by a horizontal edge, followed by
// the longest possible sequence of diagonal edges or it may be decomposed into a furthest reaching
// (D-1)-path on diagonal k+1, followed by a vertical edge, followed by the longest possible
// sequence of diagonal edges.
//
// The lemma provides us with a greedy algorithm: for d = 0, 1, ..., compute the furthest reaching
// d-path on every diagonal from the (d-1)-paths on the neighboring diagonals until one of them
// reaches (N,M). Recording the furthest reaching column of every diagonal for every d lets us
// retrace the decisions: on diagonal k at step d, the path came from k+1 (insertion) if k = -d or
// if the (d-1)-path on k+1 reached further than the one on k-1, otherwise it came from k-1
// (deletion).
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
//
// The algorithm was independently discovered by Ekko Ukkonen:
//
// Ukkonen, E. Algorithms for approximate string matching. Information and Control, Volume 64,
// Issues 1-3, 100-118 (1985). https://doi.org/10.1016/S0019-9958(85)80046-2
package myers
