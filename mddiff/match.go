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

package mddiff

import "znkr.io/reqdiff/internal/config"

type (
	// Block is one top level block of a document.
	Block = config.Block

	// Pair associates the block at position Before in the old document with the block at position
	// After in the new document.
	Pair = config.Pair

	// Extractor splits a document into blocks. If Extract fails, the document is split at blank
	// lines instead, see [Fallback].
	Extractor = config.Extractor

	// Matcher associates blocks of the old document with blocks of the new document. Only pairs with
	// a similarity above the threshold may be returned and every block may be part of at most one
	// pair.
	Matcher = config.Matcher

	// MovePolicy decides which of the unchanged pairs returned by a [Matcher] are reported as moved.
	MovePolicy = config.MovePolicy
)

type greedy struct{}

// Greedy is the default [Matcher]. It visits the blocks of the old document in order and pairs
// every block with the most similar block of the new document that has not been paired yet. Ties
// go to the earlier block of the new document.
//
// The result is returned in the order of the old document.
var Greedy Matcher = greedy{}

func (greedy) Match(before, after []Block, threshold float64) []Pair {
	used := make([]bool, len(after))
	var pairs []Pair
	for i, b := range before {
		best, bestSim := -1, threshold
		for j, a := range after {
			if used[j] {
				continue
			}
			if sim := Similarity(b.Content, a.Content); sim > bestSim {
				best, bestSim = j, sim
			}
		}
		if best >= 0 {
			used[best] = true
			pairs = append(pairs, Pair{Before: i, After: best, Similarity: bestSim})
		}
	}
	return pairs
}
