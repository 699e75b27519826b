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

package config

// Block is one top level block of a document, in document order.
type Block struct {
	ID      string // Kind specific prefix followed by the block index, e.g. "heading-2".
	Kind    string // paragraph, heading, code, list, listItem, blockquote, thematicBreak
	Level   int    // Heading level, zero for other kinds.
	Lang    string // Code block language, empty for other kinds.
	Content string // Normalized text. Code blocks carry a label instead of their body.
	Index   int    // Position in its own document.
}

// Pair is a match between the Before-th block of the old document and the After-th block of the
// new document.
type Pair struct {
	Before, After int
	Similarity    float64
}

// Extractor splits a document into blocks.
type Extractor interface {
	Extract(src string) ([]Block, error)
}

// Matcher associates blocks of two documents. Every block may appear in at most one pair.
type Matcher interface {
	Match(before, after []Block, threshold float64) []Pair
}

// MovePolicy decides if pairs[i] describes a block that moved.
type MovePolicy interface {
	Moved(pairs []Pair, i int) bool
}
