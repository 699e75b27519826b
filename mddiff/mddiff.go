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

// Package mddiff compares markdown documents paragraph by paragraph.
//
// Both documents are split into top level blocks (paragraphs, headings, code blocks, lists, block
// quotes and thematic breaks). Blocks of the old document are then associated with blocks of the
// new document by content similarity, so that edited, moved, added and removed blocks can be told
// apart.
//
// The matching is greedy: blocks of the old document are matched in document order, each to the
// most similar block of the new document that is still available. This is not a globally optimal
// assignment. The matching and move detection strategies can be replaced with [WithMatcher] and
// [WithMoves].
//
// Memory use is dominated by the similarity computation, which needs O(n) space for strings of
// length n, and time by the O(n·m) similarity computation for every pair of blocks.
package mddiff

import (
	"strings"

	"znkr.io/reqdiff"
	"znkr.io/reqdiff/internal/config"
)

// Status classifies a block of the result.
type Status int

const (
	Same     Status = iota // Block exists unchanged in both documents.
	Added                  // Block only exists in the new document.
	Removed                // Block only exists in the old document.
	Modified               // Block exists in both documents, but was edited.
	Moved                  // Block exists unchanged in both documents, but changed position.
)

var statusNames = [...]string{"same", "added", "removed", "modified", "moved"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Paragraph describes one block of the comparison.
//
// Index is the position of the block in the new document, or -1 for removed blocks.
// OriginalIndex is the position in the old document and nil for added blocks. MovedFrom is only
// set for moved blocks.
type Paragraph struct {
	ID            string `json:"id"`
	Status        Status `json:"status"`
	Kind          string `json:"kind"`
	Level         int    `json:"level,omitempty"`
	Content       string `json:"content"`
	Index         int    `json:"index"`
	OriginalIndex *int   `json:"originalIndex,omitempty"`
	MovedFrom     *int   `json:"movedFrom,omitempty"`
}

// Result is the outcome of [Diff].
type Result struct {
	Paragraphs  []Paragraph `json:"paragraphs"`
	TotalBefore int         `json:"totalBefore"`
	TotalAfter  int         `json:"totalAfter"`
	Changed     int         `json:"changedCount"`

	// Fallback is set if one of the documents could not be parsed and was split at blank lines
	// instead.
	Fallback bool `json:"fallback,omitempty"`
}

// Diff compares the blocks of two markdown documents.
//
// Paragraphs of the result are sorted by their position in the new document. Removed blocks have
// no such position and are appended at the end, in the order of the old document.
//
// If a document can't be parsed, it is split at blank lines and [Result.Fallback] is set; Diff
// never fails.
//
// The following options are supported: [Threshold], [ChangesOnly], [PreviewLen], [WithMatcher],
// [WithMoves], and [WithExtractor].
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Diff(before, after string, opts ...reqdiff.Option) Result {
	cfg := config.FromOptions(opts, config.Threshold|config.ChangesOnly|config.PreviewLen|
		config.MatcherFlag|config.MovesFlag|config.ExtractorFlag)

	ex := cfg.Extractor
	if ex == nil {
		ex = Markdown{PreviewLen: cfg.PreviewLen}
	}
	matcher := cfg.Matcher
	if matcher == nil {
		matcher = Greedy
	}
	moves := cfg.Moves
	if moves == nil {
		moves = Crossing
	}

	var r Result
	x, fx := blocks(ex, before, cfg.PreviewLen)
	y, fy := blocks(ex, after, cfg.PreviewLen)
	r.Fallback = fx || fy
	r.TotalBefore, r.TotalAfter = len(x), len(y)

	pairs := matcher.Match(x, y, cfg.Threshold)
	byAfter := make(map[int]int, len(pairs)) // after index -> pair index
	for i, p := range pairs {
		byAfter[p.After] = i
	}

	matched := make([]bool, len(x))
	for j, b := range y {
		i, ok := byAfter[j]
		if !ok {
			r.Paragraphs = append(r.Paragraphs, paragraph(b, Added, j))
			continue
		}
		p := pairs[i]
		matched[p.Before] = true
		var para Paragraph
		switch {
		case p.Similarity < 1:
			para = paragraph(b, Modified, j)
		case moves.Moved(pairs, i):
			para = paragraph(b, Moved, j)
			para.MovedFrom = ptr(p.Before)
		default:
			if cfg.ChangesOnly {
				continue
			}
			para = paragraph(b, Same, j)
		}
		para.OriginalIndex = ptr(p.Before)
		r.Paragraphs = append(r.Paragraphs, para)
	}
	for i, b := range x {
		if matched[i] {
			continue
		}
		para := paragraph(b, Removed, -1)
		para.OriginalIndex = ptr(i)
		r.Paragraphs = append(r.Paragraphs, para)
	}

	for _, para := range r.Paragraphs {
		if para.Status != Same {
			r.Changed++
		}
	}
	return r
}

// blocks extracts the blocks of a document, falling back to splitting at blank lines if the
// extractor fails.
func blocks(ex Extractor, src string, previewLen int) ([]Block, bool) {
	if strings.TrimSpace(src) == "" {
		return nil, false
	}
	bs, err := ex.Extract(src)
	if err != nil {
		return Fallback(src, previewLen), true
	}
	return bs, false
}

func paragraph(b Block, status Status, index int) Paragraph {
	return Paragraph{
		ID:      b.ID,
		Status:  status,
		Kind:    b.Kind,
		Level:   b.Level,
		Content: b.Content,
		Index:   index,
	}
}

func ptr[T any](v T) *T { return &v }
