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

package textdiff

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"znkr.io/reqdiff"
)

// Span is a piece of a modified line.
//
//   - For Match, Text is present in both lines.
//   - For Delete, Text is only present in the left line.
//   - For Insert, Text is only present in the right line.
type Span struct {
	Op   reqdiff.Op `json:"op"`
	Text string     `json:"text"`
}

// Inline compares two lines character by character, typically Left and Right of a [Modified] row,
// and returns the spans that make up both lines. The spans are cleaned up to be easy to read:
// short coincidental matches inside a larger change are folded into the change.
//
// Concatenating the Match and Delete spans yields left, concatenating the Match and Insert spans
// yields right.
func Inline(left, right string) []Span {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(left, right, false))

	spans := make([]Span, 0, len(diffs))
	for _, d := range diffs {
		var op reqdiff.Op
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = reqdiff.Match
		case diffmatchpatch.DiffDelete:
			op = reqdiff.Delete
		case diffmatchpatch.DiffInsert:
			op = reqdiff.Insert
		}
		spans = append(spans, Span{Op: op, Text: d.Text})
	}
	return spans
}
