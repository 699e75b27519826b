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

// Package textdiff provides functions to compare text line by line.
//
// Lines are obtained by splitting on '\n' only. Nothing is trimmed or normalized: "a\r" and "a" are
// different lines, and an empty string after the last '\n' is a real empty line. The output keeps
// real empty lines ("") apart from placeholders for lines that have no counterpart (nil).
package textdiff

import (
	"strings"

	"znkr.io/reqdiff"
	"znkr.io/reqdiff/internal/config"
)

// Kind classifies a row of an aligned diff.
type Kind int

const (
	Same     Kind = iota // Left and right are the same line.
	Added                // Only right is set.
	Removed              // Only left is set.
	Modified             // Left and right are set and differ.
)

var kindNames = [...]string{"same", "added", "removed", "modified"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Row is one line of a side-by-side diff. A nil Left or Right means that the line has no
// counterpart on that side.
type Row struct {
	Kind  Kind    `json:"type"`
	Left  *string `json:"left"`
	Right *string `json:"right"`
}

// Hunk is a maximal run of rows that are not [Same]. StartRow and EndRow are inclusive indices into
// the rows passed to [Hunks].
type Hunk struct {
	StartRow int `json:"startRow"`
	EndRow   int `json:"endRow"`
}

// Lines compares the lines in x and y and returns one row for every line of the alignment.
//
// Matching lines become [Same] rows. A run of deletions and insertions between two matching lines
// is paired up by position: the i-th deleted line is put next to the i-th inserted line. Pairs
// become [Modified] rows, surplus deletions [Removed] rows and surplus insertions [Added] rows.
// The pairing is not a second diff, unrelated lines of a run end up next to each other.
//
// The underlying edit script is a shortest one, see [reqdiff.Edits] for the cost.
func Lines(x, y string) []Row {
	xlines := strings.Split(x, "\n")
	ylines := strings.Split(y, "\n")

	rows := make([]Row, 0, max(len(xlines), len(ylines)))
	var dels, ins []string
	flush := func() {
		for i := range max(len(dels), len(ins)) {
			var row Row
			if i < len(dels) {
				row.Left = &dels[i]
			}
			if i < len(ins) {
				row.Right = &ins[i]
			}
			switch {
			case row.Left == nil:
				row.Kind = Added
			case row.Right == nil:
				row.Kind = Removed
			default:
				row.Kind = Modified
			}
			rows = append(rows, row)
		}
		dels, ins = nil, nil
	}

	for _, e := range reqdiff.Edits(xlines, ylines) {
		switch e.Op {
		case reqdiff.Match:
			flush()
			line := e.X
			rows = append(rows, Row{Kind: Same, Left: &line, Right: &line})
		case reqdiff.Delete:
			dels = append(dels, e.X)
		case reqdiff.Insert:
			ins = append(ins, e.Y)
		}
	}
	flush()
	return rows
}

// Hunks finds all runs of changed rows.
//
// Hunks are disjoint and sorted by StartRow. By default every hunk covers exactly one run of rows
// that are not [Same]. With [reqdiff.Context], every hunk is widened by the given number of rows on
// both sides and hunks that overlap or touch are merged.
func Hunks(rows []Row, opts ...reqdiff.Option) []Hunk {
	cfg := config.FromOptions(opts, config.Context)

	var hunks []Hunk
	start := -1
	for i, row := range rows {
		changed := row.Kind != Same
		if changed && start < 0 {
			start = i
		}
		if !changed && start >= 0 {
			hunks = appendHunk(hunks, start, i-1, len(rows), cfg.Context)
			start = -1
		}
	}
	if start >= 0 {
		hunks = appendHunk(hunks, start, len(rows)-1, len(rows), cfg.Context)
	}
	return hunks
}

func appendHunk(hunks []Hunk, start, end, n, context int) []Hunk {
	h := Hunk{max(0, start-context), min(n-1, end+context)}
	if len(hunks) > 0 && hunks[len(hunks)-1].EndRow+1 >= h.StartRow {
		hunks[len(hunks)-1].EndRow = h.EndRow
		return hunks
	}
	return append(hunks, h)
}
