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

package query

import (
	"context"
	"encoding/json"
	"fmt"

	"znkr.io/reqdiff"
	"znkr.io/reqdiff/mddiff"
	"znkr.io/reqdiff/shape"
	"znkr.io/reqdiff/textdiff"
)

// InlineRow holds the character level changes of a modified row.
type InlineRow struct {
	Row   int             `json:"row"`
	Spans []textdiff.Span `json:"spans"`
}

// TextDiff is the result of [Service.DiffText].
type TextDiff struct {
	Rows   []textdiff.Row  `json:"rows"`
	Hunks  []textdiff.Hunk `json:"hunks"`
	Inline []InlineRow     `json:"inline,omitempty"`
}

func (s *Service) checkSize(texts ...string) error {
	for _, t := range texts {
		if len(t) > s.settings.Diff.MaxBytes {
			return fmt.Errorf("%w: %d bytes exceeds the limit of %d bytes", ErrTooLarge, len(t), s.settings.Diff.MaxBytes)
		}
	}
	return nil
}

// DiffText compares two texts line by line. Every hunk is extended by contextLines unchanged rows.
// Modified rows also get a character level comparison.
func (s *Service) DiffText(before, after string, contextLines int) (*TextDiff, error) {
	if err := s.checkSize(before, after); err != nil {
		return nil, err
	}
	rows := textdiff.Lines(before, after)
	res := &TextDiff{
		Rows:  rows,
		Hunks: textdiff.Hunks(rows, reqdiff.Context(contextLines)),
	}
	for i, row := range rows {
		if row.Kind == textdiff.Modified {
			res.Inline = append(res.Inline, InlineRow{Row: i, Spans: textdiff.Inline(*row.Left, *row.Right)})
		}
	}
	return res, nil
}

// DiffDocuments compares two markdown documents paragraph by paragraph. The configured similarity
// threshold applies unless opts set a different one.
func (s *Service) DiffDocuments(before, after string, opts ...reqdiff.Option) (*mddiff.Result, error) {
	if err := s.checkSize(before, after); err != nil {
		return nil, err
	}
	opts = append([]reqdiff.Option{mddiff.Threshold(s.settings.Diff.SimilarityThreshold)}, opts...)
	res := mddiff.Diff(before, after, opts...)
	if res.Fallback {
		s.logger.Warn().Msg("Markdown parsing failed, compared blank line separated blocks instead")
	}
	return &res, nil
}

// DiffBodies compares the original and modified bodies of a record line by line. Decoded bodies are
// compared in their indented JSON form, so that every field is on a line of its own.
func (s *Service) DiffBodies(ctx context.Context, id string, contextLines int) (*TextDiff, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	before, err := bodyText(r.OriginalBody)
	if err != nil {
		return nil, err
	}
	after, err := bodyText(r.ModifiedBody)
	if err != nil {
		return nil, err
	}
	return s.DiffText(before, after, contextLines)
}

func bodyText(body any) (string, error) {
	switch body := body.(type) {
	case string:
		return body, nil
	case nil:
		return "null", nil
	}
	if body == shape.Undefined {
		return "", nil
	}
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding body: %w", err)
	}
	return string(data), nil
}
