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
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"znkr.io/reqdiff/fieldpath"
	"znkr.io/reqdiff/shape"
)

// DiffMode selects what [Service.DiffRecords] compares.
type DiffMode string

const (
	// ModeStructure compares the shapes of the bodies of two records.
	ModeStructure DiffMode = "structure"

	// ModeField compares the value at a path in two records.
	ModeField DiffMode = "field"
)

// DiffOptions configures [Service.DiffRecords].
type DiffOptions struct {
	Mode  DiffMode
	Field string // Path into the record, required for ModeField.
}

// FieldDiff holds the values of one field in two records.
type FieldDiff struct {
	From      any  `json:"from"`
	To        any  `json:"to"`
	Different bool `json:"different"`
}

// DiffResult is the result of [Service.DiffRecords].
type DiffResult struct {
	Request1              string                  `json:"request1"`
	Request2              string                  `json:"request2"`
	StructuralDifferences map[string]shape.Result `json:"structuralDifferences,omitempty"`
	FieldDifferences      map[string]FieldDiff    `json:"fieldDifferences,omitempty"`
}

// DiffRecords compares two records.
//
// In structure mode, the shapes of the original and modified bodies are compared, and those of the
// transformed bodies if at least one record has one. In field mode, the value at opts.Field is
// resolved in both records and compared by its JSON encoding.
func (s *Service) DiffRecords(ctx context.Context, id1, id2 string, opts DiffOptions) (*DiffResult, error) {
	if opts.Mode == "" {
		opts.Mode = ModeStructure
	}
	if opts.Mode != ModeStructure && opts.Mode != ModeField {
		return nil, fmt.Errorf("%w: unknown diff mode %q", ErrInvalidArgument, opts.Mode)
	}
	if opts.Mode == ModeField && opts.Field == "" {
		return nil, fmt.Errorf("%w: field mode requires a field", ErrInvalidArgument)
	}

	r1, err := s.load(ctx, id1)
	if err != nil {
		return nil, err
	}
	r2, err := s.load(ctx, id2)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("request1", id1).Str("request2", id2).Str("mode", string(opts.Mode)).Msg("Comparing records")

	res := &DiffResult{Request1: id1, Request2: id2}
	switch opts.Mode {
	case ModeStructure:
		res.StructuralDifferences = map[string]shape.Result{
			"originalBody": shape.Compare(r1.OriginalBody, r2.OriginalBody, "root"),
			"modifiedBody": shape.Compare(r1.ModifiedBody, r2.ModifiedBody, "root"),
		}
		if r1.TransformedBody != shape.Undefined || r2.TransformedBody != shape.Undefined {
			res.StructuralDifferences["transformedBody"] = shape.Compare(r1.TransformedBody, r2.TransformedBody, "root")
		}
	case ModeField:
		from, fromOK := fieldpath.Resolve(r1.Map(), opts.Field)
		to, toOK := fieldpath.Resolve(r2.Map(), opts.Field)
		different := fromOK != toOK
		if fromOK && toOK {
			different, err = differentJSON(from, to)
			if err != nil {
				return nil, err
			}
		}
		res.FieldDifferences = map[string]FieldDiff{
			opts.Field: {From: from, To: to, Different: different},
		}
	}
	return res, nil
}

func differentJSON(a, b any) (bool, error) {
	ja, err := json.Marshal(a)
	if err != nil {
		return false, fmt.Errorf("encoding value: %w", err)
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return false, fmt.Errorf("encoding value: %w", err)
	}
	return !bytes.Equal(ja, jb), nil
}
