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
	"fmt"

	"znkr.io/reqdiff/shape"
)

// Part selects the bodies described by [Service.Structure].
type Part string

const (
	PartRequest   Part = "request"
	PartResponse  Part = "response"
	PartTransform Part = "transform"
)

// StructureResult is the result of [Service.Structure]. Structure maps body names to their
// structure; missing optional bodies are left out.
type StructureResult struct {
	RequestID string                      `json:"requestId"`
	Structure map[string]*shape.Structure `json:"structure"`
}

// Structure describes the layout of the bodies of a record. The request and transform parts both
// describe the original, transformed and modified bodies, the response part describes the
// response body.
func (s *Service) Structure(ctx context.Context, id string, part Part) (*StructureResult, error) {
	if part == "" {
		part = PartRequest
	}
	if part != PartRequest && part != PartResponse && part != PartTransform {
		return nil, fmt.Errorf("%w: unknown part %q", ErrInvalidArgument, part)
	}
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &StructureResult{RequestID: id, Structure: map[string]*shape.Structure{}}
	add := func(name string, body any, optional bool) {
		if optional && body == shape.Undefined {
			return
		}
		res.Structure[name] = shape.Analyze(body)
	}
	switch part {
	case PartRequest, PartTransform:
		add("originalBody", r.OriginalBody, false)
		add("transformedBody", r.TransformedBody, true)
		add("modifiedBody", r.ModifiedBody, false)
	case PartResponse:
		add("responseBody", r.ResponseBody, true)
	}
	return res, nil
}
