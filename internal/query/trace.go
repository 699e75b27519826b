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
	"cmp"
	"context"
	"encoding/json"
	"strings"
)

// TraceStep is one step of the transformation chain applied to a request.
type TraceStep struct {
	Step         string         `json:"step"`
	FromProtocol string         `json:"fromProtocol,omitempty"`
	ToProtocol   string         `json:"toProtocol,omitempty"`
	Changes      map[string]any `json:"changes"`
}

// TraceResult is the result of [Service.Trace].
type TraceResult struct {
	RequestID      string      `json:"requestId"`
	TransformChain []TraceStep `json:"transformChain"`
}

// Trace lists the transformation steps recorded for a request: first the names of the
// transformer chain, then the steps of the recorded trace, if it can be decoded.
func (s *Service) Trace(ctx context.Context, id string) (*TraceResult, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &TraceResult{RequestID: id, TransformChain: []TraceStep{}}
	for _, step := range strings.Split(r.TransformerChain, ",") {
		if step = strings.TrimSpace(step); step != "" {
			res.TransformChain = append(res.TransformChain, TraceStep{Step: step, Changes: noChanges()})
		}
	}

	if r.TransformTrace == "" {
		return res, nil
	}
	var trace []struct {
		Step         string         `json:"step"`
		Name         string         `json:"name"`
		FromProtocol string         `json:"fromProtocol"`
		ToProtocol   string         `json:"toProtocol"`
		Changes      map[string]any `json:"changes"`
	}
	if err := json.Unmarshal([]byte(r.TransformTrace), &trace); err != nil {
		s.logger.Debug().Err(err).Str("id", id).Msg("Ignoring undecodable transform trace")
		return res, nil
	}
	for _, t := range trace {
		step := TraceStep{
			Step:         cmp.Or(t.Step, t.Name, "unknown"),
			FromProtocol: t.FromProtocol,
			ToProtocol:   t.ToProtocol,
			Changes:      t.Changes,
		}
		if step.Changes == nil {
			step.Changes = noChanges()
		}
		res.TransformChain = append(res.TransformChain, step)
	}
	return res, nil
}

func noChanges() map[string]any {
	return map[string]any{
		"addedFields":   []string{},
		"removedFields": []string{},
		"renamedFields": map[string]string{},
		"typeChanges":   map[string]any{},
	}
}
