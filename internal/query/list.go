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
	"slices"
	"strings"

	"znkr.io/reqdiff/internal/records"
)

// TimeRange spans the timestamps of the requests of a session, in Unix milliseconds.
type TimeRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// SessionSummary describes the requests of one conversation.
type SessionSummary struct {
	ConversationID string    `json:"conversationId"`
	RequestCount   int       `json:"requestCount"`
	TimeRange      TimeRange `json:"timeRange"`
	Client         string    `json:"client"`
	Supplier       string    `json:"supplier"`
	HasError       bool      `json:"hasError"`
	Models         []string  `json:"models"`
}

// SessionsResult is the result of [Service.ListSessions]. Total counts all matching sessions,
// including those cut off by the limit.
type SessionsResult struct {
	Total    int              `json:"total"`
	Sessions []SessionSummary `json:"sessions"`
}

// ListSessionsOptions configures [Service.ListSessions].
type ListSessionsOptions struct {
	Limit int // Default 20.

	// Filter is a comma separated list of key=value pairs. Supported keys are client, supplier,
	// supplierId and hasError. Other keys are ignored.
	Filter string
}

// ListSessions groups the records by conversation and returns the sessions with the most recent
// activity first.
func (s *Service) ListSessions(ctx context.Context, opts ListSessionsOptions) (*SessionsResult, error) {
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	filters := parseFilter(opts.Filter)

	var order []string
	groups := map[string][]*records.Record{}
	for _, r := range all {
		if !matches(r, filters) {
			continue
		}
		id := r.SessionID()
		if _, ok := groups[id]; !ok {
			order = append(order, id)
		}
		groups[id] = append(groups[id], r)
	}

	sessions := make([]SessionSummary, 0, len(order))
	for _, id := range order {
		rs := groups[id]
		slices.SortStableFunc(rs, byTimestamp)
		first, last := rs[0], rs[len(rs)-1]
		sum := SessionSummary{
			ConversationID: id,
			RequestCount:   len(rs),
			TimeRange:      TimeRange{Start: first.Timestamp, End: last.Timestamp},
			Client:         first.Client,
			Supplier:       cmp.Or(first.SupplierName, "unknown"),
			Models:         []string{},
		}
		for _, r := range rs {
			sum.HasError = sum.HasError || r.HasError()
			if r.Model != "" && !slices.Contains(sum.Models, r.Model) {
				sum.Models = append(sum.Models, r.Model)
			}
		}
		sessions = append(sessions, sum)
	}
	slices.SortStableFunc(sessions, func(a, b SessionSummary) int {
		return cmp.Compare(b.TimeRange.End, a.TimeRange.End)
	})

	s.logger.Debug().Int("records", len(all)).Int("sessions", len(sessions)).Msg("Listed sessions")
	return &SessionsResult{Total: len(sessions), Sessions: sessions[:min(len(sessions), opts.Limit)]}, nil
}

func parseFilter(filter string) map[string]string {
	out := map[string]string{}
	for _, pair := range strings.Split(filter, ",") {
		parts := strings.Split(pair, "=")
		if len(parts) < 2 {
			continue
		}
		key, value := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if key != "" {
			out[key] = value
		}
	}
	return out
}

func matches(r *records.Record, filters map[string]string) bool {
	for key, value := range filters {
		switch key {
		case "client":
			if r.Client != value {
				return false
			}
		case "supplier":
			if r.SupplierName != value {
				return false
			}
		case "supplierId":
			if r.SupplierID != value {
				return false
			}
		case "hasError":
			if r.HasError() != (value == "true") {
				return false
			}
		}
	}
	return true
}

func byTimestamp(a, b *records.Record) int {
	return cmp.Compare(a.Timestamp, b.Timestamp)
}

// RequestSummary describes one request of a conversation.
type RequestSummary struct {
	ID                string `json:"id"`
	Index             int    `json:"index"`
	Timestamp         int64  `json:"timestamp"`
	Path              string `json:"path"`
	Method            string `json:"method"`
	Client            string `json:"client"`
	Supplier          string `json:"supplier,omitempty"`
	Model             string `json:"model,omitempty"`
	HasTransformError bool   `json:"hasTransformError"`
	ResponseStatus    int    `json:"responseStatus,omitempty"`
	DurationMs        int64  `json:"durationMs,omitempty"`
}

// RequestsResult is the result of [Service.ListRequests].
type RequestsResult struct {
	ConversationID string           `json:"conversationId"`
	RequestCount   int              `json:"requestCount"`
	Requests       []RequestSummary `json:"requests"`
}

// ListRequests returns the requests of a conversation in chronological order. A record id is
// accepted in place of a conversation id. The default limit is 100.
func (s *Service) ListRequests(ctx context.Context, conversationID string, limit int) (*RequestsResult, error) {
	if limit <= 0 {
		limit = 100
	}
	all, err := s.list(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*records.Record
	for _, r := range all {
		if r.ConversationID == conversationID || r.ID == conversationID {
			matched = append(matched, r)
		}
	}
	slices.SortStableFunc(matched, byTimestamp)
	matched = matched[:min(len(matched), limit)]

	res := &RequestsResult{ConversationID: conversationID, Requests: make([]RequestSummary, 0, len(matched))}
	for i, r := range matched {
		res.Requests = append(res.Requests, RequestSummary{
			ID:                r.ID,
			Index:             i,
			Timestamp:         r.Timestamp,
			Path:              r.Path,
			Method:            r.Method,
			Client:            r.Client,
			Supplier:          r.SupplierName,
			Model:             r.Model,
			HasTransformError: r.Error != "",
			ResponseStatus:    r.ResponseStatus,
			DurationMs:        r.DurationMs,
		})
	}
	res.RequestCount = len(res.Requests)
	return res, nil
}
