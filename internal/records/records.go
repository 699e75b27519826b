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

// Package records loads captured request records.
//
// A record is stored with its bodies as JSON text, see [Raw]. [Parse] turns it into a [Record] with
// decoded bodies. Records are kept either as YAML files in a directory ([Dir]) or in a SQLite
// database ([SQLite]).
package records

import (
	"context"
	"encoding/json"
	"errors"

	"znkr.io/reqdiff/shape"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store provides access to records.
type Store interface {
	// Load returns the record with the given id or an error wrapping [ErrNotFound].
	Load(ctx context.Context, id string) (*Record, error)

	// List returns up to limit records, newest first. Records that can't be read are skipped.
	List(ctx context.Context, limit int) ([]*Record, error)

	Close() error
}

// Raw is a record as stored. Bodies are JSON text, but are not required to be valid JSON.
type Raw struct {
	ID               string `yaml:"id"`
	Timestamp        int64  `yaml:"timestamp"`
	Client           string `yaml:"client"`
	Path             string `yaml:"path"`
	Method           string `yaml:"method"`
	OriginalBody     string `yaml:"originalBody"`
	TransformedBody  string `yaml:"transformedBody,omitempty"`
	ModifiedBody     string `yaml:"modifiedBody"`
	ResponseBody     string `yaml:"responseBody,omitempty"`
	ResponseStatus   int    `yaml:"responseStatus,omitempty"`
	DurationMs       int64  `yaml:"durationMs,omitempty"`
	Error            string `yaml:"error,omitempty"`
	SupplierName     string `yaml:"supplierName,omitempty"`
	SupplierID       string `yaml:"supplierId,omitempty"`
	Model            string `yaml:"model,omitempty"`
	MatchedRules     string `yaml:"matchedRules,omitempty"`
	TransformerChain string `yaml:"transformerChain,omitempty"`
	TransformTrace   string `yaml:"transformTrace,omitempty"`
}

// Record is a record with decoded bodies.
//
// Bodies that are missing are [shape.Undefined]. Bodies that are not valid JSON are kept as
// strings.
type Record struct {
	ID               string
	Timestamp        int64 // Unix milliseconds.
	Client           string
	Path             string
	Method           string
	OriginalBody     any
	TransformedBody  any
	ModifiedBody     any
	ResponseBody     any
	ResponseStatus   int
	DurationMs       int64
	Error            string
	SupplierName     string
	SupplierID       string
	Model            string
	MatchedRules     []any
	TransformerChain string
	TransformTrace   string

	// ConversationID groups the records of one conversation. It is taken from the original body
	// and empty if the body has no id field.
	ConversationID string
}

// Parse decodes the bodies of raw.
func Parse(raw Raw) *Record {
	r := &Record{
		ID:               raw.ID,
		Timestamp:        raw.Timestamp,
		Client:           raw.Client,
		Path:             raw.Path,
		Method:           raw.Method,
		OriginalBody:     parseBody(raw.OriginalBody),
		TransformedBody:  parseBody(raw.TransformedBody),
		ModifiedBody:     parseBody(raw.ModifiedBody),
		ResponseBody:     parseBody(raw.ResponseBody),
		ResponseStatus:   raw.ResponseStatus,
		DurationMs:       raw.DurationMs,
		Error:            raw.Error,
		SupplierName:     raw.SupplierName,
		SupplierID:       raw.SupplierID,
		Model:            raw.Model,
		MatchedRules:     []any{},
		TransformerChain: raw.TransformerChain,
		TransformTrace:   raw.TransformTrace,
	}
	if raw.MatchedRules != "" {
		var rules []any
		if err := json.Unmarshal([]byte(raw.MatchedRules), &rules); err == nil && rules != nil {
			r.MatchedRules = rules
		}
	}
	r.ConversationID = ConversationID(r.OriginalBody)
	return r
}

// parseBody decodes JSON text. Empty text is undefined, invalid JSON is returned as is.
func parseBody(s string) any {
	if s == "" {
		return shape.Undefined
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

var conversationKeys = []string{"conversation_id", "conversationId", "session_id", "sessionId", "id"}

// ConversationID returns the first non-empty string value among the conversation id keys of body.
func ConversationID(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range conversationKeys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// HasError reports whether the request failed or the upstream responded with an error status.
func (r *Record) HasError() bool {
	return r.Error != "" || r.ResponseStatus >= 400
}

// SessionID returns the conversation id, or the record id for records without one.
func (r *Record) SessionID() string {
	if r.ConversationID != "" {
		return r.ConversationID
	}
	return r.ID
}

// Map returns the record as a JSON-like object. Missing bodies and unset optional fields are
// omitted, numbers are float64 as if the record was decoded from JSON.
func (r *Record) Map() map[string]any {
	m := map[string]any{
		"id":           r.ID,
		"timestamp":    float64(r.Timestamp),
		"client":       r.Client,
		"path":         r.Path,
		"method":       r.Method,
		"matchedRules": r.MatchedRules,
	}
	set := func(key string, v any, ok bool) {
		if ok {
			m[key] = v
		}
	}
	set("originalBody", r.OriginalBody, r.OriginalBody != shape.Undefined)
	set("transformedBody", r.TransformedBody, r.TransformedBody != shape.Undefined)
	set("modifiedBody", r.ModifiedBody, r.ModifiedBody != shape.Undefined)
	set("responseBody", r.ResponseBody, r.ResponseBody != shape.Undefined)
	set("responseStatus", float64(r.ResponseStatus), r.ResponseStatus != 0)
	set("durationMs", float64(r.DurationMs), r.DurationMs != 0)
	set("error", r.Error, r.Error != "")
	set("supplierName", r.SupplierName, r.SupplierName != "")
	set("supplierId", r.SupplierID, r.SupplierID != "")
	set("model", r.Model, r.Model != "")
	set("transformerChain", r.TransformerChain, r.TransformerChain != "")
	set("transformTrace", r.TransformTrace, r.TransformTrace != "")
	set("conversationId", r.ConversationID, r.ConversationID != "")
	return m
}

// MarshalJSON encodes the record as returned by [Record.Map].
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}
