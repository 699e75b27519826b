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

package records

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"znkr.io/reqdiff/shape"
)

func TestParse(t *testing.T) {
	r := Parse(Raw{
		ID:             "req-1",
		Timestamp:      1700000000000,
		Client:         "claude",
		Path:           "/v1/messages",
		Method:         "POST",
		OriginalBody:   `{"model": "m", "session_id": "conv-1"}`,
		ModifiedBody:   `not json`,
		ResponseStatus: 200,
		MatchedRules:   `[{"ruleId": "r1"}]`,
	})

	assert.Equal(t, map[string]any{"model": "m", "session_id": "conv-1"}, r.OriginalBody)
	assert.Equal(t, "not json", r.ModifiedBody)
	assert.Equal(t, shape.Undefined, r.TransformedBody)
	assert.Equal(t, shape.Undefined, r.ResponseBody)
	assert.Equal(t, []any{map[string]any{"ruleId": "r1"}}, r.MatchedRules)
	assert.Equal(t, "conv-1", r.ConversationID)
	assert.Equal(t, "conv-1", r.SessionID())
	assert.False(t, r.HasError())
}

func TestParseInvalidRules(t *testing.T) {
	r := Parse(Raw{ID: "x", MatchedRules: "{broken"})
	assert.Equal(t, []any{}, r.MatchedRules)
	assert.Equal(t, "x", r.SessionID())
}

func TestConversationID(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"not-an-object", []any{"a"}, ""},
		{"undefined", shape.Undefined, ""},
		{"no-keys", map[string]any{"model": "m"}, ""},
		{"priority", map[string]any{"id": "c", "sessionId": "b", "conversation_id": "a"}, "a"},
		{"skips-empty", map[string]any{"conversation_id": "", "session_id": "s"}, "s"},
		{"skips-non-string", map[string]any{"conversationId": 42.0, "id": "i"}, "i"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConversationID(tt.body))
		})
	}
}

func TestHasError(t *testing.T) {
	assert.True(t, (&Record{Error: "boom"}).HasError())
	assert.True(t, (&Record{ResponseStatus: 404}).HasError())
	assert.False(t, (&Record{ResponseStatus: 399}).HasError())
}

func TestMap(t *testing.T) {
	r := Parse(Raw{
		ID:           "req-1",
		Timestamp:    5,
		Client:       "codex",
		Path:         "/v1/responses",
		Method:       "POST",
		OriginalBody: `{"a": 1}`,
		ModifiedBody: `{"a": 2}`,
		Model:        "gpt",
	})
	want := map[string]any{
		"id":           "req-1",
		"timestamp":    5.0,
		"client":       "codex",
		"path":         "/v1/responses",
		"method":       "POST",
		"originalBody": map[string]any{"a": 1.0},
		"modifiedBody": map[string]any{"a": 2.0},
		"model":        "gpt",
		"matchedRules": []any{},
	}
	assert.Equal(t, want, r.Map())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "req-1", "timestamp": 5, "client": "codex", "path": "/v1/responses", "method": "POST",
		"originalBody": {"a": 1}, "modifiedBody": {"a": 2}, "model": "gpt", "matchedRules": []
	}`, string(data))
}
