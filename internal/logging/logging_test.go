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

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"znkr.io/reqdiff/internal/settings"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(settings.Log{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug().Msg("hidden")
	logger.Info().Str("component", "test").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(settings.Log{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug().Msg("details")
	assert.Contains(t, buf.String(), "details")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reqdiff.log")
	var buf bytes.Buffer
	logger, closer, err := New(settings.Log{Level: "warn", Format: "json", File: path, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)

	logger.Warn().Msg("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestNewInvalidLevel(t *testing.T) {
	_, _, err := New(settings.Log{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
