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

package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 0.7, s.Diff.SimilarityThreshold)
	assert.Equal(t, 500, s.Get.Truncate)
	assert.True(t, strings.HasSuffix(s.Records.Dir, filepath.Join(".local", "promptxy", "requests")))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
records:
  database: /tmp/requests.db
diff:
  similarity_threshold: 0.5
log:
  level: debug
  format: json
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/requests.db", s.Records.Database)
	assert.Equal(t, 0.5, s.Diff.SimilarityThreshold)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
	// Untouched settings keep their defaults.
	assert.Equal(t, Default().Diff.MaxBytes, s.Diff.MaxBytes)
	assert.Equal(t, Default().Get.ArrayLimit, s.Get.ArrayLimit)
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("get:\n  truncate: 42\n"), 0o644))
	t.Setenv(EnvVar, path)

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, s.Get.Truncate)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown-key", "diff:\n  treshold: 0.5\n", "treshold"},
		{"threshold-range", "diff:\n  similarity_threshold: 1.5\n", "SimilarityThreshold"},
		{"log-level", "log:\n  level: loud\n", "Level"},
		{"no-source", "records:\n  dir: \"\"\n", "Dir"},
		{"syntax", "diff: [", "decoding settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
