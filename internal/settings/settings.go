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

// Package settings loads the application settings file.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points to the settings file.
const EnvVar = "REQDIFF_CONFIG"

// Settings holds all application settings.
type Settings struct {
	Records Records `yaml:"records"`
	Diff    Diff    `yaml:"diff"`
	Get     Get     `yaml:"get"`
	Log     Log     `yaml:"log"`
}

// Records configures where records are loaded from. If Database is set, records are read from
// that SQLite database, otherwise from the YAML files in Dir.
type Records struct {
	Dir      string `yaml:"dir" validate:"required_without=Database"`
	Database string `yaml:"database"`
	MaxLoad  int    `yaml:"max_load" validate:"min=1"`
}

// Diff configures text and document comparisons.
type Diff struct {
	MaxBytes            int     `yaml:"max_bytes" validate:"min=1"`
	SimilarityThreshold float64 `yaml:"similarity_threshold" validate:"gt=0,lte=1"`
}

// Get configures the projection of extracted fields.
type Get struct {
	Truncate   int `yaml:"truncate" validate:"min=1"`
	ArrayLimit int `yaml:"array_limit" validate:"min=1"`
}

// Log configures logging.
type Log struct {
	Level      string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format     string `yaml:"format" validate:"oneof=console json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"min=1"`
	MaxBackups int    `yaml:"max_backups" validate:"min=0"`
}

// Default returns the default settings.
func Default() Settings {
	home, _ := os.UserHomeDir()
	return Settings{
		Records: Records{
			Dir:     filepath.Join(home, ".local", "promptxy", "requests"),
			MaxLoad: 1000,
		},
		Diff: Diff{
			MaxBytes:            1 << 20,
			SimilarityThreshold: 0.7,
		},
		Get: Get{
			Truncate:   500,
			ArrayLimit: 10,
		},
		Log: Log{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPath returns the path of the settings file used if neither a path nor [EnvVar] is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "reqdiff", "config.yaml")
}

// Load reads the settings file at path. If path is empty, the file named by [EnvVar] is read
// instead, and if that is not set either, the file at [DefaultPath], if it exists. Settings not
// present in the file keep their default value.
func Load(path string) (Settings, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	optional := false
	if path == "" {
		path, optional = DefaultPath(), true
	}

	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if optional && errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	if err := Decode(bytes.NewReader(data), &s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads YAML settings from r into s and validates the result. Unknown keys are an error.
func Decode(r io.Reader, s *Settings) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding settings: %w", err)
	}
	return s.Validate()
}

// Validate checks all settings.
func (s *Settings) Validate() error {
	err := validator.New().Struct(s)
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := fmt.Sprintf("%s: rule '%s'", e.Namespace(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("invalid settings:\n  %s", strings.Join(msgs, "\n  "))
}
