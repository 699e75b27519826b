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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const ext = ".yaml"

// Dir is a [Store] that keeps every record in a YAML file named after the record id.
type Dir struct {
	dir    string
	logger zerolog.Logger
}

var _ Store = (*Dir)(nil)

// NewDir returns a store for the records in dir. The directory does not need to exist.
func NewDir(dir string, logger zerolog.Logger) *Dir {
	return &Dir{
		dir:    dir,
		logger: logger.With().Str("component", "records").Str("dir", dir).Logger(),
	}
}

func (d *Dir) file(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("invalid record id %q", id)
	}
	return filepath.Join(d.dir, id+ext), nil
}

// Load implements [Store].
func (d *Dir) Load(ctx context.Context, id string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := d.file(id)
	if err != nil {
		return nil, err
	}
	return d.read(name, id)
}

func (d *Dir) read(name, id string) (*Record, error) {
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading record %s: %w", id, err)
	}
	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", id, err)
	}
	return Parse(raw), nil
}

// List implements [Store]. Records are ordered by file name, descending.
func (d *Dir) List(ctx context.Context, limit int) ([]*Record, error) {
	entries, err := os.ReadDir(d.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ext) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	slices.Reverse(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	records := make([]*Record, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id := strings.TrimSuffix(name, ext)
		r, err := d.read(filepath.Join(d.dir, name), id)
		if err != nil {
			d.logger.Warn().Err(err).Str("file", name).Msg("Skipping unreadable record")
			continue
		}
		records = append(records, r)
	}
	d.logger.Debug().Int("count", len(records)).Msg("Listed records")
	return records, nil
}

// Put writes raw to the directory, replacing an existing record with the same id.
func (d *Dir) Put(ctx context.Context, raw Raw) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := d.file(raw.ID)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(&raw)
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", raw.ID, err)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("creating record directory: %w", err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("writing record %s: %w", raw.ID, err)
	}
	return nil
}

// Close implements [Store].
func (d *Dir) Close() error { return nil }
