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

// Package query implements the commands to inspect and compare captured records.
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"znkr.io/reqdiff/internal/records"
	"znkr.io/reqdiff/internal/settings"
)

var (
	// ErrTooLarge is returned when a text exceeds the configured size limit for comparisons.
	ErrTooLarge = errors.New("input too large")

	// ErrInvalidArgument is returned for unsupported modes, parts and formats.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service runs queries against a record store.
type Service struct {
	store    records.Store
	settings settings.Settings
	logger   zerolog.Logger
}

// New returns a service for store.
func New(store records.Store, s settings.Settings, logger zerolog.Logger) *Service {
	return &Service{
		store:    store,
		settings: s,
		logger:   logger.With().Str("component", "query").Logger(),
	}
}

func (s *Service) load(ctx context.Context, id string) (*records.Record, error) {
	r, err := s.store.Load(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Str("id", id).Msg("Failed to load record")
		return nil, err
	}
	return r, nil
}

func (s *Service) list(ctx context.Context) ([]*records.Record, error) {
	all, err := s.store.List(ctx, s.settings.Records.MaxLoad)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	return all, nil
}
