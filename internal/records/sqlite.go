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
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLite is a [Store] backed by a SQLite database with a requests table for request metadata and a
// request_payloads table for bodies.
type SQLite struct {
	db     *sql.DB
	logger zerolog.Logger
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens the database at path and creates the schema if necessary.
func OpenSQLite(path string, logger zerolog.Logger) (*SQLite, error) {
	logger = logger.With().Str("component", "records").Str("db_path", path).Logger()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	s := &SQLite{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	logger.Debug().Msg("Database opened")
	return s, nil
}

// The tables may contain more columns than listed here, only the columns read by this package are
// required.
const schema = `
CREATE TABLE IF NOT EXISTS requests (
	id TEXT PRIMARY KEY,
	ts INTEGER NOT NULL,
	client TEXT NOT NULL,
	path TEXT NOT NULL,
	method TEXT NOT NULL,
	response_status INTEGER,
	duration_ms INTEGER,
	error TEXT,
	supplier_name TEXT,
	supplier_id TEXT,
	transformer_chain TEXT,
	original_request_model TEXT,
	requested_model TEXT
);

CREATE TABLE IF NOT EXISTS request_payloads (
	id TEXT PRIMARY KEY REFERENCES requests(id) ON DELETE CASCADE,
	original_body TEXT NOT NULL,
	transformed_body TEXT,
	modified_body TEXT NOT NULL,
	response_body TEXT,
	matched_rules TEXT NOT NULL,
	transform_trace TEXT
);

CREATE INDEX IF NOT EXISTS idx_requests_ts ON requests(ts DESC);
`

func (s *SQLite) initSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		s.logger.Error().Err(err).Msg("Failed to initialize schema")
		return err
	}
	return nil
}

const selectRecord = `
SELECT r.id, r.ts, r.client, r.path, r.method, r.response_status, r.duration_ms, r.error,
	r.supplier_name, r.supplier_id, r.transformer_chain,
	COALESCE(r.requested_model, r.original_request_model),
	p.original_body, p.transformed_body, p.modified_body, p.response_body, p.matched_rules,
	p.transform_trace
FROM requests r LEFT JOIN request_payloads p ON p.id = r.id`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		raw                                         Raw
		status, duration                            sql.NullInt64
		errText, supplier, supplierID, chain, model sql.NullString
		original, transformed, modified, response   sql.NullString
		rules, trace                                sql.NullString
	)
	err := row.Scan(&raw.ID, &raw.Timestamp, &raw.Client, &raw.Path, &raw.Method, &status, &duration,
		&errText, &supplier, &supplierID, &chain, &model,
		&original, &transformed, &modified, &response, &rules, &trace)
	if err != nil {
		return nil, err
	}
	raw.ResponseStatus = int(status.Int64)
	raw.DurationMs = duration.Int64
	raw.Error = errText.String
	raw.SupplierName = supplier.String
	raw.SupplierID = supplierID.String
	raw.TransformerChain = chain.String
	raw.Model = model.String
	raw.OriginalBody = original.String
	raw.TransformedBody = transformed.String
	raw.ModifiedBody = modified.String
	raw.ResponseBody = response.String
	raw.MatchedRules = rules.String
	raw.TransformTrace = trace.String
	return Parse(raw), nil
}

// Load implements [Store].
func (s *SQLite) Load(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, selectRecord+` WHERE r.id = ?`, id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading record %s: %w", id, err)
	}
	return r, nil
}

// List implements [Store]. Records are ordered by timestamp, descending.
func (s *SQLite) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = -1 // No limit.
	}
	rows, err := s.db.QueryContext(ctx, selectRecord+` ORDER BY r.ts DESC, r.id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Skipping unreadable record")
			continue
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	s.logger.Debug().Int("count", len(records)).Msg("Listed records")
	return records, nil
}

// Put inserts raw into the database, replacing an existing record with the same id.
func (s *SQLite) Put(ctx context.Context, raw Raw) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storing record %s: %w", raw.ID, err)
	}
	defer tx.Rollback()

	null := func(v string) sql.NullString { return sql.NullString{String: v, Valid: v != ""} }
	nullInt := func(n int64) sql.NullInt64 { return sql.NullInt64{Int64: n, Valid: n != 0} }

	_, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO requests
		(id, ts, client, path, method, response_status, duration_ms, error, supplier_name, supplier_id,
		 transformer_chain, requested_model)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		raw.ID, raw.Timestamp, raw.Client, raw.Path, raw.Method, nullInt(int64(raw.ResponseStatus)),
		nullInt(raw.DurationMs), null(raw.Error), null(raw.SupplierName), null(raw.SupplierID),
		null(raw.TransformerChain), null(raw.Model))
	if err != nil {
		return fmt.Errorf("storing record %s: %w", raw.ID, err)
	}
	rules := raw.MatchedRules
	if rules == "" {
		rules = "[]"
	}
	_, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO request_payloads
		(id, original_body, transformed_body, modified_body, response_body, matched_rules, transform_trace)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		raw.ID, raw.OriginalBody, null(raw.TransformedBody), raw.ModifiedBody, null(raw.ResponseBody),
		rules, null(raw.TransformTrace))
	if err != nil {
		return fmt.Errorf("storing record %s: %w", raw.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storing record %s: %w", raw.ID, err)
	}
	return nil
}

// Close implements [Store].
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
