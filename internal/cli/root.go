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


// Package cli implements the reqdiff commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"znkr.io/reqdiff/internal/logging"
	"znkr.io/reqdiff/internal/query"
	"znkr.io/reqdiff/internal/records"
	"znkr.io/reqdiff/internal/settings"
)

// app holds the state shared by all commands. It is populated before a command runs.
type app struct {
	configPath string
	recordsDir string
	database   string
	logLevel   string

	settings settings.Settings
	logger   zerolog.Logger
	logFile  io.Closer
}

// NewRootCmd creates the root reqdiff command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}
	root := &cobra.Command{
		Use:               "reqdiff",
		Short:             "reqdiff - inspect and compare captured LLM API requests",
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentPostRunE = func(*cobra.Command, []string) error {
		return a.close()
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", fmt.Sprintf("settings file (default $%s or %s)", settings.EnvVar, settings.DefaultPath()))
	f.StringVar(&a.recordsDir, "records-dir", "", "directory with YAML records, overrides records.dir")
	f.StringVar(&a.database, "database", "", "SQLite database with records, overrides records.database")
	f.StringVar(&a.logLevel, "log-level", "", "log level, overrides log.level")

	root.AddCommand(newListCmd(a))
	root.AddCommand(newStructureCmd(a))
	root.AddCommand(newDiffCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newTraceCmd(a))
	root.AddCommand(newBodiesCmd(a))
	root.AddCommand(newLinesCmd(a))
	root.AddCommand(newParagraphsCmd(a))
	return root
}

// setup loads the settings, applies the flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s, err := settings.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.recordsDir != "" {
		s.Records.Dir = a.recordsDir
	}
	if a.database != "" {
		s.Records.Database = a.database
	}
	if a.logLevel != "" {
		s.Log.Level = a.logLevel
	}
	if err := s.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.New(s.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.settings, a.logger, a.logFile = s, logger, closer
	a.logger.Debug().Str("command", cmd.CommandPath()).Msg("Starting")
	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// openStore opens the configured record store.
func (a *app) openStore() (records.Store, error) {
	if a.settings.Records.Database != "" {
		return records.OpenSQLite(a.settings.Records.Database, a.logger)
	}
	return records.NewDir(a.settings.Records.Dir, a.logger), nil
}

// withService runs f with a query service backed by the configured record store.
func (a *app) withService(f func(ctx context.Context, svc *query.Service, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		res, err := f(cmd.Context(), query.New(store, a.settings, a.logger), args)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), res)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// readInput reads a file, or standard input if name is "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}
