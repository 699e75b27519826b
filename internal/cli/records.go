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


package cli

import (
	"context"

	"github.com/spf13/cobra"

	"znkr.io/reqdiff/internal/query"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions or the requests of a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newListSessionsCmd(a))
	cmd.AddCommand(newListRequestsCmd(a))
	return cmd
}

func newListSessionsCmd(a *app) *cobra.Command {
	var opts query.ListSessionsOptions
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List conversations, most recent activity first",
		Args:  cobra.NoArgs,
		RunE: a.withService(func(ctx context.Context, svc *query.Service, _ []string) (any, error) {
			return svc.ListSessions(ctx, opts)
		}),
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of sessions")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "comma separated key=value filters on client, supplier, supplierId, hasError")
	return cmd
}

func newListRequestsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "requests <conversation-id>",
		Short: "List the requests of a conversation in chronological order",
		Args:  cobra.ExactArgs(1),
		RunE: a.withService(func(ctx context.Context, svc *query.Service, args []string) (any, error) {
			return svc.ListRequests(ctx, args[0], limit)
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum number of requests")
	return cmd
}

func newStructureCmd(a *app) *cobra.Command {
	var part string
	cmd := &cobra.Command{
		Use:   "structure <id>",
		Short: "Describe the layout of the bodies of a request",
		Args:  cobra.ExactArgs(1),
		RunE: a.withService(func(ctx context.Context, svc *query.Service, args []string) (any, error) {
			return svc.Structure(ctx, args[0], query.Part(part))
		}),
	}
	cmd.Flags().StringVar(&part, "part", string(query.PartRequest), "bodies to describe: request, response or transform")
	return cmd
}

func newDiffCmd(a *app) *cobra.Command {
	var mode, field string
	cmd := &cobra.Command{
		Use:   "diff <id1> <id2>",
		Short: "Compare two requests",
		Args:  cobra.ExactArgs(2),
		RunE: a.withService(func(ctx context.Context, svc *query.Service, args []string) (any, error) {
			return svc.DiffRecords(ctx, args[0], args[1], query.DiffOptions{Mode: query.DiffMode(mode), Field: field})
		}),
	}
	cmd.Flags().StringVar(&mode, "mode", string(query.ModeStructure), "comparison mode: structure or field")
	cmd.Flags().StringVar(&field, "field", "", "path of the field to compare in field mode, e.g. originalBody.messages[0].role")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	var opts query.GetOptions
	var format string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Extract a value from a request",
		Args:  cobra.ExactArgs(1),
		RunE: a.withService(func(ctx context.Context, svc *query.Service, args []string) (any, error) {
			opts.Format = query.Format(format)
			return svc.Get(ctx, args[0], opts)
		}),
	}
	cmd.Flags().StringVar(&opts.Path, "path", "", "path of the value, e.g. originalBody.tools[0].name")
	cmd.Flags().IntVar(&opts.Truncate, "truncate", 0, "maximum string length (default get.truncate)")
	cmd.Flags().IntVar(&opts.ArrayLimit, "array-limit", 0, "maximum array length (default get.array_limit)")
	cmd.Flags().StringVar(&format, "format", string(query.FormatJSON), "output format: json or summary")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <id>",
		Short: "Show the transformation steps applied to a request",
		Args:  cobra.ExactArgs(1),
		RunE: a.withService(func(ctx context.Context, svc *query.Service, args []string) (any, error) {
			return svc.Trace(ctx, args[0])
		}),
	}
}

func newBodiesCmd(a *app) *cobra.Command {
	var contextLines int
	cmd := &cobra.Command{
		Use:   "bodies <id>",
		Short: "Compare the original and modified body of a request line by line",
		Args:  cobra.ExactArgs(1),
		RunE: a.withService(func(ctx context.Context, svc *query.Service, args []string) (any, error) {
			return svc.DiffBodies(ctx, args[0], contextLines)
		}),
	}
	cmd.Flags().IntVar(&contextLines, "context", 3, "unchanged lines around each hunk")
	return cmd
}
