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
	"fmt"

	"github.com/spf13/cobra"

	"znkr.io/reqdiff"
	"znkr.io/reqdiff/internal/query"
	"znkr.io/reqdiff/mddiff"
)

var movePolicies = map[string]mddiff.MovePolicy{
	"crossing":     mddiff.Crossing,
	"displacement": mddiff.Displacement,
}

// textService returns a service for the text comparisons, which don't read records.
func (a *app) textService() *query.Service {
	return query.New(nil, a.settings, a.logger)
}

func readPair(cmd *cobra.Command, args []string) (string, string, error) {
	before, err := readInput(cmd, args[0])
	if err != nil {
		return "", "", err
	}
	after, err := readInput(cmd, args[1])
	if err != nil {
		return "", "", err
	}
	return before, after, nil
}

func newLinesCmd(a *app) *cobra.Command {
	var contextLines int
	cmd := &cobra.Command{
		Use:   "lines <before> <after>",
		Short: "Compare two files line by line",
		Long:  "Compare two files line by line. A file name of - reads standard input.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, after, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			res, err := a.textService().DiffText(before, after, contextLines)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&contextLines, "context", 3, "unchanged lines around each hunk")
	return cmd
}

func newParagraphsCmd(a *app) *cobra.Command {
	var (
		threshold   float64
		changesOnly bool
		moves       string
	)
	cmd := &cobra.Command{
		Use:   "paragraphs <before> <after>",
		Short: "Compare two markdown documents paragraph by paragraph",
		Long:  "Compare two markdown documents paragraph by paragraph. A file name of - reads standard input.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, ok := movePolicies[moves]
			if !ok {
				return fmt.Errorf("%w: unknown move policy %q", query.ErrInvalidArgument, moves)
			}
			opts := []reqdiff.Option{mddiff.WithMoves(policy)}
			if cmd.Flags().Changed("threshold") {
				opts = append(opts, mddiff.Threshold(threshold))
			}
			if changesOnly {
				opts = append(opts, mddiff.ChangesOnly())
			}

			before, after, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			res, err := a.textService().DiffDocuments(before, after, opts...)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "similarity above which paragraphs match (default diff.similarity_threshold)")
	cmd.Flags().BoolVar(&changesOnly, "changes-only", false, "omit unchanged paragraphs")
	cmd.Flags().StringVar(&moves, "moves", "crossing", "move detection: crossing or displacement")
	return cmd
}
