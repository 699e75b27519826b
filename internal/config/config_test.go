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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"znkr.io/reqdiff"
	"znkr.io/reqdiff/internal/config"
	"znkr.io/reqdiff/mddiff"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "context",
			opts: []config.Option{
				reqdiff.Context(5),
			},
			want: config.Config{
				Context:    5,
				Threshold:  config.Default.Threshold,
				PreviewLen: config.Default.PreviewLen,
			},
		},
		{
			name: "threshold",
			opts: []config.Option{
				mddiff.Threshold(0.5),
			},
			want: config.Config{
				Threshold:  0.5,
				PreviewLen: config.Default.PreviewLen,
			},
		},
		{
			name: "threshold-override",
			opts: []config.Option{
				mddiff.Threshold(0.5),
				mddiff.ChangesOnly(),
				mddiff.Threshold(0.9),
			},
			want: config.Config{
				Threshold:   0.9,
				ChangesOnly: true,
				PreviewLen:  config.Default.PreviewLen,
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				reqdiff.Context(2),
				mddiff.Threshold(0.8),
				mddiff.ChangesOnly(),
				mddiff.PreviewLen(20),
				mddiff.WithMoves(mddiff.Displacement),
			},
			want: config.Config{
				Context:     2,
				Threshold:   0.8,
				ChangesOnly: true,
				PreviewLen:  20,
				Moves:       mddiff.Displacement,
			},
		},
	}

	all := config.Context | config.Threshold | config.ChangesOnly | config.PreviewLen |
		config.MatcherFlag | config.MovesFlag | config.ExtractorFlag
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, all)
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreInterfaces(struct{ config.MovePolicy }{})); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
			if (got.Moves == nil) != (tt.want.Moves == nil) {
				t.Errorf("FromOptions(...).Moves = %v, want %v", got.Moves, tt.want.Moves)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r != "Option mddiff.Threshold not allowed here" {
			t.Errorf("FromOptions(...) panicked with %v", r)
		}
	}()
	config.FromOptions([]config.Option{mddiff.Threshold(0.1)}, config.Context)
}
