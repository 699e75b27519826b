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

package mddiff

import (
	"znkr.io/reqdiff"
	"znkr.io/reqdiff/internal/config"
)

// Threshold sets the similarity two blocks must exceed to be considered versions of the same block.
// The similarity is computed by [Similarity]. The default is 0.7.
func Threshold(t float64) reqdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Threshold = t
		return config.Threshold
	}
}

// ChangesOnly omits unchanged blocks from the result.
func ChangesOnly() reqdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ChangesOnly = true
		return config.ChangesOnly
	}
}

// PreviewLen sets the number of characters kept of lists and of blocks produced by [Fallback]. The
// default is 100.
func PreviewLen(n int) reqdiff.Option {
	return func(cfg *config.Config) config.Flag {
		if n > 0 {
			cfg.PreviewLen = n
		}
		return config.PreviewLen
	}
}

// WithMatcher replaces the default [Greedy] matcher.
func WithMatcher(m Matcher) reqdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Matcher = m
		return config.MatcherFlag
	}
}

// WithMoves replaces the default [Crossing] move policy.
func WithMoves(p MovePolicy) reqdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Moves = p
		return config.MovesFlag
	}
}

// WithExtractor replaces the default [Markdown] extractor.
func WithExtractor(e Extractor) reqdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Extractor = e
		return config.ExtractorFlag
	}
}
