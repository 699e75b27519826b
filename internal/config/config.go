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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// reqdiff.Option and the option constructors in the individual packages.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of unchanged rows to include before and after every hunk.
	Context int

	// Threshold is the similarity a pair of paragraphs must exceed to be matched.
	Threshold float64

	// If set, unchanged paragraphs are omitted from the output.
	ChangesOnly bool

	// PreviewLen is the number of characters kept for list blocks and for blocks produced by the
	// blank line fallback.
	PreviewLen int

	// Strategies used by mddiff. A nil value selects the package default.
	Matcher   Matcher
	Moves     MovePolicy
	Extractor Extractor
}

// Default is the default configuration.
var Default = Config{
	Context:     0,
	Threshold:   0.7,
	ChangesOnly: false,
	PreviewLen:  100,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	Threshold
	ChangesOnly
	PreviewLen
	MatcherFlag
	MovesFlag
	ExtractorFlag
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "reqdiff.Context"
	case Threshold:
		return "mddiff.Threshold"
	case ChangesOnly:
		return "mddiff.ChangesOnly"
	case PreviewLen:
		return "mddiff.PreviewLen"
	case MatcherFlag:
		return "mddiff.WithMatcher"
	case MovesFlag:
		return "mddiff.WithMoves"
	case ExtractorFlag:
		return "mddiff.WithExtractor"
	default:
		panic("never reached")
	}
}
