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

package query

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"

	"znkr.io/reqdiff/fieldpath"
	"znkr.io/reqdiff/shape"
)

// Format selects the projection applied by [Service.Get].
type Format string

const (
	// FormatJSON returns the value with long strings and arrays cut off.
	FormatJSON Format = "json"

	// FormatSummary returns an overview of the value instead of the value itself.
	FormatSummary Format = "summary"
)

// GetOptions configures [Service.Get]. Zero values select the configured defaults.
type GetOptions struct {
	Path       string
	Truncate   int
	ArrayLimit int
	Format     Format
}

// Marker replacing values nested too deeply in JSON projections.
const elided = "/* ... */"

// maxProjectionDepth is the depth below which values are elided.
const maxProjectionDepth = 3

var summaryKeys = []string{"name", "id", "type", "function", "role"}

// Get resolves a path in a record and returns a projection of the value found there. Missing
// values are returned as nil.
//
// The JSON projection cuts strings after opts.Truncate characters and arrays after
// opts.ArrayLimit elements, wrapping cut arrays in an object with the total count. Values nested
// deeper than three levels are elided.
//
// The summary projection returns the element count and a few sample names for arrays, the keys
// for objects and the kind and value for everything else.
func (s *Service) Get(ctx context.Context, id string, opts GetOptions) (any, error) {
	if opts.Truncate <= 0 {
		opts.Truncate = s.settings.Get.Truncate
	}
	if opts.ArrayLimit <= 0 {
		opts.ArrayLimit = s.settings.Get.ArrayLimit
	}
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	if opts.Format != FormatJSON && opts.Format != FormatSummary {
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidArgument, opts.Format)
	}

	r, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	v, ok := fieldpath.Resolve(r.Map(), opts.Path)
	if !ok {
		v = shape.Undefined
	}

	if opts.Format == FormatSummary {
		return summarize(v), nil
	}
	return project(v, opts.Truncate, opts.ArrayLimit, 0), nil
}

func project(v any, truncate, arrayLimit, depth int) any {
	child := func(v any) any {
		if depth < maxProjectionDepth {
			return project(v, truncate, arrayLimit, depth+1)
		}
		return elided
	}

	switch v := v.(type) {
	case string:
		r := []rune(v)
		if len(r) <= truncate {
			return v
		}
		return fmt.Sprintf("%s...(%d more chars)", string(r[:truncate]), len(r)-truncate)
	case []any:
		items := make([]any, 0, min(len(v), arrayLimit))
		for _, item := range v[:min(len(v), arrayLimit)] {
			items = append(items, child(item))
		}
		if len(v) > arrayLimit {
			return map[string]any{"items": items, "totalCount": len(v), "truncated": true}
		}
		return items
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = child(val)
		}
		return out
	}
	if v == shape.Undefined {
		return nil
	}
	return v
}

func summarize(v any) any {
	switch v := v.(type) {
	case []any:
		summary := map[string]any{"count": len(v)}
		first, ok := firstObject(v)
		if !ok {
			return summary
		}
		for _, key := range summaryKeys {
			if _, ok := first[key]; !ok {
				continue
			}
			var samples []any
			for _, item := range v {
				obj, _ := item.(map[string]any)
				if val := obj[key]; truthy(val) {
					samples = append(samples, val)
				}
				if len(samples) == 5 {
					break
				}
			}
			if len(samples) > 0 {
				summary[key+"s"] = samples
				break
			}
		}
		return summary
	case map[string]any:
		keys := slices.Sorted(maps.Keys(v))
		return map[string]any{"keys": keys[:min(len(keys), 10)], "keyCount": len(keys)}
	}
	out := map[string]any{"type": shape.KindOf(v).String()}
	if v != shape.Undefined {
		out["value"] = v
	}
	return out
}

func firstObject(arr []any) (map[string]any, bool) {
	if len(arr) == 0 {
		return nil, false
	}
	obj, ok := arr[0].(map[string]any)
	return obj, ok
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0 && !math.IsNaN(v)
	case string:
		return v != ""
	}
	return true
}
