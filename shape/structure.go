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

package shape

import (
	"encoding/json"
	"fmt"
)

// ComplexMarker replaces the item structure of arrays nested too deeply.
const ComplexMarker = "/* complex */"

const maxPreview = 100

// Structure describes the layout of a value.
//
// Scalars carry a preview of their value in Value, long strings are truncated. Arrays carry their
// length and the structure of their first element. Objects carry the structure of every field.
type Structure struct {
	Kind Kind

	// Value is set for strings, numbers, booleans and null.
	Value any

	// Length and Items are set for arrays. Items is nil for empty arrays. For arrays nested too
	// deeply, Items is only a marker and Complex is set.
	Length  int
	Items   *Structure
	Complex bool

	// Fields is set for objects.
	Fields map[string]*Structure
}

// HasItems reports whether s describes a non-empty array.
func (s *Structure) HasItems() bool {
	return s.Kind == KindArray && s.Length > 0
}

// Analyze returns the structure of v.
//
// Objects are described to any depth. The item structure of an array is only computed if the
// array is less than two levels below v. Deeper arrays are marked as [Structure.Complex] instead.
func Analyze(v any) *Structure {
	return analyze(v, 0)
}

func analyze(v any, depth int) *Structure {
	s := &Structure{Kind: KindOf(v)}
	switch s.Kind {
	case KindString:
		s.Value = preview(fmt.Sprint(v))
	case KindNumber, KindBoolean, KindNull:
		s.Value = v
	case KindArray:
		s.Length = length(v)
		switch {
		case s.Length == 0:
		case depth < 2:
			s.Items = analyze(elem(v, 0), depth+1)
		default:
			s.Complex = true
		}
	case KindObject:
		f := fields(v)
		s.Fields = make(map[string]*Structure, len(f))
		for key, val := range f {
			s.Fields[key] = analyze(val, depth+1)
		}
	}
	return s
}

// preview truncates strings so that they stay below maxPreview characters, including a suffix
// with the original length.
func preview(s string) string {
	r := []rune(s)
	if len(r) < maxPreview {
		return s
	}
	suffix := fmt.Sprintf("...(%d chars)", len(r))
	n := maxPreview - len(suffix) - 1
	if n <= 0 {
		return string(r[:maxPreview-1])
	}
	return string(r[:n]) + suffix
}

// MarshalJSON encodes s using the keys "type", "value", "length", "hasItems", "itemStructure" and
// "fields". Keys that do not apply to the kind are omitted.
func (s *Structure) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case KindString, KindNumber, KindBoolean, KindNull:
		return json.Marshal(struct {
			Kind  Kind `json:"type"`
			Value any  `json:"value"`
		}{s.Kind, s.Value})
	case KindArray:
		var items any
		if s.Complex {
			items = ComplexMarker
		} else if s.Items != nil {
			items = s.Items
		}
		return json.Marshal(struct {
			Kind     Kind `json:"type"`
			Length   int  `json:"length"`
			HasItems bool `json:"hasItems"`
			Items    any  `json:"itemStructure,omitempty"`
		}{s.Kind, s.Length, s.HasItems(), items})
	case KindObject:
		return json.Marshal(struct {
			Kind   Kind                  `json:"type"`
			Fields map[string]*Structure `json:"fields"`
		}{s.Kind, s.Fields})
	default:
		return json.Marshal(struct {
			Kind Kind `json:"type"`
		}{s.Kind})
	}
}
