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

// Package shape compares and describes the layout of decoded JSON values.
//
// A shape comparison only looks at the kind of every value, the keys of objects and the length of
// arrays. Scalar values are never compared.
//
// Values are expected in the form produced by encoding/json when decoding into an any. Other
// slice, map and number types are accepted as well. To describe a field that does not exist at all,
// as opposed to a field that is null, use [Undefined].
package shape

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Kind is the kind of a value.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"undefined", "null", "boolean", "number", "string", "array", "object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if string(text) == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", text)
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined stands in for a value that does not exist.
var Undefined any = undefined{}

// KindOf returns the kind of v. Nil is [KindNull]. Values of types that have no JSON equivalent are
// reported as [KindUndefined].
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case string:
		return KindString
	case bool:
		return KindBoolean
	case float64, json.Number:
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return KindOf(rv.Elem().Interface())
	}
	return KindUndefined
}

// length returns the length of an array value.
func length(v any) int {
	if arr, ok := v.([]any); ok {
		return len(arr)
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	return rv.Len()
}

// fields returns the entries of an object value.
func fields(v any) map[string]any {
	if obj, ok := v.(map[string]any); ok {
		return obj
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}

// elem returns the i-th element of an array value.
func elem(v any, i int) any {
	if arr, ok := v.([]any); ok {
		return arr[i]
	}
	return reflect.Indirect(reflect.ValueOf(v)).Index(i).Interface()
}
