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

// Package reqdiff compares two versions of a captured request or response and describes what
// changed.
//
// This package provides the generic building block, [Edits], which computes a shortest edit script
// between two slices using Myers' algorithm. The other packages of this module build on it:
//
//   - [znkr.io/reqdiff/textdiff] aligns two texts line by line and groups changes into hunks.
//   - [znkr.io/reqdiff/mddiff] compares two markdown documents paragraph by paragraph, with fuzzy
//     matching and move detection.
//   - [znkr.io/reqdiff/shape] compares the shape (types, keys and array lengths) of two nested
//     values.
//   - [znkr.io/reqdiff/fieldpath] resolves paths like "messages[0].content" in nested values.
//
// All functions are pure: they don't keep state between calls and can be used concurrently.
//
// Performance: [Edits] runs in O((N+M)D) time where N = len(x), M = len(y) and D is the number of
// differences. It keeps a snapshot of O(N+M) integers for every d, so memory is O((N+M)D) and
// quadratic in the worst case. Callers that accept untrusted input should limit its size.
//
// [znkr.io/reqdiff/textdiff]: https://pkg.go.dev/znkr.io/reqdiff/textdiff
// [znkr.io/reqdiff/mddiff]: https://pkg.go.dev/znkr.io/reqdiff/mddiff
// [znkr.io/reqdiff/shape]: https://pkg.go.dev/znkr.io/reqdiff/shape
// [znkr.io/reqdiff/fieldpath]: https://pkg.go.dev/znkr.io/reqdiff/fieldpath
package reqdiff
