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

// Levenshtein returns the minimum number of single character insertions, deletions and
// substitutions needed to turn a into b. Characters are runes.
func Levenshtein(a, b string) int {
	x, y := []rune(a), []rune(b)
	if len(x) < len(y) {
		x, y = y, x
	}
	// Two rows of the dynamic programming matrix, indexed by position in y.
	prev := make([]int, len(y)+1)
	curr := make([]int, len(y)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(x); i++ {
		curr[0] = i
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j-1], prev[j], curr[j-1])
		}
		prev, curr = curr, prev
	}
	return prev[len(y)]
}

// Similarity returns a score between 0 and 1 for how alike a and b are, computed as 1 minus the
// Levenshtein distance divided by the length of the longer string. Two empty strings are identical,
// an empty string has similarity 0 to any other string.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	switch {
	case la == 0 && lb == 0:
		return 1
	case la == 0 || lb == 0:
		return 0
	}
	return 1 - float64(Levenshtein(a, b))/float64(max(la, lb))
}
