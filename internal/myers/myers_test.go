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

package myers

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DDMIMMDMI",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "removed-middle",
			x:    []string{"line1", "line", "line2"},
			y:    []string{"line1", "line2"},
			want: "MDM",
		},
		{
			name: "blank-line-is-a-line",
			x:    []string{"a", "", "b"},
			y:    []string{"a", "b"},
			want: "MDM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(Diff(tt.x, tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
			}
			got = render(DiffFunc(tt.x, tt.y, func(a, b string) bool { return a == b }))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DiffFunc(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

// TestRandom checks that the script transforms x into y and that it's as short as the longest
// common subsequence allows.
func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	gen := func() []byte {
		n := rng.IntN(20)
		out := make([]byte, n)
		for i := range out {
			out[i] = "abc"[rng.IntN(3)]
		}
		return out
	}

	for range 500 {
		x, y := gen(), gen()
		script := Diff(x, y)

		var got []byte
		s, u, edits := 0, 0, 0
		for _, op := range script {
			switch op {
			case Match:
				if x[s] != y[u] {
					t.Fatalf("Diff(%q, %q): match of %q and %q", x, y, x[s], y[u])
				}
				got = append(got, x[s])
				s++
				u++
			case Delete:
				s++
				edits++
			case Insert:
				got = append(got, y[u])
				u++
				edits++
			}
		}
		if s != len(x) || u != len(y) {
			t.Fatalf("Diff(%q, %q): script stops at (%d, %d)", x, y, s, u)
		}
		if string(got) != string(y) {
			t.Fatalf("Diff(%q, %q): replay produced %q", x, y, got)
		}
		if want := len(x) + len(y) - 2*lcs(x, y); edits != want {
			t.Errorf("Diff(%q, %q) has %d edits, want %d", x, y, edits, want)
		}
	}
}

func BenchmarkDiff(b *testing.B) {
	x := strings.Split(strings.Repeat("foo\nbar\nbaz\n", 100), "\n")
	y := strings.Split(strings.Repeat("foo\nqux\nbaz\n", 100), "\n")
	b.ReportAllocs()
	for b.Loop() {
		_ = Diff(x, y)
	}
}

func render(script []Op) string {
	var sb strings.Builder
	for _, op := range script {
		sb.WriteString(op.String())
	}
	return sb.String()
}

func lcs(x, y []byte) int {
	dp := make([][]int, len(x)+1)
	for i := range dp {
		dp[i] = make([]int, len(y)+1)
	}
	for i := len(x) - 1; i >= 0; i-- {
		for j := len(y) - 1; j >= 0; j-- {
			if x[i] == y[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}
	return dp[0][0]
}
