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

type crossing struct{}

// Crossing is the default [MovePolicy]. A pair is moved if its relative order to any other pair
// differs between the two documents, that is, if one pair comes first in the old document and the
// other one comes first in the new document.
//
// If one block is moved far ahead, every block it jumps over is reported as moved as well.
var Crossing MovePolicy = crossing{}

func (crossing) Moved(pairs []Pair, i int) bool {
	p := pairs[i]
	for j, q := range pairs {
		if j == i {
			continue
		}
		if (p.Before < q.Before && p.After > q.After) || (p.Before > q.Before && p.After < q.After) {
			return true
		}
	}
	return false
}

type displacement struct{}

// Displacement is a [MovePolicy] that only reports a pair as moved if its position changed and no
// block that followed it in the old document precedes it in the new document. Blocks that only
// shifted because an earlier block jumped over them are not reported.
var Displacement MovePolicy = displacement{}

func (displacement) Moved(pairs []Pair, i int) bool {
	p := pairs[i]
	if p.Before == p.After {
		return false
	}
	for _, q := range pairs {
		if p.Before < q.Before && p.After > q.After {
			return false
		}
	}
	return true
}
