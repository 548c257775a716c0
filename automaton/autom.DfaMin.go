// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package automaton

// distinctTable is the symmetric "distinguishable" relation over pairs
// of states of one DFA
type distinctTable struct {
	n    int
	bits bitSetT
}

func (t *distinctTable) contains(i, j State) bool {
	return t.bits.contains(int(i)*t.n + int(j))
}

// mark records that i and j are distinguishable; it returns false when
// they already were
func (t *distinctTable) mark(i, j State) bool {
	t.bits.insert(int(j)*t.n + int(i))
	return t.bits.insert(int(i)*t.n + int(j))
}

func sameSymbols(a, b DFANext) bool {
	if len(a) != len(b) {
		return false
	}
	for symbol := range a {
		if _, present := b[symbol]; !present {
			return false
		}
	}
	return true
}

// findDistinct fills the table of distinguishable pairs: pairs that
// differ in finality, then pairs that differ in their defined symbols
// or move to a distinguishable pair, until a fixpoint is reached
func findDistinct(d *DFA) *distinctTable {
	n := len(d.Next)
	table := &distinctTable{n: n, bits: newBitSet()}

	for i := State(0); int(i) < n; i++ {
		for j := i + 1; int(j) < n; j++ {
			if d.Finals.Contains(i) != d.Finals.Contains(j) {
				table.mark(i, j)
			}
		}
	}

	for fixpoint := false; !fixpoint; {
		fixpoint = true
		for i := State(0); int(i) < n; i++ {
			for j := i + 1; int(j) < n; j++ {
				if table.contains(i, j) {
					continue
				}
				if !sameSymbols(d.Next[i], d.Next[j]) {
					table.mark(i, j)
					fixpoint = false
					continue
				}
				for _, symbol := range d.Symbols(i) {
					if table.contains(d.Next[i][symbol], d.Next[j][symbol]) {
						table.mark(i, j)
						fixpoint = false
						break
					}
				}
			}
		}
	}
	return table
}

// Minimize returns the minimal DFA equivalent to d (table filling).
// Each class of equivalent states is represented by its smallest
// state; representatives keep their relative order in the result.
func Minimize(d *DFA) *DFA {
	n := len(d.Next)
	table := findDistinct(d)

	representative := make([]State, n)
	for j := State(0); int(j) < n; j++ {
		representative[j] = j
		for i := State(0); i < j; i++ {
			if !table.contains(i, j) {
				representative[j] = i
				break
			}
		}
	}

	translate := make([]State, n)
	result := &DFA{Finals: NewSet[State]()}
	for s := State(0); int(s) < n; s++ {
		if representative[s] == s {
			translate[s] = State(len(result.Next))
			result.Next = append(result.Next, nil)
		}
	}
	for s := State(0); int(s) < n; s++ {
		if representative[s] != s {
			continue
		}
		next := make(DFANext, len(d.Next[s]))
		for symbol, to := range d.Next[s] {
			next[symbol] = translate[representative[to]]
		}
		result.Next[translate[s]] = next
	}
	for f := range d.Finals {
		result.Finals.Insert(translate[representative[f]])
	}
	result.Initial = translate[representative[d.Initial]]
	return result
}
