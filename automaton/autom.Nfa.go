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

import (
	"fmt"
)

// NFANext holds the outgoing transitions of one NFA state. Target
// lists hold no duplicates. Epsilon is a legal key.
type NFANext map[Symbol][]State

// NFA is a nondeterministic automaton. Next[s] holds the
// transitions of state s.
type NFA struct {
	Next     []NFANext
	Initials Set[State]
	Finals   Set[State]
}

func (n *NFA) NumStates() int {
	return len(n.Next)
}

// Symbols returns the symbols (epsilon included) with a transition
// out of state, in ascending order.
func (n *NFA) Symbols(state State) []Symbol {
	return sortedKeys(n.Next[state])
}

// Validate checks that all transitions and endpoint sets reference
// existing states and that no target list holds duplicates.
func (n *NFA) Validate() error {
	num := State(len(n.Next))
	for id := range n.Initials {
		if id < 0 || id >= num {
			return fmt.Errorf("initial state %v out of range [0, %v)::NFA.Validate", id, num)
		}
	}
	for id := range n.Finals {
		if id < 0 || id >= num {
			return fmt.Errorf("final state %v out of range [0, %v)::NFA.Validate", id, num)
		}
	}
	for from, next := range n.Next {
		for symbol, targets := range next {
			seen := NewSet[State]()
			for _, to := range targets {
				if to < 0 || to >= num {
					return fmt.Errorf("transition %v -%v-> %v leaves the automaton::NFA.Validate", from, symbol, to)
				}
				if seen.Contains(to) {
					return fmt.Errorf("duplicate transition %v -%v-> %v::NFA.Validate", from, symbol, to)
				}
				seen.Insert(to)
			}
		}
	}
	return nil
}
