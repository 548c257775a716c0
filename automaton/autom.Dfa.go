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

	"golang.org/x/exp/maps"
)

// DFANext holds the outgoing transitions of one DFA state. A missing
// symbol means the input is rejected.
type DFANext map[Symbol]State

// DFA is a deterministic automaton. Next[s] holds the transitions of
// state s.
type DFA struct {
	Next    []DFANext
	Initial State
	Finals  Set[State]
}

func (d *DFA) NumStates() int {
	return len(d.Next)
}

// Symbols returns the symbols with a transition out of state, in
// ascending order.
func (d *DFA) Symbols(state State) []Symbol {
	return sortedKeys(d.Next[state])
}

// Matches runs d over input and reports whether it ends in a final
// state. A missing transition rejects immediately.
func (d *DFA) Matches(input []Symbol) bool {
	state := d.Initial
	for _, symbol := range input {
		next, present := d.Next[state][symbol]
		if !present {
			return false
		}
		state = next
	}
	return d.Finals.Contains(state)
}

// Minimize replaces d with its minimized version.
func (d *DFA) Minimize() {
	*d = *Minimize(d)
}

// Equal reports whether d and other have identical states,
// transitions, initial state and final states.
func (d *DFA) Equal(other *DFA) bool {
	if d.Initial != other.Initial || len(d.Next) != len(other.Next) {
		return false
	}
	if !d.Finals.Equal(other.Finals) {
		return false
	}
	for i := range d.Next {
		if !maps.Equal(d.Next[i], other.Next[i]) {
			return false
		}
	}
	return true
}

// Validate checks that the initial state, the final states and all
// transition targets exist and that no transition uses Epsilon.
func (d *DFA) Validate() error {
	num := State(len(d.Next))
	if d.Initial < 0 || d.Initial >= num {
		return fmt.Errorf("initial state %v out of range [0, %v)::DFA.Validate", d.Initial, num)
	}
	for id := range d.Finals {
		if id < 0 || id >= num {
			return fmt.Errorf("final state %v out of range [0, %v)::DFA.Validate", id, num)
		}
	}
	for from, next := range d.Next {
		for symbol, to := range next {
			if symbol == Epsilon {
				return fmt.Errorf("epsilon transition out of state %v::DFA.Validate", from)
			}
			if to < 0 || to >= num {
				return fmt.Errorf("transition %v -%v-> %v leaves the automaton::DFA.Validate", from, symbol, to)
			}
		}
	}
	return nil
}
