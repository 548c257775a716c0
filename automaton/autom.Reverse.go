// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package automaton

// Reverse returns an NFA accepting the reversal of every string d
// accepts: every edge is flipped, the final states of d become the
// initial states and the initial state of d the only final state.
// State ids are kept.
func Reverse(d *DFA) *NFA {
	prev := make([]NFANext, len(d.Next))
	for i := range prev {
		prev[i] = NFANext{}
	}
	for from := range d.Next {
		for _, symbol := range d.Symbols(State(from)) {
			to := d.Next[from][symbol]
			prev[to][symbol] = append(prev[to][symbol], State(from))
		}
	}
	return &NFA{
		Next:     prev,
		Initials: d.Finals.Clone(),
		Finals:   NewSet(d.Initial),
	}
}

// Reverse is shorthand for Reverse(d).
func (d *DFA) Reverse() *NFA {
	return Reverse(d)
}
