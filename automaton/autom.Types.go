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

// Package automaton implements the finite automata behind a regular
// expression backend: Thompson construction of an NFA from a regex AST,
// subset construction of a DFA, table-filling minimization, reversal,
// matching and enumeration of accepted strings.
//
// States are dense integer ids into per-automaton slices; no automaton
// holds a pointer to another state.
package automaton

import (
	"errors"
	"strconv"
)

// State is the id of a node in an NFA or DFA. Ids of one automaton
// are dense: they span 0..NumStates()-1.
type State int32

// Symbol is an opaque alphabet element labelling a transition.
type Symbol int32

// Epsilon is the pseudo-symbol of transitions that consume no input.
// It only ever appears in an NFA.
const Epsilon = Symbol(-1)

// MaxStatesAutomaton is the default maximum number of DFA states
// discovered by DeterminizeMax.
const MaxStatesAutomaton = 3000

// ErrTooManyStates is returned when determinization exceeds its state budget.
var ErrTooManyStates = errors.New("automaton exceeds max number of states")

func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return strconv.Itoa(int(s))
}

func (s State) String() string {
	return "q" + strconv.Itoa(int(s))
}
