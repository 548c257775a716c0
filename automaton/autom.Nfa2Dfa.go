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

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// closedMoves computes, per non-epsilon symbol, the epsilon closure of
// all states reachable from subset over that symbol
func closedMoves(n *NFA, closure [][]State, subset []State) map[Symbol]Set[State] {
	moves := map[Symbol]Set[State]{}
	for _, state := range subset {
		for symbol, targets := range n.Next[state] {
			if symbol == Epsilon {
				continue
			}
			move, present := moves[symbol]
			if !present {
				move = NewSet[State]()
				moves[symbol] = move
			}
			for _, to := range targets {
				for _, x := range closure[to] {
					move.Insert(x)
				}
			}
		}
	}
	return moves
}

// nfaToDfa runs the subset construction. DFA ids are assigned in
// discovery order; symbols of a subset are visited in ascending order,
// so the result only depends on n. A maxStates <= 0 means no limit.
func nfaToDfa(n *NFA, maxStates int) (*DFA, error) {
	closure := EpsilonClosure(n)

	initial := NewSet[State]()
	for _, s := range sortedElems(n.Initials) {
		for _, x := range closure[s] {
			initial.Insert(x)
		}
	}
	start := sortedElems(initial)

	ids := newSeqIndex[State, State]()
	ids.insert(start, 0)
	queue := newQueue[[]State]()
	queue.push(start)

	result := &DFA{
		Initial: 0,
		Finals:  NewSet[State](),
	}
	for !queue.empty() {
		subset := queue.front()
		queue.pop()
		id := State(len(result.Next))

		if slices.IndexFunc(subset, n.Finals.Contains) >= 0 {
			result.Finals.Insert(id)
		}

		moves := closedMoves(n, closure, subset)
		next := DFANext{}
		for _, symbol := range sortedKeys(moves) {
			target := sortedElems(moves[symbol])
			to, present := ids.get(target)
			if !present {
				if maxStates > 0 && ids.len() >= maxStates {
					return nil, fmt.Errorf("%w %v::nfaToDfa", ErrTooManyStates, maxStates)
				}
				to = State(ids.len())
				ids.insert(target, to)
				queue.push(target)
			}
			next[symbol] = to
		}
		result.Next = append(result.Next, next)
	}
	return result, nil
}

// Determinize converts n into an equivalent DFA with the subset
// construction. The NFA is not modified.
func Determinize(n *NFA) *DFA {
	d, err := nfaToDfa(n, 0)
	if err != nil {
		panic(fmt.Sprintf("1f0d9c44: unbounded determinization failed: %v", err))
	}
	return d
}

// DeterminizeMax is Determinize with a bound on the number of DFA
// states; it fails with ErrTooManyStates when the bound is exceeded.
func DeterminizeMax(n *NFA, maxStates int) (*DFA, error) {
	d, err := nfaToDfa(n, maxStates)
	if err != nil {
		return nil, fmt.Errorf("%w::DeterminizeMax", err)
	}
	return d, nil
}
