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

import "fmt"

// thompson is the append-only arena Build allocates states in. The id
// of a state is its index; a fresh state always gets len(next).
type thompson struct {
	next []NFANext
}

func (t *thompson) newNode(symbol Symbol, to State) State {
	id := State(len(t.next))
	t.next = append(t.next, NFANext{symbol: {to}})
	return id
}

// newDummyNode allocates a state with an epsilon edge to the state
// that will be allocated right after it
func (t *thompson) newDummyNode() State {
	return t.newNode(Epsilon, State(len(t.next)+1))
}

func (t *thompson) addEpsilon(from, to State) {
	targets, present := t.next[from][Epsilon]
	if !present {
		panic(fmt.Sprintf("4c1e0a7d: state %v has no epsilon edge to extend", from))
	}
	for _, x := range targets {
		if x == to {
			return
		}
	}
	t.next[from][Epsilon] = append(targets, to)
}

// backpatch redirects every edge of state that points at from to point
// at to instead. Edges are created pointing at the next state to be
// allocated; when that state turns out to belong to another branch,
// the edge has to be rewritten once the real target exists.
func (t *thompson) backpatch(state, from, to State) {
	for symbol, targets := range t.next[state] {
		out := targets[:0]
		for _, x := range targets {
			if x == from {
				x = to
			}
			if !containsState(out, x) {
				out = append(out, x)
			}
		}
		t.next[state][symbol] = out
	}
}

func containsState(states []State, s State) bool {
	for _, x := range states {
		if x == s {
			return true
		}
	}
	return false
}

// translate appends the fragment for n and returns its entry and exit
// states. The entry is the first state allocated for n and the exit is
// the last one; the exit always falls through to the state allocated next.
func (t *thompson) translate(n Node) (start, end State) {
	start = t.newDummyNode()
	switch n := n.(type) {
	case Empty:
	case Terminal:
		if n.Symbol == Epsilon {
			panic("9e2b5c11: terminal carries the epsilon symbol")
		}
		t.newNode(n.Symbol, start+2)
	case Concat:
		t.translate(n.Left)
		t.translate(n.Right)
	case Star:
		t.translate(n.Sub)
		end := t.newDummyNode()
		t.addEpsilon(end, start) // repeat
		t.addEpsilon(start, end) // skip
	case Alternation:
		_, leftEnd := t.translate(n.Left)
		rightStart, _ := t.translate(n.Right)
		end := t.newDummyNode()
		t.backpatch(leftEnd, rightStart, end) // left continues after right
		t.addEpsilon(start, rightStart)      // skip to right
	case Optional:
		t.translate(n.Sub)
		end := t.newDummyNode()
		t.addEpsilon(start, end)
	case Repeat:
		if n.Min < 0 || n.Max < n.Min {
			panic(fmt.Sprintf("30d8f6a2: invalid repeat bounds {%v,%v}", n.Min, n.Max))
		}
		for i := 0; i < n.Min; i++ {
			t.translate(n.Sub)
			t.newDummyNode()
		}
		for i := n.Min; i < n.Max; i++ {
			n1 := t.newDummyNode()
			t.translate(n.Sub)
			n2 := t.newDummyNode()
			t.addEpsilon(n1, n2)
		}
	default:
		panic(fmt.Sprintf("b7713a0e: unknown syntax node %T", n))
	}
	return start, State(len(t.next) - 1)
}

// Build translates a syntax tree into an NFA (Thompson construction).
// The NFA has initial state 0 and one final state, the last one.
func Build(n Node) *NFA {
	t := &thompson{}
	t.translate(n)
	last := State(len(t.next))
	t.next = append(t.next, NFANext{})
	return &NFA{
		Next:     t.next,
		Initials: NewSet[State](0),
		Finals:   NewSet(last),
	}
}
