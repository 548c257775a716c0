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

import "slices"

// walk is a path through a DFA: the symbols read and the states
// visited, so len(states) == len(symbols)+1.
type walk struct {
	symbols []Symbol
	states  []State
}

// key returns the sequence identifying w in the seen-set
func (w *walk) key() []int32 {
	key := make([]int32, 0, 1+len(w.symbols)+len(w.states))
	key = append(key, int32(len(w.symbols)))
	for _, s := range w.symbols {
		key = append(key, int32(s))
	}
	for _, s := range w.states {
		key = append(key, int32(s))
	}
	return key
}

// splice inserts cycle c (which starts and ends at w.states[i]) into w
// at position i
func (w *walk) splice(i int, c *walk) walk {
	states := make([]State, 0, len(w.states)+len(c.states)-1)
	states = append(states, w.states[:i]...)
	states = append(states, c.states...)
	states = append(states, w.states[i+1:]...)

	symbols := make([]Symbol, 0, len(w.symbols)+len(c.symbols))
	symbols = append(symbols, w.symbols[:i]...)
	symbols = append(symbols, c.symbols...)
	symbols = append(symbols, w.symbols[i:]...)
	return walk{symbols: symbols, states: states}
}

type pathFinder struct {
	dfa     *DFA
	end     State
	visited Set[State]
}

// dfs returns the simple paths from current to pf.end, built in
// reverse. When current == pf.end on the first call, the search looks
// for cycles through it instead of returning the empty path.
func (pf *pathFinder) dfs(current State) []walk {
	if current == pf.end {
		if pf.visited.Len() > 0 {
			return []walk{{states: []State{current}}}
		}
	} else {
		pf.visited.Insert(current)
	}

	var paths []walk
	for _, symbol := range pf.dfa.Symbols(current) {
		next := pf.dfa.Next[current][symbol]
		if next == current || pf.visited.Contains(next) {
			continue
		}
		for _, p := range pf.dfs(next) {
			p.symbols = append(p.symbols, symbol)
			p.states = append(p.states, current)
			paths = append(paths, p)
		}
	}
	pf.visited.Erase(current)
	return paths
}

// findPaths returns all simple paths from start to end. When start ==
// end these are the non-empty simple cycles through start, self-loops
// included.
func (d *DFA) findPaths(start, end State) []walk {
	pf := &pathFinder{dfa: d, end: end, visited: NewSet[State]()}
	paths := pf.dfs(start)
	for i := range paths {
		slices.Reverse(paths[i].symbols)
		slices.Reverse(paths[i].states)
	}
	if start == end {
		for _, symbol := range d.Symbols(start) {
			if d.Next[start][symbol] == start {
				paths = append(paths, walk{symbols: []Symbol{symbol}, states: []State{start, start}})
			}
		}
	}
	return paths
}

// Generate enumerates strings accepted by d and passes each one to f,
// stopping as soon as f returns false. For an infinite language it
// runs until f stops it.
//
// Strings are produced from the simple paths to each final state by
// splicing in simple cycles, breadth first. Walks are deduplicated by
// their (symbols, states) pair; in a DFA the states of a walk follow
// from its symbols, so each string is delivered at most once.
func (d *DFA) Generate(f func(symbols []Symbol) bool) {
	cycles := make([][]walk, len(d.Next))
	for s := range d.Next {
		cycles[s] = d.findPaths(State(s), State(s))
	}

	seen := newSeqIndex[int32, struct{}]()
	queue := newQueue[walk]()
	enqueue := func(w walk) {
		if seen.insert(w.key(), struct{}{}) {
			queue.push(w)
		}
	}

	if d.Finals.Contains(d.Initial) {
		enqueue(walk{states: []State{d.Initial}})
	}
	for _, final := range sortedElems(d.Finals) {
		for _, p := range d.findPaths(d.Initial, final) {
			enqueue(p)
		}
	}

	for !queue.empty() {
		w := queue.front()
		queue.pop()
		if !f(slices.Clone(w.symbols)) {
			return
		}
		for i, state := range w.states {
			for j := range cycles[state] {
				enqueue(w.splice(i, &cycles[state][j]))
			}
		}
	}
}
