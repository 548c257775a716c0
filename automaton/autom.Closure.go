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

import "golang.org/x/exp/slices"

// EpsilonClosure returns, for every state of n, the sorted set of
// states reachable from it over zero or more epsilon edges.
func EpsilonClosure(n *NFA) [][]State {
	result := make([][]State, len(n.Next))
	stack := newStack[State]()
	visited := newBitSet()

	for initial := range n.Next {
		visited.clear()
		stack.push(State(initial))
		for !stack.empty() {
			top := stack.top()
			stack.pop()
			if !visited.insert(int(top)) {
				continue
			}
			result[initial] = append(result[initial], top)
			stack.push(n.Next[top][Epsilon]...)
		}
		slices.Sort(result[initial])
	}
	return result
}
