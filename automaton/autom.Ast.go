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

// Node is a regex syntax tree node. The concrete types are
// Empty, Terminal, Concat, Star, Alternation, Optional and Repeat.
type Node interface {
	node()
}

// Empty matches the empty string.
type Empty struct{}

// Terminal matches one symbol.
type Terminal struct {
	Symbol Symbol
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Node
}

// Star matches zero or more repetitions of Sub.
type Star struct {
	Sub Node
}

// Alternation matches either Left or Right.
type Alternation struct {
	Left, Right Node
}

// Optional matches Sub or the empty string.
type Optional struct {
	Sub Node
}

// Repeat matches between Min and Max (inclusive) repetitions of Sub.
type Repeat struct {
	Sub      Node
	Min, Max int
}

func (Empty) node()       {}
func (Terminal) node()    {}
func (Concat) node()      {}
func (Star) node()        {}
func (Alternation) node() {}
func (Optional) node()    {}
func (Repeat) node()      {}
