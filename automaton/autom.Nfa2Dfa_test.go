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
	"errors"
	"testing"

	"golang.org/x/exp/slices"
)

func TestEpsilonClosure(t *testing.T) {
	n := Build(Star{Terminal{'a'}})
	closure := EpsilonClosure(n)
	expected := [][]State{
		{0, 1, 2, 3, 4},
		{1, 2},
		{2},
		{0, 1, 2, 3, 4},
		{4},
	}
	if len(closure) != len(expected) {
		t.Fatalf("Observed %v closures expected %v", len(closure), len(expected))
	}
	for i := range expected {
		if !slices.Equal(closure[i], expected[i]) {
			t.Errorf("state %v: Observed %v expected %v", i, closure[i], expected[i])
		}
	}
}

func TestEpsilonClosureCycle(t *testing.T) {
	// 0 <-> 1 -> 2, no symbols at all
	n := &NFA{
		Next: []NFANext{
			{Epsilon: {1}},
			{Epsilon: {0, 2}},
			{},
		},
		Initials: NewSet[State](0),
		Finals:   NewSet[State](2),
	}
	closure := EpsilonClosure(n)
	if !slices.Equal(closure[0], []State{0, 1, 2}) || !slices.Equal(closure[1], []State{0, 1, 2}) {
		t.Errorf("Observed %v", closure)
	}
	d := Determinize(n)
	if d.NumStates() != 1 || !d.Matches(nil) {
		t.Errorf("Observed %v states, empty match %v", d.NumStates(), d.Matches(nil))
	}
}

func TestDeterminizeConcat(t *testing.T) {
	d := compile(lit("ab"))
	if err := d.Validate(); err != nil {
		t.Fatal(err)
	}
	if d.NumStates() != 3 {
		t.Fatalf("Observed %v states expected 3", d.NumStates())
	}
	if !d.Matches(symbols("ab")) {
		t.Error("ab should match")
	}
	for _, s := range []string{"a", "ba", "", "abb", "b"} {
		if d.Matches(symbols(s)) {
			t.Errorf("%q should not match", s)
		}
	}
}

func TestDeterminizeStar(t *testing.T) {
	d := compile(Star{Terminal{'a'}})
	if d.NumStates() != 1 {
		t.Fatalf("Observed %v states expected 1", d.NumStates())
	}
	if !d.Finals.Contains(0) || d.Next[0]['a'] != 0 {
		t.Errorf("expected a final self-looping state, got %v", d.Next)
	}
}

func TestDeterminizeDiscoveryOrder(t *testing.T) {
	// ids follow ascending symbol order of each discovered subset
	d := compile(Alternation{lit("b"), lit("ac")})
	if d.Next[0]['a'] != 1 || d.Next[0]['b'] != 2 {
		t.Errorf("Observed %v", d.Next[0])
	}
	again := compile(Alternation{lit("b"), lit("ac")})
	if !d.Equal(again) {
		t.Error("determinization is not reproducible")
	}
}

func TestDeterminizeNoEpsilon(t *testing.T) {
	nodes := []Node{
		Star{Optional{Terminal{'a'}}},
		Repeat{Alternation{Terminal{'a'}, Empty{}}, 0, 3},
		Concat{Star{Terminal{'a'}}, Star{Terminal{'b'}}},
	}
	for _, n := range nodes {
		d := compile(n)
		if err := d.Validate(); err != nil {
			t.Errorf("%s: %v", nodeString(n), err)
		}
	}
}

func TestDeterminizeMultipleInitials(t *testing.T) {
	// the union of both initial states' closures is the start subset
	n := &NFA{
		Next: []NFANext{
			{'a': {2}},
			{'b': {2}},
			{},
		},
		Initials: NewSet[State](0, 1),
		Finals:   NewSet[State](2),
	}
	d := Determinize(n)
	for _, s := range []string{"a", "b"} {
		if !d.Matches(symbols(s)) {
			t.Errorf("%q should match", s)
		}
	}
	if d.Matches(nil) {
		t.Error("empty string should not match")
	}
}

func TestDeterminizeMax(t *testing.T) {
	// (a|b)*a(a|b){6}: the subset construction needs 2^7 states
	ab := Alternation{Terminal{'a'}, Terminal{'b'}}
	n := Build(Concat{Concat{Star{ab}, Terminal{'a'}}, Repeat{ab, 6, 6}})

	_, err := DeterminizeMax(n, 16)
	if !errors.Is(err, ErrTooManyStates) {
		t.Fatalf("Observed %v expected %v", err, ErrTooManyStates)
	}
	d, err := DeterminizeMax(n, MaxStatesAutomaton)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(Determinize(n)) {
		t.Error("bounded and unbounded determinization differ")
	}
	if got := Minimize(d).NumStates(); got != 128 {
		t.Errorf("Observed %v minimal states expected 128", got)
	}
}
