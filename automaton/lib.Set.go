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
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Set is an unordered set of comparable values.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding elems.
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s.Insert(e)
	}
	return s
}

// Contains test whether value is present
func (s Set[T]) Contains(e T) bool {
	_, present := s[e]
	return present
}

// Insert element to set
func (s Set[T]) Insert(e T) {
	s[e] = struct{}{}
}

// Erase element from set
func (s Set[T]) Erase(e T) {
	delete(s, e)
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) Equal(other Set[T]) bool {
	return maps.Equal(s, other)
}

func (s Set[T]) Clone() Set[T] {
	return maps.Clone(s)
}

// sortedElems returns the elements of s in ascending order
func sortedElems[T constraints.Ordered](s Set[T]) []T {
	elems := maps.Keys(s)
	slices.Sort(elems)
	return elems
}

// sortedKeys returns the keys of m in ascending order
func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
