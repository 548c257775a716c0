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
	"encoding/binary"

	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"
)

// siphash keys; the index is never exposed, so fixed keys are fine
const (
	seqIndexK0 = 0x0706050403020100
	seqIndexK1 = 0x0f0e0d0c0b0a0908
)

type seqEntry[K ~int32, V any] struct {
	key   []K
	value V
}

// seqIndex maps sequences of ids to values. Sequences are bucketed by
// their siphash; entries of one bucket are compared element-wise.
type seqIndex[K ~int32, V any] struct {
	buckets map[uint64][]seqEntry[K, V]
	buf     []byte
	size    int
}

func newSeqIndex[K ~int32, V any]() *seqIndex[K, V] {
	return &seqIndex[K, V]{buckets: map[uint64][]seqEntry[K, V]{}}
}

func (ix *seqIndex[K, V]) hash(key []K) uint64 {
	ix.buf = ix.buf[:0]
	for _, k := range key {
		ix.buf = binary.LittleEndian.AppendUint32(ix.buf, uint32(k))
	}
	return siphash.Hash(seqIndexK0, seqIndexK1, ix.buf)
}

// get returns the value stored for key
func (ix *seqIndex[K, V]) get(key []K) (V, bool) {
	for _, e := range ix.buckets[ix.hash(key)] {
		if slices.Equal(e.key, key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// insert stores a copy of key with value v; it returns false
// (and changes nothing) when key is already present
func (ix *seqIndex[K, V]) insert(key []K, v V) bool {
	h := ix.hash(key)
	for _, e := range ix.buckets[h] {
		if slices.Equal(e.key, key) {
			return false
		}
	}
	ix.buckets[h] = append(ix.buckets[h], seqEntry[K, V]{slices.Clone(key), v})
	ix.size++
	return true
}

func (ix *seqIndex[K, V]) len() int {
	return ix.size
}
