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

type queueT[T any] []T

func newQueue[T any]() queueT[T] {
	var q queueT[T]
	return q
}

// empty test whether queue is empty
func (q *queueT[T]) empty() bool {
	return len(*q) == 0
}

// pop discard next element (if any)
func (q *queueT[T]) pop() {
	if len(*q) > 0 {
		var zero T
		(*q)[0] = zero
		*q = (*q)[1:] // remove first element
	}
}

// front access next element
func (q *queueT[T]) front() T {
	return (*q)[0] // return first element
}

// push element to queue
func (q *queueT[T]) push(e T) {
	*q = append(*q, e) // append to end
}

type stackT[T any] []T

func newStack[T any]() stackT[T] {
	var s stackT[T]
	return s
}

// empty test whether stack is empty
func (s *stackT[T]) empty() bool {
	return len(*s) == 0
}

// pop discard next element (if any)
func (s *stackT[T]) pop() {
	if len(*s) > 0 {
		*s = (*s)[:len(*s)-1] // remove next element
	}
}

// top access next element
func (s *stackT[T]) top() T {
	return (*s)[len(*s)-1] // return next element
}

// push elements to stack
func (s *stackT[T]) push(e ...T) {
	*s = append(*s, e...) // append to end
}
