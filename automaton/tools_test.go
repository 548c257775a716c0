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
	"math/rand"
	"regexp"
	"strings"
)

func symbols(s string) []Symbol {
	result := make([]Symbol, len(s))
	for i := 0; i < len(s); i++ {
		result[i] = Symbol(s[i])
	}
	return result
}

func text(symbols []Symbol) string {
	var sb strings.Builder
	for _, s := range symbols {
		sb.WriteByte(byte(s))
	}
	return sb.String()
}

func reversed(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func lit(s string) Node {
	var result Node
	for i := 0; i < len(s); i++ {
		t := Terminal{Symbol(s[i])}
		if result == nil {
			result = t
		} else {
			result = Concat{result, t}
		}
	}
	if result == nil {
		return Empty{}
	}
	return result
}

// compile builds the (unminimized) DFA of n
func compile(n Node) *DFA {
	return Determinize(Build(n))
}

// allStrings returns every string over alphabet of length <= maxLen
func allStrings(alphabet string, maxLen int) []string {
	result := []string{""}
	layer := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
		for _, prefix := range layer {
			for i := 0; i < len(alphabet); i++ {
				next = append(next, prefix+alphabet[i:i+1])
			}
		}
		result = append(result, next...)
		layer = next
	}
	return result
}

// nodeString renders n in Go regexp syntax
func nodeString(n Node) string {
	switch n := n.(type) {
	case Empty:
		return "(?:)"
	case Terminal:
		return regexp.QuoteMeta(string(rune(n.Symbol)))
	case Concat:
		return "(?:" + nodeString(n.Left) + ")(?:" + nodeString(n.Right) + ")"
	case Star:
		return "(?:" + nodeString(n.Sub) + ")*"
	case Alternation:
		return "(?:(?:" + nodeString(n.Left) + ")|(?:" + nodeString(n.Right) + "))"
	case Optional:
		return "(?:" + nodeString(n.Sub) + ")?"
	case Repeat:
		return fmt.Sprintf("(?:%s){%d,%d}", nodeString(n.Sub), n.Min, n.Max)
	}
	panic(fmt.Sprintf("unexpected node %T", n))
}

// reference returns the Go regexp matching exactly the language of n
func reference(n Node) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + nodeString(n) + ")$")
}

// randomNode returns a random syntax tree over the symbols a, b and c
func randomNode(rng *rand.Rand, depth int) Node {
	if depth == 0 || rng.Intn(4) == 0 {
		return Terminal{Symbol('a' + rng.Intn(3))}
	}
	switch rng.Intn(6) {
	case 0:
		return Concat{randomNode(rng, depth-1), randomNode(rng, depth-1)}
	case 1:
		return Star{randomNode(rng, depth-1)}
	case 2:
		return Alternation{randomNode(rng, depth-1), randomNode(rng, depth-1)}
	case 3:
		return Optional{randomNode(rng, depth-1)}
	case 4:
		lo := rng.Intn(3)
		return Repeat{randomNode(rng, depth-1), lo, lo + rng.Intn(3)}
	default:
		return Concat{randomNode(rng, depth-1), Star{randomNode(rng, depth-1)}}
	}
}
