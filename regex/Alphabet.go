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

package regex

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/softsilverwind/fsa/automaton"
)

// maxSymbol is the largest rune with a symbol; the alphabet is ASCII
// and symbol values equal byte values.
const maxSymbol = unicode.MaxASCII

// Symbols maps the bytes of s to symbols.
func Symbols(s string) []automaton.Symbol {
	result := make([]automaton.Symbol, len(s))
	for i := 0; i < len(s); i++ {
		result[i] = automaton.Symbol(s[i])
	}
	return result
}

// String maps symbols back to the bytes they stand for.
func String(symbols []automaton.Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, s := range symbols {
		sb.WriteByte(byte(s))
	}
	return sb.String()
}

// Label renders a symbol as a quoted character, for graph output.
func Label(s automaton.Symbol) string {
	if s == automaton.Epsilon {
		return s.String()
	}
	return fmt.Sprintf("%q", rune(s))
}
