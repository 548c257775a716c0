// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package regex

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/softsilverwind/fsa/automaton"
)

func term(c byte) automaton.Node {
	return automaton.Terminal{Symbol: automaton.Symbol(c)}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		expr     string
		expected automaton.Node
	}{
		{"ab", automaton.Concat{Left: term('a'), Right: term('b')}},
		{"a|b", automaton.Alternation{Left: term('a'), Right: term('b')}},
		{"a*", automaton.Star{Sub: term('a')}},
		{"a+", automaton.Concat{Left: term('a'), Right: automaton.Star{Sub: term('a')}}},
		{"a?", automaton.Optional{Sub: term('a')}},
		{"a{2,3}", automaton.Repeat{Sub: term('a'), Min: 2, Max: 3}},
		{"a{2,}", automaton.Concat{
			Left:  automaton.Repeat{Sub: term('a'), Min: 2, Max: 2},
			Right: automaton.Star{Sub: term('a')},
		}},
		{"(a)", term('a')},
		{"^a$", term('a')},
		{"", automaton.Empty{}},
	}
	for _, tc := range testCases {
		node, err := Parse(tc.expr)
		if err != nil {
			t.Errorf("%q: %v", tc.expr, err)
			continue
		}
		if !reflect.DeepEqual(node, tc.expected) {
			t.Errorf("%q: Observed %#v expected %#v", tc.expr, node, tc.expected)
		}
	}
}

func TestParseErrors(t *testing.T) {
	unsupported := []string{`\bfoo`, `a^b`, `é`, `[^\x00-\x7f]`, `a$b`}
	for _, expr := range unsupported {
		if _, err := Parse(expr); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%q: Observed %v expected %v", expr, err, ErrUnsupported)
		}
	}
	malformed := []string{`a(`, `*a`, `a{2,1}`}
	for _, expr := range malformed {
		_, err := Parse(expr)
		if err == nil || errors.Is(err, ErrUnsupported) {
			t.Errorf("%q: Observed %v expected a parse error", expr, err)
		}
	}
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

func TestCompileAgainstRegexp(t *testing.T) {
	exprs := []string{
		"ab",
		"a*",
		"a|b",
		"(ab)*c?",
		"[a-c]{2,3}",
		"a+b+",
		"(?i)Ab",
		"^a.c$",
		"(a|bc)*",
		"a{0}",
		"a|",
		"[^a]b",
		"(a|b)*abb",
		"((a|b){1,2}c?)+",
		`\.A?`,
	}
	inputs := allStrings("abcA.", 4)
	for _, expr := range exprs {
		dfa, err := Compile(expr, Options{})
		if err != nil {
			t.Errorf("%q: %v", expr, err)
			continue
		}
		if err := dfa.Validate(); err != nil {
			t.Errorf("%q: %v", expr, err)
		}
		re := regexp.MustCompile("^(?:" + expr + ")$")
		for _, s := range inputs {
			if got, expected := dfa.Matches(Symbols(s)), re.MatchString(s); got != expected {
				t.Errorf("%q on %q: Observed %v expected %v", expr, s, got, expected)
			}
		}
		count := 0
		dfa.Generate(func(symbols []automaton.Symbol) bool {
			count++
			if !re.MatchString(String(symbols)) {
				t.Errorf("%q generated %q", expr, String(symbols))
			}
			return count < 50
		})
	}
}

func TestCompileMaxStates(t *testing.T) {
	_, err := Compile("(a|b)*a(a|b){6}", Options{MaxStates: 16})
	if !errors.Is(err, automaton.ErrTooManyStates) {
		t.Errorf("Observed %v expected %v", err, automaton.ErrTooManyStates)
	}
	dfa, err := Compile("(a|b)*a(a|b){6}", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if dfa.NumStates() != 128 {
		t.Errorf("Observed %v states expected 128", dfa.NumStates())
	}
}

func TestCompileDot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dot")
	if _, err := Compile("a(b|c)*", Options{DotDir: dir}); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"fsa_nfa.dot", "fsa_nfa_dfa.dot", "fsa_nfa_dfa_min.dot"} {
		buf, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Error(err)
			continue
		}
		if !strings.Contains(string(buf), `label="'a'"`) {
			t.Errorf("%v: no edge labelled 'a' in\n%s", name, buf)
		}
	}
}

func TestAlphabet(t *testing.T) {
	if s := String(Symbols("a.\n")); s != "a.\n" {
		t.Errorf("Observed %q", s)
	}
	if l := Label('a'); l != "'a'" {
		t.Errorf("Observed %v", l)
	}
	if l := Label(automaton.Epsilon); l != "ε" {
		t.Errorf("Observed %v", l)
	}
}
