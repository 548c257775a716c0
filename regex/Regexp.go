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

// Package regex turns regular expression text into automata. Parsing is
// done by regexp/syntax; the resulting tree is translated to an
// automaton.Node over the ASCII alphabet. Expressions always match the
// whole input.
package regex

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp/syntax"
	"unicode"

	"github.com/softsilverwind/fsa/automaton"
)

// ErrUnsupported is returned for constructs the automata cannot express.
var ErrUnsupported = errors.New("unsupported regex construct")

// Parse parses expr into a syntax tree.
func Parse(expr string) (automaton.Node, error) {
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("%w::Parse", err)
	}
	node, err := translate(trimAnchors(re))
	if err != nil {
		return nil, fmt.Errorf("%w in %q::Parse", err, expr)
	}
	return node, nil
}

// trimAnchors drops a leading '^' and a trailing '$'; matching is
// anchored anyway
func trimAnchors(re *syntax.Regexp) *syntax.Regexp {
	switch re.Op {
	case syntax.OpBeginText, syntax.OpEndText:
		return &syntax.Regexp{Op: syntax.OpEmptyMatch}
	case syntax.OpConcat:
		sub := re.Sub
		if len(sub) > 0 && sub[0].Op == syntax.OpBeginText {
			sub = sub[1:]
		}
		if len(sub) > 0 && sub[len(sub)-1].Op == syntax.OpEndText {
			sub = sub[:len(sub)-1]
		}
		return &syntax.Regexp{Op: syntax.OpConcat, Sub: sub}
	}
	return re
}

func translate(re *syntax.Regexp) (automaton.Node, error) {
	switch re.Op {
	case syntax.OpEmptyMatch:
		return automaton.Empty{}, nil
	case syntax.OpLiteral:
		nodes := make([]automaton.Node, 0, len(re.Rune))
		for _, r := range re.Rune {
			node, err := literal(r, (re.Flags&syntax.FoldCase) != 0)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		return concat(nodes), nil
	case syntax.OpCharClass:
		return charClass(re.Rune)
	case syntax.OpAnyCharNotNL:
		return charClass([]rune{0, '\n' - 1, '\n' + 1, maxSymbol})
	case syntax.OpAnyChar:
		return charClass([]rune{0, maxSymbol})
	case syntax.OpCapture:
		return translate(re.Sub[0])
	case syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		sub, err := translate(re.Sub[0])
		if err != nil {
			return nil, err
		}
		switch re.Op {
		case syntax.OpStar:
			return automaton.Star{Sub: sub}, nil
		case syntax.OpPlus:
			return automaton.Concat{Left: sub, Right: automaton.Star{Sub: sub}}, nil
		case syntax.OpQuest:
			return automaton.Optional{Sub: sub}, nil
		}
		if re.Max == -1 { // x{n,}
			if re.Min == 0 {
				return automaton.Star{Sub: sub}, nil
			}
			return automaton.Concat{
				Left:  automaton.Repeat{Sub: sub, Min: re.Min, Max: re.Min},
				Right: automaton.Star{Sub: sub},
			}, nil
		}
		return automaton.Repeat{Sub: sub, Min: re.Min, Max: re.Max}, nil
	case syntax.OpConcat, syntax.OpAlternate:
		nodes := make([]automaton.Node, 0, len(re.Sub))
		for _, sub := range re.Sub {
			node, err := translate(sub)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		if re.Op == syntax.OpConcat {
			return concat(nodes), nil
		}
		return alternation(nodes), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupported, re.Op)
}

func literal(r rune, foldCase bool) (automaton.Node, error) {
	if r > maxSymbol {
		return nil, fmt.Errorf("%w: non-ASCII literal %#U", ErrUnsupported, r)
	}
	nodes := []automaton.Node{automaton.Terminal{Symbol: automaton.Symbol(r)}}
	if foldCase {
		for c := unicode.SimpleFold(r); c != r; c = unicode.SimpleFold(c) {
			if c <= maxSymbol {
				nodes = append(nodes, automaton.Terminal{Symbol: automaton.Symbol(c)})
			}
		}
	}
	return alternation(nodes), nil
}

// charClass translates a sequence of inclusive rune ranges, clipped to
// the alphabet, into an alternation of terminals
func charClass(ranges []rune) (automaton.Node, error) {
	if len(ranges)&1 == 1 {
		return nil, fmt.Errorf("invalid sequence of rune ranges %#U::charClass", ranges)
	}
	var nodes []automaton.Node
	for i := 0; i < len(ranges); i += 2 {
		lo, hi := ranges[i], ranges[i+1]
		if hi > maxSymbol {
			hi = maxSymbol
		}
		for r := lo; r <= hi; r++ {
			nodes = append(nodes, automaton.Terminal{Symbol: automaton.Symbol(r)})
		}
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: character class without ASCII members", ErrUnsupported)
	}
	return alternation(nodes), nil
}

func concat(nodes []automaton.Node) automaton.Node {
	if len(nodes) == 0 {
		return automaton.Empty{}
	}
	result := nodes[0]
	for _, n := range nodes[1:] {
		result = automaton.Concat{Left: result, Right: n}
	}
	return result
}

// alternation builds a balanced tree so that wide character classes
// do not nest deeply
func alternation(nodes []automaton.Node) automaton.Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	mid := len(nodes) / 2
	return automaton.Alternation{Left: alternation(nodes[:mid]), Right: alternation(nodes[mid:])}
}

// CompileNFA parses expr and builds its Thompson NFA.
func CompileNFA(expr string) (*automaton.NFA, error) {
	node, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return automaton.Build(node), nil
}

// Options configures Compile.
type Options struct {
	// MaxStates bounds the number of DFA states; 0 means
	// automaton.MaxStatesAutomaton.
	MaxStates int
	// DotDir, when not empty, receives a dot file for every stage.
	DotDir string
}

func writeDot(g *automaton.Graphviz, dir, name, title string) error {
	return g.WriteToFile(filepath.Join(dir, name+".dot"), name, title)
}

// Compile returns the minimal DFA of expr.
func Compile(expr string, opts Options) (*automaton.DFA, error) {
	maxStates := opts.MaxStates
	if maxStates == 0 {
		maxStates = automaton.MaxStatesAutomaton
	}
	dump := opts.DotDir != ""
	if dump {
		if err := os.MkdirAll(opts.DotDir, 0o755); err != nil {
			return nil, fmt.Errorf("%w::Compile", err)
		}
		log.Printf("6af9e7a9 going to write dot files to %v", opts.DotDir)
	}
	name := "fsa"

	nfa, err := CompileNFA(expr)
	if err != nil {
		return nil, err
	}
	if dump {
		name += "_nfa"
		if err := writeDot(nfa.Dot(Label), opts.DotDir, name, expr); err != nil {
			return nil, fmt.Errorf("%w::Compile", err)
		}
	}
	dfa, err := automaton.DeterminizeMax(nfa, maxStates)
	if err != nil {
		return nil, fmt.Errorf("%w::Compile", err)
	}
	if dump {
		name += "_dfa"
		if err := writeDot(dfa.Dot(Label), opts.DotDir, name, expr); err != nil {
			return nil, fmt.Errorf("%w::Compile", err)
		}
	}
	dfa.Minimize()
	if dump {
		name += "_min"
		if err := writeDot(dfa.Dot(Label), opts.DotDir, name, expr); err != nil {
			return nil, fmt.Errorf("%w::Compile", err)
		}
	}
	return dfa, nil
}
