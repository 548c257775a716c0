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

// Command fsa compiles a regular expression into a DFA and matches
// strings against it, prints its graph or lists strings it accepts.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/softsilverwind/fsa/automaton"
	"github.com/softsilverwind/fsa/regex"
)

var (
	dashe string
	dashm bool
	dashr bool
	dashg bool
	dashn int
	dashs int
	dashd string
	dasho string
	dasht bool

	dst io.WriteCloser
)

func init() {
	flag.StringVar(&dashe, "e", "", "regular expression to compile")
	flag.BoolVar(&dashm, "m", true, "minimize the DFA")
	flag.BoolVar(&dashr, "r", false, "use the DFA of the reversed language")
	flag.BoolVar(&dashg, "g", false, "just dump the DFA graphviz; do not match")
	flag.IntVar(&dashn, "n", 0, "print up to n strings accepted by the DFA")
	flag.IntVar(&dashs, "s", automaton.MaxStatesAutomaton, "maximum number of DFA states")
	flag.StringVar(&dashd, "d", "", "directory receiving a dot file for every compilation stage")
	flag.StringVar(&dasho, "o", "", "file for output (default is stdout)")
	flag.BoolVar(&dasht, "t", false, "print compilation time on stderr")

	flagDefaultUsage = flag.Usage
	flag.Usage = func() {
		PrintOrderedHelp([]string{
			usagePlaceholder,
			"Expression",
			"e", "s", "m", "r", "d",
			"Output",
			"g", "n", "o", "t",
		})
	}
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func build() (*automaton.DFA, error) {
	node, err := regex.Parse(dashe)
	if err != nil {
		return nil, err
	}
	if dashd != "" {
		if err := os.MkdirAll(dashd, 0o755); err != nil {
			return nil, err
		}
		log.Printf("6af9e7a9 going to write dot files to %v", dashd)
	}
	stages := []struct {
		name string
		run  func(*automaton.DFA) (*automaton.DFA, error)
	}{
		{"min", func(d *automaton.DFA) (*automaton.DFA, error) { return automaton.Minimize(d), nil }},
		{"rev", func(d *automaton.DFA) (*automaton.DFA, error) {
			return automaton.DeterminizeMax(automaton.Reverse(d), dashs)
		}},
		{"revmin", func(d *automaton.DFA) (*automaton.DFA, error) { return automaton.Minimize(d), nil }},
	}

	nfa := automaton.Build(node)
	name := "fsa_nfa"
	if err := dump(nfa.Dot(regex.Label), name); err != nil {
		return nil, err
	}
	dfa, err := automaton.DeterminizeMax(nfa, dashs)
	if err != nil {
		return nil, err
	}
	name = "fsa_dfa"
	if err := dump(dfa.Dot(regex.Label), name); err != nil {
		return nil, err
	}
	for _, stage := range stages {
		if !dashm && (stage.name == "min" || stage.name == "revmin") {
			continue
		}
		if !dashr && (stage.name == "rev" || stage.name == "revmin") {
			continue
		}
		if dfa, err = stage.run(dfa); err != nil {
			return nil, err
		}
		name += "_" + stage.name
		if err := dump(dfa.Dot(regex.Label), name); err != nil {
			return nil, err
		}
	}
	return dfa, nil
}

func dump(g *automaton.Graphviz, name string) error {
	if dashd == "" {
		return nil
	}
	return g.WriteToFile(dashd+string(os.PathSeparator)+name+".dot", name, dashe)
}

func generate(dfa *automaton.DFA) error {
	var err error
	count := 0
	dfa.Generate(func(symbols []automaton.Symbol) bool {
		_, err = fmt.Fprintln(dst, strconv.Quote(regex.String(symbols)))
		count++
		return err == nil && count < dashn
	})
	return err
}

func match(dfa *automaton.DFA, args []string) error {
	for _, arg := range args {
		symbols := regex.Symbols(arg)
		if dashr {
			for l, r := 0, len(symbols)-1; l < r; l, r = l+1, r-1 {
				symbols[l], symbols[r] = symbols[r], symbols[l]
			}
		}
		verdict := "no match"
		if dfa.Matches(symbols) {
			verdict = "match"
		}
		if _, err := fmt.Fprintf(dst, "%s\t%s\n", strconv.Quote(arg), verdict); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	flag.Parse()
	if dashe == "" {
		flag.Usage()
		os.Exit(1)
	}
	dst = os.Stdout
	if dasho != "" {
		f, err := os.Create(dasho)
		if err != nil {
			exit(err)
		}
		dst = f
	}
	defer dst.Close()

	startTime := time.Now()
	dfa, err := build()
	if err != nil {
		exit(err)
	}
	if dasht {
		fmt.Fprintf(os.Stderr, "compiled %d states in %v\n", dfa.NumStates(), time.Since(startTime))
	}

	if dashg {
		// -g -> just Graphviz
		if err := dfa.Dot(regex.Label).DotContent(dst, "fsa", dashe); err != nil {
			exit(err)
		}
		return
	}
	if dashn > 0 {
		if err := generate(dfa); err != nil {
			exit(err)
		}
	}
	if err := match(dfa, flag.Args()); err != nil {
		exit(err)
	}
}
