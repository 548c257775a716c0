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

package automaton

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

// Graphviz collects the nodes and edges of an automaton for output in
// the dot language.
type Graphviz struct {
	nodes []string
	edges []string
}

func newGraphviz() *Graphviz {
	return &Graphviz{}
}

func (dot *Graphviz) addNode(id State, start, accept bool) {
	if accept {
		if start {
			dot.nodes = append(dot.nodes, fmt.Sprintf("\ts%v [shape=doubleoctagon]; #start; accept\n", int(id)))
		} else {
			dot.nodes = append(dot.nodes, fmt.Sprintf("\ts%v [shape=doublecircle]; #accept\n", int(id)))
		}
	} else {
		if start {
			dot.nodes = append(dot.nodes, fmt.Sprintf("\ts%v [shape=octagon]; #start\n", int(id)))
		} else {
			dot.nodes = append(dot.nodes, fmt.Sprintf("\ts%v [shape=ellipse];\n", int(id)))
		}
	}
}

func (dot *Graphviz) addEdge(from, to State, label string) {
	label = strings.ReplaceAll(label, `\`, `\\`)
	label = strings.ReplaceAll(label, `"`, `\"`)
	dot.edges = append(dot.edges, fmt.Sprintf("\ts%v -> s%v [label=\"%v\"];\n", int(from), int(to), label))
}

// DotContent writes the graph to dst.
func (dot *Graphviz) DotContent(dst io.Writer, graphName, graphTitle string) error {
	_, err := fmt.Fprintf(dst, "digraph %v {\n\trankdir=LR;\n", graphName)
	if err != nil {
		return err
	}
	slices.Sort(dot.nodes)
	for _, s := range dot.nodes {
		_, err := fmt.Fprint(dst, s)
		if err != nil {
			return err
		}
	}
	slices.Sort(dot.edges)
	for _, s := range dot.edges {
		_, err := fmt.Fprint(dst, s)
		if err != nil {
			return err
		}
	}
	graphTitle = strings.ReplaceAll(graphTitle, `\`, `\\`)
	graphTitle = strings.ReplaceAll(graphTitle, `"`, `\"`)
	_, err = fmt.Fprintf(dst, "\tlabelloc=\"t\";\n\tlabel=\"%v: %v\";\n}\n", graphName, graphTitle)
	return err
}

// WriteToFile writes the graph to a new file called filename.
func (dot *Graphviz) WriteToFile(filename, graphName, graphTitle string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := dot.DotContent(f, graphName, graphTitle); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Dot returns the graph of n. label renders edge symbols; when nil,
// Symbol.String is used.
func (n *NFA) Dot(label func(Symbol) string) *Graphviz {
	if label == nil {
		label = Symbol.String
	}
	result := newGraphviz()
	for from := range n.Next {
		id := State(from)
		result.addNode(id, n.Initials.Contains(id), n.Finals.Contains(id))
		for _, symbol := range n.Symbols(id) {
			for _, to := range n.Next[from][symbol] {
				result.addEdge(id, to, label(symbol))
			}
		}
	}
	return result
}

// Dot returns the graph of d. label renders edge symbols; when nil,
// Symbol.String is used.
func (d *DFA) Dot(label func(Symbol) string) *Graphviz {
	if label == nil {
		label = Symbol.String
	}
	result := newGraphviz()
	for from := range d.Next {
		id := State(from)
		result.addNode(id, id == d.Initial, d.Finals.Contains(id))
		for _, symbol := range d.Symbols(id) {
			result.addEdge(id, d.Next[from][symbol], label(symbol))
		}
	}
	return result
}
