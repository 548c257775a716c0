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

package main

import (
	"flag"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const usagePlaceholder = "__usage__"

// the initial flag.CommandLine.Usage value
var flagDefaultUsage func()

// PrintOrderedHelp prints the help of every flag named in order; any
// other entry of order is printed as a section header.
func PrintOrderedHelp(order []string) {
	writeOrderedHelp(flag.CommandLine.Output(), captureDefaultHelp(flag.CommandLine, flagDefaultUsage), order)
}

func writeOrderedHelp(w io.Writer, helptext map[string]string, order []string) {
	for _, text := range order {
		msg, ok := helptext[text]
		if ok {
			fmt.Fprint(w, msg)
			delete(helptext, text)
		} else {
			fmt.Fprintln(w, "")
			fmt.Fprintln(w, text)
		}
	}

	if len(helptext) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Uncategorized")
		names := maps.Keys(helptext)
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprint(w, helptext[name])
		}
	}
}

func captureDefaultHelp(fs *flag.FlagSet, usage func()) map[string]string {
	// We depend on the flag implementation:
	// flag calls Write once for each help item.
	var flagcapture flagCapture
	old := fs.Output()
	fs.SetOutput(&flagcapture)
	usage()
	fs.SetOutput(old)

	// map: flag name => rendered help text
	helptext := make(map[string]string)
	helptext[usagePlaceholder] = flagcapture.items[0]
	index := 1
	fs.VisitAll(func(f *flag.Flag) {
		helptext[f.Name] = flagcapture.items[index]
		index++
	})

	return helptext
}

// --------------------------------------------------

type flagCapture struct {
	items []string
}

func (fc *flagCapture) Write(p []byte) (int, error) {
	fc.items = append(fc.items, string(p))
	return len(p), nil
}
