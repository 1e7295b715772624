package ahocorasick

import (
	"fmt"
	"io"
)

// DumpDOT writes a Graphviz DOT description of the trie/automaton to w:
// solid edges for goto transitions, dashed edges for fail links, and
// terminal nodes drawn as doubly-bordered. This is a diagnostic aid only
// (no spec operation depends on it), modeled on pyahocorasick's
// dump2dot.py.
func (a *automaton) DumpDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph automaton {"); err != nil {
		return err
	}

	for i := range a.nodes {
		if a.nodes[i].free {
			continue
		}
		idx := nodeIndex(i)
		n := &a.nodes[i]

		shape := "circle"
		if n.terminal {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "  n%d [shape=%s];\n", idx, shape); err != nil {
			return err
		}

		syms := make([]int32, 0, len(n.edges))
		for s := range n.edges {
			syms = append(syms, s)
		}
		sortInt32s(syms)
		for _, s := range syms {
			if _, err := fmt.Fprintf(w, "  n%d -> n%d [label=%q];\n", idx, n.edges[s], string(rune(s))); err != nil {
				return err
			}
		}

		if a.phase == AHOCORASICK && idx != rootIndex {
			if _, err := fmt.Fprintf(w, "  n%d -> n%d [style=dashed, color=gray];\n", idx, n.fail); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
