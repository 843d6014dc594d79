// SPDX-License-Identifier: MIT

package viz

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/kinetlab/kinet/core"
)

// ErrNilGraph reports a nil graph handed to WriteDOT.
var ErrNilGraph = errors.New("viz: nil graph")

// WriteDOT writes g to w in Graphviz DOT syntax. Every vertex gets a node
// line even when isolated; edges follow in sorted (from, to) order, one
// line per multiplicity unit.
func WriteDOT(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteDOT: %w", ErrNilGraph)
	}

	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	ids := g.Vertices()
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "\t%q;\n", id); err != nil {
			return fmt.Errorf("WriteDOT: %w", err)
		}
	}

	for _, from := range ids {
		// Collect and sort targets for a stable edge order.
		targets := make([]string, 0, len(ids))
		for _, to := range ids {
			if g.Multiplicity(from, to) > 0 {
				targets = append(targets, to)
			}
		}
		sort.Strings(targets)

		for _, to := range targets {
			for m := g.Multiplicity(from, to); m > 0; m-- {
				if _, err := fmt.Fprintf(w, "\t%q -> %q;\n", from, to); err != nil {
					return fmt.Errorf("WriteDOT: %w", err)
				}
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	return nil
}
