// Package matrix: converters between core.Graph and dense adjacency form.
//
// Vertex indexing is canonical and stable: row/column i corresponds to the
// i-th vertex in ascending ID order (core.Graph.Vertices). Multiplicities
// transfer exactly in both directions.

package matrix

import (
	"strconv"

	"github.com/kinetlab/kinet/core"
)

// FromGraph constructs the adjacency matrix of g together with the label
// slice mapping row/column index → vertex ID.
//
// Entry (i, j) equals the multiplicity of the directed edge labels[i]→labels[j].
//
// Time Complexity: O(V log V + V²).
// Memory: O(V²).
func FromGraph(g *core.Graph) (*Dense, []string, error) {
	if g == nil {
		return nil, nil, matrixErrorf("FromGraph", ErrGraphNil)
	}

	labels := g.Vertices()
	n := len(labels)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i, from := range labels {
		for j, to := range labels {
			if mult := g.Multiplicity(from, to); mult != 0 {
				// Set cannot fail: i, j are in range by construction.
				_ = m.Set(i, j, mult)
			}
		}
	}

	return m, labels, nil
}

// ToGraph constructs a core.Graph from an adjacency matrix.
//
// labels maps row/column index → vertex ID; pass nil to synthesize decimal
// labels "0", "1", ... Entry (i, j) becomes the multiplicity of the edge
// labels[i]→labels[j]; diagonal entries become self-loops.
//
// Errors: ErrNonSquare, ErrLabelCount, plus core sentinels on malformed
// labels (e.g. an empty string).
//
// Time Complexity: O(V² + E).
func ToGraph(m *Dense, labels []string) (*core.Graph, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	n := m.Rows()
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	} else if len(labels) != n {
		return nil, matrixErrorf("ToGraph", ErrLabelCount)
	}

	g := core.NewGraph(core.WithLoops())
	for _, id := range labels {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, p := range m.NonZero() {
		mult, _ := m.At(p.Row, p.Col)
		for k := int64(0); k < mult; k++ {
			if err := g.AddEdge(labels[p.Row], labels[p.Col]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
