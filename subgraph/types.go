// SPDX-License-Identifier: MIT
// Package subgraph: domain types, input adapters, and functional options.
//
// Contract:
//   - DegreeMode is a closed two-variant choice; call sites switch
//     exhaustively and fail with ErrUnknownDegreeMode on anything else, so
//     adding a third mode is a compile-time-visible change.
//   - Source unifies the two accepted input forms (core.Graph, Dense
//     adjacency matrix) behind one normalization point; adapters never
//     expose caller-owned storage.
//   - Options follow the functional pattern: WithX constructors validate
//     and panic on programmer error (nil vector, nil stats sink), while
//     runtime data problems surface as errors from Enumerate.

package subgraph

import (
	"github.com/kinetlab/kinet/core"
	"github.com/kinetlab/kinet/matrix"
)

// DegreeMode selects which degree vector Degrees computes.
type DegreeMode int

const (
	// DegreeIn selects in-degrees: deg = A · verts.
	DegreeIn DegreeMode = iota

	// DegreeOut selects out-degrees: deg = vertsᵀ · A, as a column.
	DegreeOut
)

// String renders the mode for diagnostics.
func (m DegreeMode) String() string {
	switch m {
	case DegreeIn:
		return "in"
	case DegreeOut:
		return "out"
	default:
		return "unknown"
	}
}

// Source is a graph-or-matrix input to Normalize and Enumerate.
// Implementations hand out an independent adjacency copy, so the search can
// never alias caller-owned storage.
type Source interface {
	adjacencyDense() (*matrix.Dense, error)
}

// FromGraph adapts a core.Graph as an enumeration Source.
// The graph is snapshot into its adjacency matrix (ascending vertex-ID
// indexing) at Normalize time.
func FromGraph(g *core.Graph) Source { return graphSource{g: g} }

// FromMatrix adapts a Dense adjacency matrix as an enumeration Source.
// The matrix is cloned at Normalize time; the caller's copy is never
// mutated.
func FromMatrix(m *matrix.Dense) Source { return matrixSource{m: m} }

type graphSource struct{ g *core.Graph }

func (s graphSource) adjacencyDense() (*matrix.Dense, error) {
	dense, _, err := matrix.FromGraph(s.g)

	return dense, err
}

type matrixSource struct{ m *matrix.Dense }

func (s matrixSource) adjacencyDense() (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(s.m); err != nil {
		return nil, err
	}

	return s.m.Clone(), nil
}

// Result is one collected subgraph: the pruned adjacency matrix and the
// ascending original indices of the vertices it retains. Results are
// immutable once returned.
type Result struct {
	Matrix   *matrix.Dense
	Vertices []int
}

// MemoStats exposes memo-table instrumentation for one Enumerate call:
// Distinct counts first-visit states, Hits counts states that were reached
// again via a different edge-removal order and skipped.
type MemoStats struct {
	Distinct int
	Hits     int
}

// Option customizes one Enumerate call.
type Option func(*options)

// options is the resolved configuration; zero value = all defaults.
type options struct {
	verts    matrix.Vector // initial active vertices; nil → all ones
	bound    int64         // exclusive edge bound k; meaningful iff hasBound
	hasBound bool
	required []int      // vertex indices that must stay active
	stats    *MemoStats // optional instrumentation sink
}

// WithActiveVertices sets the initial active-vertex vector.
// Panics on nil (programmer error); length mismatches surface later as
// matrix.ErrVectorLength from Normalize.
func WithActiveVertices(v matrix.Vector) Option {
	if v == nil {
		panic("subgraph: WithActiveVertices(nil)")
	}

	return func(o *options) { o.verts = v }
}

// WithEdgeBound sets the exclusive upper bound k on collected edge counts
// (a subgraph is kept iff 1 < E < k). Unset, k defaults to the input's
// total edge count plus one, which collects everything up to and including
// the full graph. Panics when k < 1.
func WithEdgeBound(k int64) Option {
	if k < 1 {
		panic("subgraph: WithEdgeBound(k < 1)")
	}

	return func(o *options) {
		o.bound = k
		o.hasBound = true
	}
}

// WithRequired declares vertex indices that must remain active for a
// subgraph to be valid. Panics on a negative index; indices beyond the
// matrix dimension fail at runtime with ErrVertexIndex.
func WithRequired(verts ...int) Option {
	for _, v := range verts {
		if v < 0 {
			panic("subgraph: WithRequired(negative index)")
		}
	}

	return func(o *options) { o.required = append(o.required, verts...) }
}

// WithMemoStats attaches an instrumentation sink filled in during
// Enumerate. Panics on nil.
func WithMemoStats(s *MemoStats) Option {
	if s == nil {
		panic("subgraph: WithMemoStats(nil)")
	}

	return func(o *options) { o.stats = s }
}

// gatherOptions resolves option setters against defaults, in order.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
