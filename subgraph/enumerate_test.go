// SPDX-License-Identifier: MIT
package subgraph_test

import (
	"errors"
	"testing"

	"github.com/kinetlab/kinet/core"
	"github.com/kinetlab/kinet/matrix"
	"github.com/kinetlab/kinet/subgraph"
	"github.com/stretchr/testify/require"
)

// TestEnumerate_TwoCycle walks the smallest interesting case by hand:
// the 0⇄1 cycle itself is the single valid subgraph, and both of its
// one-edge children reduce to the same all-zero state, so the memo
// table records exactly two distinct states and one hit.
func TestEnumerate_TwoCycle(t *testing.T) {
	t.Parallel()

	A := mustDense(t, [][]int64{
		{0, 1},
		{1, 0},
	})

	var stats subgraph.MemoStats
	results, err := subgraph.Enumerate(subgraph.FromMatrix(A), subgraph.WithMemoStats(&stats))
	require.NoError(t, err)

	require.Len(t, results, 1)
	require.True(t, results[0].Matrix.Equal(A))
	require.Equal(t, []int{0, 1}, results[0].Vertices)

	require.Equal(t, 2, stats.Distinct)
	require.Equal(t, 1, stats.Hits)
}

// TestEnumerate_PathYieldsNothing: an acyclic graph collapses in the very
// first reduction, so no state ever satisfies E > 1.
func TestEnumerate_PathYieldsNothing(t *testing.T) {
	t.Parallel()

	path := mustDense(t, [][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	})

	results, err := subgraph.Enumerate(subgraph.FromMatrix(path))
	require.NoError(t, err)
	require.Empty(t, results)
}

// TestEnumerate_ThreeCycleRequired: requiring a vertex keeps only the
// subgraphs that retain it. A simple 3-cycle offers nothing below itself,
// so exactly the full cycle survives.
func TestEnumerate_ThreeCycleRequired(t *testing.T) {
	t.Parallel()

	cycle := mustDense(t, [][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})

	results, err := subgraph.Enumerate(subgraph.FromMatrix(cycle), subgraph.WithRequired(0))
	require.NoError(t, err)

	require.Len(t, results, 1)
	require.True(t, results[0].Matrix.Equal(cycle))
	require.Equal(t, []int{0, 1, 2}, results[0].Vertices)
}

// TestEnumerate_ParallelEdges: a doubled edge is peeled one multiplicity at
// a time, exposing the intermediate simple cycle as its own result.
func TestEnumerate_ParallelEdges(t *testing.T) {
	t.Parallel()

	A := mustDense(t, [][]int64{
		{0, 2},
		{1, 0},
	})

	results, err := subgraph.Enumerate(subgraph.FromMatrix(A))
	require.NoError(t, err)

	require.Len(t, results, 2)
	require.True(t, results[0].Matrix.Equal(A), "the full multigraph comes first")
	require.True(t, results[1].Matrix.Equal(mustDense(t, [][]int64{
		{0, 1},
		{1, 0},
	})), "then the simple cycle left after one peel")
}

// TestEnumerate_EdgeBound: k is exclusive, so k=3 rejects the E=3 parent
// and keeps only its E=2 descendant.
func TestEnumerate_EdgeBound(t *testing.T) {
	t.Parallel()

	A := mustDense(t, [][]int64{
		{0, 2},
		{1, 0},
	})

	results, err := subgraph.Enumerate(subgraph.FromMatrix(A), subgraph.WithEdgeBound(3))
	require.NoError(t, err)

	require.Len(t, results, 1)
	require.EqualValues(t, 2, results[0].Matrix.Sum())
}

// TestEnumerate_ActiveVertices: deactivating a cycle vertex up front
// unravels the ring before any collection happens.
func TestEnumerate_ActiveVertices(t *testing.T) {
	t.Parallel()

	cycle := mustDense(t, [][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})

	results, err := subgraph.Enumerate(
		subgraph.FromMatrix(cycle),
		subgraph.WithActiveVertices(matrix.Vector{1, 1, 0}),
		subgraph.WithRequired(0),
	)
	require.NoError(t, err)
	require.Empty(t, results)
}

// TestEnumerate_GraphSource runs the search straight off a core.Graph and
// maps result indices back through the sorted vertex order.
func TestEnumerate_GraphSource(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "a"))

	results, err := subgraph.Enumerate(subgraph.FromGraph(g))
	require.NoError(t, err)

	require.Len(t, results, 1)
	require.Equal(t, []int{0, 1}, results[0].Vertices)
}

func TestEnumerate_EmptyMatrix(t *testing.T) {
	t.Parallel()

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)

	results, err := subgraph.Enumerate(subgraph.FromMatrix(empty))
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestEnumerate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("non-square", func(t *testing.T) {
		t.Parallel()
		rect, err := matrix.NewDense(2, 3)
		require.NoError(t, err)
		_, err = subgraph.Enumerate(subgraph.FromMatrix(rect))
		require.True(t, errors.Is(err, matrix.ErrNonSquare))
	})

	t.Run("required out of range", func(t *testing.T) {
		t.Parallel()
		A := mustDense(t, [][]int64{{0, 1}, {1, 0}})
		_, err := subgraph.Enumerate(subgraph.FromMatrix(A), subgraph.WithRequired(5))
		require.True(t, errors.Is(err, subgraph.ErrVertexIndex))
	})

	t.Run("nil source", func(t *testing.T) {
		t.Parallel()
		_, err := subgraph.Enumerate(nil)
		require.True(t, errors.Is(err, subgraph.ErrNilSource))
	})
}

// TestEnumerate_FreshMemoPerCall: two identical calls return identical
// results, proving exploration history does not leak between calls.
func TestEnumerate_FreshMemoPerCall(t *testing.T) {
	t.Parallel()

	A := mustDense(t, [][]int64{
		{0, 2},
		{1, 0},
	})

	first, err := subgraph.Enumerate(subgraph.FromMatrix(A))
	require.NoError(t, err)
	second, err := subgraph.Enumerate(subgraph.FromMatrix(A))
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.True(t, first[i].Matrix.Equal(second[i].Matrix))
		require.Equal(t, first[i].Vertices, second[i].Vertices)
	}
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { subgraph.WithActiveVertices(nil) })
	require.Panics(t, func() { subgraph.WithEdgeBound(0) })
	require.Panics(t, func() { subgraph.WithRequired(-1) })
	require.Panics(t, func() { subgraph.WithMemoStats(nil) })
}
