// SPDX-License-Identifier: MIT
package subgraph_test

import (
	"testing"

	"github.com/kinetlab/kinet/matrix"
	"github.com/kinetlab/kinet/subgraph"
	"github.com/stretchr/testify/require"
)

// TestPrune_Projection verifies row/column selection and the retained
// ascending index list.
func TestPrune_Projection(t *testing.T) {
	t.Parallel()

	A := mustDense(t, [][]int64{
		{0, 1, 2},
		{3, 0, 4},
		{5, 6, 0},
	})

	pruned, retained, err := subgraph.Prune(A, matrix.Vector{1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, retained)
	require.True(t, pruned.Equal(mustDense(t, [][]int64{
		{0, 2},
		{5, 0},
	})))
}

// TestPrune_IdempotentOnFullyActive: pruning an already-pruned matrix with
// all vertices active is a no-op (spec round-trip property).
func TestPrune_IdempotentOnFullyActive(t *testing.T) {
	t.Parallel()

	A := mustDense(t, [][]int64{
		{0, 1, 0},
		{1, 0, 2},
		{0, 1, 0},
	})

	pruned, retained, err := subgraph.Prune(A, matrix.Vector{0, 1, 1})
	require.NoError(t, err)

	again, retainedAgain, err := subgraph.Prune(pruned, nil)
	require.NoError(t, err)
	require.True(t, again.Equal(pruned))
	require.Equal(t, []int{0, 1}, retainedAgain)
	require.Equal(t, []int{1, 2}, retained)
}

// TestPrune_AllInactive produces the legal 0×0 shape.
func TestPrune_AllInactive(t *testing.T) {
	t.Parallel()

	A := mustDense(t, [][]int64{{0, 1}, {1, 0}})

	pruned, retained, err := subgraph.Prune(A, matrix.Vector{0, 0})
	require.NoError(t, err)
	require.Equal(t, 0, pruned.Rows())
	require.Empty(t, retained)
}
