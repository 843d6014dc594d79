// SPDX-License-Identifier: MIT
package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kinetlab/kinet/builder"
	"github.com/kinetlab/kinet/core"
	"github.com/kinetlab/kinet/matrix"
	"github.com/stretchr/testify/require"
)

func TestCycle_Topology(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4))
	require.NoError(t, err)

	require.Equal(t, 4, g.VertexCount())
	require.EqualValues(t, 4, g.EdgeCount())
	for i := 0; i < 4; i++ {
		u, v := fmt.Sprintf("%d", i), fmt.Sprintf("%d", (i+1)%4)
		require.EqualValues(t, 1, g.Multiplicity(u, v), "%s→%s", u, v)
		require.EqualValues(t, 0, g.Multiplicity(v, u), "no reverse edge %s→%s", v, u)
	}
}

func TestPath_Topology(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)

	require.Equal(t, 3, g.VertexCount())
	require.EqualValues(t, 2, g.EdgeCount())
	require.EqualValues(t, 1, g.Multiplicity("0", "1"))
	require.EqualValues(t, 1, g.Multiplicity("1", "2"))
	require.EqualValues(t, 0, g.Multiplicity("2", "0"))
}

func TestRandomDirectedGNM_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42)},
			builder.RandomDirectedGNM(6, 9))
		require.NoError(t, err)

		return g
	}

	a, b := build(), build()
	require.EqualValues(t, 9, a.EdgeCount())

	ma, _, err := matrix.FromGraph(a)
	require.NoError(t, err)
	mb, _, err := matrix.FromGraph(b)
	require.NoError(t, err)
	require.True(t, ma.Equal(mb), "identical seed must yield identical graphs")

	// Simple digraph invariants: no loops, no parallel edges.
	for i := 0; i < 6; i++ {
		d, atErr := ma.At(i, i)
		require.NoError(t, atErr)
		require.EqualValues(t, 0, d, "no self-loops")
	}
	for _, p := range ma.NonZero() {
		v, atErr := ma.At(p.Row, p.Col)
		require.NoError(t, atErr)
		require.EqualValues(t, 1, v, "no parallel edges")
	}
}

func TestRandomDirectedGNM_FullDensity(t *testing.T) {
	t.Parallel()

	// m = n(n−1) forces every ordered pair.
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomDirectedGNM(4, 12))
	require.NoError(t, err)
	require.EqualValues(t, 12, g.EdgeCount())
}

func TestBuildGraph_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bo   []builder.BuilderOption
		cons builder.Constructor
		want error
	}{
		{"cycle too small", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"path too small", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"gnm no vertices", []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomDirectedGNM(0, 0), builder.ErrTooFewVertices},
		{"gnm too many edges", []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomDirectedGNM(3, 7), builder.ErrTooManyEdges},
		{"gnm negative edges", []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomDirectedGNM(3, -1), builder.ErrTooManyEdges},
		{"gnm without rng", nil, builder.RandomDirectedGNM(3, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, tc.bo, tc.cons)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want),
				"expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

func TestWithIDScheme(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string {
			return fmt.Sprintf("v%02d", i)
		})},
		builder.Path(2))
	require.NoError(t, err)
	require.Equal(t, []string{"v00", "v01"}, g.Vertices())
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}
