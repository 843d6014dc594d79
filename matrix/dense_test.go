// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense and Vector primitives.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/kinetlab/kinet/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from row literals or fails the test.
func mustDense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestNewDense_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, c    int
		wantErr error
	}{
		{"3x3", 3, 3, nil},
		{"0x0 legal (pruned-empty shape)", 0, 0, nil},
		{"negative rows", -1, 2, matrix.ErrInvalidDimensions},
		{"negative cols", 2, -1, matrix.ErrInvalidDimensions},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.NewDense(tc.r, tc.c)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, tc.r, m.Rows())
				require.Equal(t, tc.c, m.Cols())
			} else {
				require.True(t, errors.Is(err, tc.wantErr))
			}
		})
	}
}

func TestFromRows_Ragged(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows([][]int64{{1, 2}, {3}})
	require.True(t, errors.Is(err, matrix.ErrInvalidDimensions))
}

func TestDense_AtSetInc_Bounds(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]int64{{0, 1}, {2, 0}})

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.EqualValues(t, 2, v)

	require.NoError(t, m.Set(0, 0, 7))
	require.NoError(t, m.Inc(0, 0, -3))
	v, _ = m.At(0, 0)
	require.EqualValues(t, 4, v)

	_, err = m.At(2, 0)
	require.True(t, errors.Is(err, matrix.ErrIndexOutOfBounds))
	require.True(t, errors.Is(m.Set(0, -1, 1), matrix.ErrIndexOutOfBounds))
	require.True(t, errors.Is(m.Inc(9, 9, 1), matrix.ErrIndexOutOfBounds))
}

func TestDense_CloneIndependence(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]int64{{1, 0}, {0, 1}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 5))

	v, _ := m.At(0, 1)
	require.EqualValues(t, 0, v, "mutating the clone must not touch the original")
	require.False(t, m.Equal(c))
	require.True(t, m.Equal(m.Clone()))
}

func TestDense_SumAndNonZeroOrder(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]int64{
		{0, 2, 0},
		{1, 0, 0},
		{0, 0, 3},
	})
	require.EqualValues(t, 6, m.Sum())

	// Row-major scan order is part of the contract (deterministic branching).
	require.Equal(t, []matrix.Position{
		{Row: 0, Col: 1},
		{Row: 1, Col: 0},
		{Row: 2, Col: 2},
	}, m.NonZero())
}

func TestDense_ZeroRowCol(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]int64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	require.NoError(t, m.ZeroRowCol(1))

	want := mustDense(t, [][]int64{
		{1, 0, 1},
		{0, 0, 0},
		{1, 0, 1},
	})
	require.True(t, m.Equal(want), "row 1 and column 1 zeroed:\n%v", m)

	require.True(t, errors.Is(m.ZeroRowCol(3), matrix.ErrIndexOutOfBounds))
}

func TestDense_Submatrix(t *testing.T) {
	t.Parallel()

	m := mustDense(t, [][]int64{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})

	sub, err := m.Submatrix([]int{0, 2}, []int{0, 2})
	require.NoError(t, err)
	require.True(t, sub.Equal(mustDense(t, [][]int64{{0, 2}, {6, 8}})))

	empty, err := m.Submatrix(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())

	_, err = m.Submatrix([]int{3}, []int{0})
	require.True(t, errors.Is(err, matrix.ErrIndexOutOfBounds))
}

func TestAppendKey_ExactEquality(t *testing.T) {
	t.Parallel()

	a := mustDense(t, [][]int64{{0, 1}, {1, 0}})
	b := mustDense(t, [][]int64{{0, 1}, {1, 0}})
	c := mustDense(t, [][]int64{{0, 1}, {0, 1}})

	require.Equal(t, string(a.AppendKey(nil)), string(b.AppendKey(nil)))
	require.NotEqual(t, string(a.AppendKey(nil)), string(c.AppendKey(nil)))

	// Shape participates in the key: [1,2] as 1x2 differs from 2x1.
	row := mustDense(t, [][]int64{{1, 2}})
	col := mustDense(t, [][]int64{{1}, {2}})
	require.NotEqual(t, string(row.AppendKey(nil)), string(col.AppendKey(nil)))

	v := matrix.Vector{1, 0, 1}
	w := matrix.Vector{1, 0, 1}
	require.Equal(t, string(v.AppendKey(nil)), string(w.AppendKey(nil)))
	require.NotEqual(t, string(v.AppendKey(nil)), string(matrix.Vector{1, 0}.AppendKey(nil)))
}

func TestVector_Helpers(t *testing.T) {
	t.Parallel()

	ones, err := matrix.Ones(3)
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{1, 1, 1}, ones)

	zeros, err := matrix.Zeros(2)
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{0, 0}, zeros)

	_, err = matrix.Ones(-1)
	require.True(t, errors.Is(err, matrix.ErrInvalidDimensions))

	v := matrix.Vector{0, 1, 0, 2}
	require.Equal(t, 2, v.CountNonZero())
	require.Equal(t, []int{1, 3}, v.NonZeroIndices())

	c := v.Clone()
	c[0] = 9
	require.EqualValues(t, 0, v[0])
	require.True(t, v.Equal(matrix.Vector{0, 1, 0, 2}))
	require.False(t, v.Equal(c))
}
