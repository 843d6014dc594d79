// SPDX-License-Identifier: MIT
// Package subgraph — sink/source elimination to a fixed point.
//
// Contract:
//   - A vertex stays active only if it was already active AND has nonzero
//     in-degree AND nonzero out-degree under the current matrix (plain
//     row/column sums; rows and columns of deactivated vertices are zeroed
//     before the next pass, which is what propagates deactivation).
//   - If any required vertex goes inactive the whole state is invalid: the
//     canonical empty sentinel (all-zero matrix, all-zero vector of the
//     same dimension) is returned immediately.
//   - The fixed point is reached when a zeroing pass changes nothing.
//     Termination: the active-vertex count is strictly decreasing across
//     iterations and bounded below by zero, so at most V passes run.
//   - One stabilization pass is not enough: deactivating a vertex can turn
//     its former neighbors into new sinks or sources.
//
// Complexity: O(V²) per pass, at most V passes → O(V³) worst case.
// Determinism: fixed ascending index order in every scan.

package subgraph

import (
	"fmt"

	"github.com/kinetlab/kinet/matrix"
)

// Reduce stabilizes (A, verts) under sink/source elimination and enforces
// the required-vertex constraint. verts may be nil (all vertices active).
// The inputs are never mutated; the returned pair is independently owned.
//
// Errors: shape sentinels from the matrix package, ErrVertexIndex when a
// required index is outside [0, n).
func Reduce(A *matrix.Dense, verts matrix.Vector, required []int) (*matrix.Dense, matrix.Vector, error) {
	cur, act, err := Normalize(FromMatrix(A), verts)
	if err != nil {
		return nil, nil, fmt.Errorf("Reduce: %w", err)
	}
	n := cur.Rows()

	for _, r := range required {
		if r < 0 || r >= n {
			return nil, nil, fmt.Errorf("Reduce(required=%d, n=%d): %w", r, n, ErrVertexIndex)
		}
	}

	for {
		// Degree sums of the current matrix (all-ones weighting: previously
		// deactivated vertices already have zeroed rows/columns).
		in, degErr := Degrees(cur, nil, DegreeIn)
		if degErr != nil {
			return nil, nil, fmt.Errorf("Reduce: %w", degErr)
		}
		out, degErr := Degrees(cur, nil, DegreeOut)
		if degErr != nil {
			return nil, nil, fmt.Errorf("Reduce: %w", degErr)
		}

		// Survive = previously active ∧ nonzero in ∧ nonzero out.
		next, _ := matrix.Zeros(n)
		for i := 0; i < n; i++ {
			if act[i] != 0 && in[i] != 0 && out[i] != 0 {
				next[i] = 1
			}
		}

		// Zero rows/columns of every now-inactive vertex.
		reduced := cur.Clone()
		for i := 0; i < n; i++ {
			if next[i] == 0 {
				_ = reduced.ZeroRowCol(i) // i < n by construction
			}
		}

		// A dead required vertex invalidates the whole state: collapse to
		// the canonical empty sentinel and stop reducing.
		for _, r := range required {
			if next[r] == 0 {
				empty, _ := matrix.NewDense(n, n)
				zeros, _ := matrix.Zeros(n)

				return empty, zeros, nil
			}
		}

		// Fixed point: the zeroing pass changed nothing.
		if reduced.Equal(cur) {
			return reduced, next, nil
		}

		cur, act = reduced, next
	}
}
