// SPDX-License-Identifier: MIT
// Package subgraph — weighted degree computation.
//
// Contract:
//   - Degrees reports degree sums under the given weighting; it never
//     deactivates vertices itself. An inactive neighbor still contributes
//     when the matrix entry referencing it is nonzero and the weighting
//     says so — this is a weighted degree, not a strict active-neighbor
//     count.
//   - verts == nil means the all-ones weighting (plain row/column sums).
//   - Unrecognized modes fail with ErrUnknownDegreeMode.
//
// Complexity: O(V²) time, O(V) space.

package subgraph

import (
	"fmt"

	"github.com/kinetlab/kinet/matrix"
)

// Degrees computes the in- or out-degree vector of A under the weighting
// verts: in-degree = A · verts, out-degree = vertsᵀ · A (as a column).
func Degrees(A *matrix.Dense, verts matrix.Vector, mode DegreeMode) (matrix.Vector, error) {
	if err := matrix.ValidateSquare(A); err != nil {
		return nil, fmt.Errorf("Degrees: %w", err)
	}
	n := A.Rows()
	if verts == nil {
		ones, err := matrix.Ones(n)
		if err != nil {
			return nil, fmt.Errorf("Degrees: %w", err)
		}
		verts = ones
	} else if err := matrix.ValidateVectorLength(A, verts); err != nil {
		return nil, fmt.Errorf("Degrees: %w", err)
	}

	deg, err := matrix.Zeros(n)
	if err != nil {
		return nil, fmt.Errorf("Degrees: %w", err)
	}

	switch mode {
	case DegreeIn:
		// deg[i] = Σ_j A[i][j] · verts[j]
		for i := 0; i < n; i++ {
			var sum int64
			for j := 0; j < n; j++ {
				v, _ := A.At(i, j)
				sum += v * verts[j]
			}
			deg[i] = sum
		}
	case DegreeOut:
		// deg[j] = Σ_i verts[i] · A[i][j]
		for j := 0; j < n; j++ {
			var sum int64
			for i := 0; i < n; i++ {
				v, _ := A.At(i, j)
				sum += verts[i] * v
			}
			deg[j] = sum
		}
	default:
		return nil, fmt.Errorf("Degrees(mode=%d): %w", int(mode), ErrUnknownDegreeMode)
	}

	return deg, nil
}

// InDegrees is shorthand for Degrees(A, verts, DegreeIn).
func InDegrees(A *matrix.Dense, verts matrix.Vector) (matrix.Vector, error) {
	return Degrees(A, verts, DegreeIn)
}

// OutDegrees is shorthand for Degrees(A, verts, DegreeOut).
func OutDegrees(A *matrix.Dense, verts matrix.Vector) (matrix.Vector, error) {
	return Degrees(A, verts, DegreeOut)
}
