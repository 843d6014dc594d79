// SPDX-License-Identifier: MIT
// Package subgraph — projection onto active vertices.
//
// Contract:
//   - Prune selects the active rows/columns of A (the selectionᵀ·A·selection
//     projection, realized as a direct submatrix copy) and reports the
//     ascending original indices that survive.
//   - Shape violations are the only error condition; inputs coming from
//     Reduce are well-formed by construction.
//
// Complexity: O(m²) for m active vertices.

package subgraph

import (
	"fmt"

	"github.com/kinetlab/kinet/matrix"
)

// Prune compacts (A, verts) down to only the active vertices, returning the
// m×m pruned matrix and the retained original indices in ascending order.
// verts may be nil (all vertices retained). Inputs are never mutated.
func Prune(A *matrix.Dense, verts matrix.Vector) (*matrix.Dense, []int, error) {
	norm, act, err := Normalize(FromMatrix(A), verts)
	if err != nil {
		return nil, nil, fmt.Errorf("Prune: %w", err)
	}

	retained := act.NonZeroIndices()
	pruned, err := norm.Submatrix(retained, retained)
	if err != nil {
		return nil, nil, fmt.Errorf("Prune: %w", err)
	}

	return pruned, retained, nil
}
