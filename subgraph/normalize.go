// SPDX-License-Identifier: MIT
// Package subgraph — input normalization (the dimension/type validator).
//
// Contract:
//   - Accepts a graph-or-matrix Source plus an optional active-vertex
//     vector; returns a validated, independently owned (Dense, Vector)
//     pair.
//   - Matrix must be square (matrix.ErrNonSquare otherwise).
//   - A nil vector synthesizes all-ones; a supplied vector must match the
//     matrix dimension (matrix.ErrVectorLength otherwise).
//   - Pure: never mutates caller-owned inputs; both outputs are copies.

package subgraph

import (
	"fmt"

	"github.com/kinetlab/kinet/matrix"
)

// Normalize resolves src and verts into a validated adjacency matrix and
// active-vertex vector. See the file contract for error semantics.
// Complexity: O(V²) for the adjacency copy.
func Normalize(src Source, verts matrix.Vector) (*matrix.Dense, matrix.Vector, error) {
	if src == nil {
		return nil, nil, fmt.Errorf("Normalize: %w", ErrNilSource)
	}

	A, err := src.adjacencyDense()
	if err != nil {
		return nil, nil, fmt.Errorf("Normalize: %w", err)
	}
	if err = matrix.ValidateSquare(A); err != nil {
		return nil, nil, fmt.Errorf("Normalize: %w", err)
	}

	if verts == nil {
		ones, onesErr := matrix.Ones(A.Rows())
		if onesErr != nil {
			return nil, nil, fmt.Errorf("Normalize: %w", onesErr)
		}

		return A, ones, nil
	}

	if err = matrix.ValidateVectorLength(A, verts); err != nil {
		return nil, nil, fmt.Errorf("Normalize: %w", err)
	}

	return A, verts.Clone(), nil
}
