// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Error policy (strict):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped at definition site; implementations attach
//     context with fmt.Errorf("Method: ...: %w", ErrX) at the call site.
//   - No panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a requested matrix or vector shape with a
	// negative dimension. Zero is legal: a fully pruned subgraph is 0×0.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	// Public indexers (At/Set/Inc) return this, they do not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare signals that a square matrix was required but the input
	// has Rows() != Cols().
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrVectorLength signals that a vector's length does not equal the
	// matrix dimension it is paired with.
	ErrVectorLength = errors.New("matrix: vector length mismatch")

	// ErrGraphNil indicates that a nil *core.Graph was passed to a converter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrLabelCount indicates ToGraph received a label slice whose length
	// does not match the matrix dimension.
	ErrLabelCount = errors.New("matrix: label count mismatch")
)

// matrixErrorf wraps a sentinel with uniform call-site context.
// Keep the tag equal to the exported method name for grep-ability.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
