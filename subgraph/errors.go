// SPDX-License-Identifier: MIT
// Package subgraph: sentinel error set.
//
// Shape violations reuse the matrix package sentinels (ErrNonSquare,
// ErrVectorLength) so callers see one vocabulary for one invariant; this
// file adds only the conditions born in this package. Every error is fatal
// to the enumeration in progress — there is no retry or partial-result
// suppression anywhere in the search.

package subgraph

import "errors"

var (
	// ErrNilSource indicates a nil Source was passed to Normalize or Enumerate.
	ErrNilSource = errors.New("subgraph: nil source")

	// ErrUnknownDegreeMode indicates a DegreeMode outside the closed
	// {DegreeIn, DegreeOut} set.
	ErrUnknownDegreeMode = errors.New("subgraph: unknown degree mode")

	// ErrVertexIndex indicates a required vertex index outside [0, n).
	ErrVertexIndex = errors.New("subgraph: required vertex index out of range")
)
