// SPDX-License-Identifier: MIT
// Package matrix — canonical validation checks.
//
// Purpose:
//   - Single source of truth for the shape invariants of (matrix, vector)
//     pairs; callers delegate here instead of scattering guard logic.
//   - Validators return plain sentinels wrapped with a call-site tag, so
//     errors.Is still matches.
//
// All checks are pure, deterministic and allocation-free.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix when nil, ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVectorLength checks that v pairs with m: len(v) == m.Rows().
// Assumes m is already validated square; callers run ValidateSquare first.
// Errors: ErrVectorLength.
// Complexity: O(1).
func ValidateVectorLength(m *Dense, v Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if len(v) != m.Rows() {
		return matrixErrorf("ValidateVectorLength", ErrVectorLength)
	}

	return nil
}
