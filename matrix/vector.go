// SPDX-License-Identifier: MIT
// Package matrix — Vector: the int64 column vector paired with Dense.
//
// An active-vertex vector holds 0/1 flags (index i is 1 iff vertex i is
// active); degree vectors hold weighted degree sums. The pairing invariant
// (len(vector) == matrix dimension) is enforced by ValidateVectorLength at
// package boundaries, not silently here.

package matrix

import "strconv"

// Vector is an int64 column vector.
type Vector []int64

// Ones returns a vector of length n filled with 1 (all vertices active).
// Negative n returns ErrInvalidDimensions.
func Ones(n int) (Vector, error) {
	if n < 0 {
		return nil, matrixErrorf("Ones", ErrInvalidDimensions)
	}
	v := make(Vector, n)
	for i := range v {
		v[i] = 1
	}

	return v, nil
}

// Zeros returns a zero vector of length n (the inactive sentinel shape).
func Zeros(n int) (Vector, error) {
	if n < 0 {
		return nil, matrixErrorf("Zeros", ErrInvalidDimensions)
	}

	return make(Vector, n), nil
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)

	return c
}

// Equal reports exact element-wise equality, including length.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i, x := range v {
		if x != other[i] {
			return false
		}
	}

	return true
}

// CountNonZero returns the number of nonzero entries (active vertices for
// a 0/1 vector).
func (v Vector) CountNonZero() int {
	n := 0
	for _, x := range v {
		if x != 0 {
			n++
		}
	}

	return n
}

// NonZeroIndices returns the ascending indices of nonzero entries.
func (v Vector) NonZeroIndices() []int {
	out := make([]int, 0, len(v))
	for i, x := range v {
		if x != 0 {
			out = append(out, i)
		}
	}

	return out
}

// AppendKey appends an exact encoding of the vector contents to dst.
// Companion of Dense.AppendKey for memo-table state keys.
func (v Vector) AppendKey(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(len(v)), 10)
	for _, x := range v {
		dst = append(dst, ';')
		dst = strconv.AppendInt(dst, x, 10)
	}

	return dst
}
