// SPDX-License-Identifier: MIT
// Package matrix — Dense storage (row-major) and safe accessors.
//
// Purpose:
//   - Cache-friendly row-major int64 buffer with the explicit index formula
//     i*cols + j.
//   - Safety at the public surface: At/Set/Inc return errors, never panic.
//   - Deterministic iteration: NonZero scans row-major, no map ordering.
//   - Copy-based submatrix extraction (Submatrix) for pruning projections.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Inc: O(1); Clone/Equal/Sum: O(r*c);
//     NonZero: O(r*c); Submatrix: O(r'*c').

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is an ordered (Row, Col) coordinate of a nonzero entry.
type Position struct {
	Row, Col int
}

// Dense is a concrete row-major int64 matrix.
// r, c hold dimensions; data is a flat buffer of length r*c in row-major
// order (offset = i*c + j). Zero-sized shapes are legal: a fully pruned
// subgraph projects to a 0×0 matrix.
type Dense struct {
	r, c int     // row and column counts (>= 0)
	data []int64 // contiguous row-major storage, len == r*c
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Zero dimensions are permitted; negative dimensions return
// ErrInvalidDimensions.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equal-length rows.
// Handy for fixtures: FromRows([][]int64{{0, 1}, {1, 0}}).
// Returns ErrInvalidDimensions when rows are ragged.
// Complexity: O(r*c).
func FromRows(rows [][]int64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("FromRows", ErrInvalidDimensions)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or reports out-of-bounds.
func (m *Dense) indexOf(tag string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", tag, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Inc adds delta to the entry at (row, col). Negative deltas decrement;
// callers are responsible for keeping multiplicities non-negative.
// Complexity: O(1).
func (m *Dense) Inc(row, col int, delta int64) error {
	idx, err := m.indexOf("Inc", row, col)
	if err != nil {
		return err
	}
	m.data[idx] += delta

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports exact element-wise equality, including shape.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// Sum returns the total of all entries. For an adjacency matrix this is the
// edge count including multiplicities.
// Complexity: O(r*c).
func (m *Dense) Sum() int64 {
	var total int64
	for _, v := range m.data {
		total += v
	}

	return total
}

// NonZero returns the positions of all nonzero entries in row-major order.
// The stable order is what makes edge-removal branching deterministic.
// Complexity: O(r*c).
func (m *Dense) NonZero() []Position {
	var out []Position
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if m.data[base+j] != 0 {
				out = append(out, Position{Row: i, Col: j})
			}
		}
	}

	return out
}

// ZeroRowCol zeroes row i and column i in place.
// Used by the sink/source reducer to deactivate a vertex.
// Complexity: O(r + c).
func (m *Dense) ZeroRowCol(i int) error {
	if i < 0 || i >= m.r || i >= m.c {
		return fmt.Errorf("Dense.ZeroRowCol(%d): %w", i, ErrIndexOutOfBounds)
	}
	base := i * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] = 0
	}
	for r := 0; r < m.r; r++ {
		m.data[r*m.c+i] = 0
	}

	return nil
}

// Submatrix materializes the copy induced by the given row and column index
// lists, in the given order. Empty index lists are legal and produce
// zero-sized shapes.
// Returns ErrIndexOutOfBounds when any index is outside the matrix.
// Complexity: O(len(rows)*len(cols)).
func (m *Dense) Submatrix(rows, cols []int) (*Dense, error) {
	out, err := NewDense(len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	for oi, i := range rows {
		if i < 0 || i >= m.r {
			return nil, fmt.Errorf("Dense.Submatrix(row %d): %w", i, ErrIndexOutOfBounds)
		}
		for oj, j := range cols {
			if j < 0 || j >= m.c {
				return nil, fmt.Errorf("Dense.Submatrix(col %d): %w", j, ErrIndexOutOfBounds)
			}
			out.data[oi*out.c+oj] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// AppendKey appends an exact, unambiguous encoding of the matrix contents
// (shape plus every entry) to dst and returns the extended slice. Two
// matrices produce the same encoding iff they are Equal; memo tables key on
// this, deliberately without any isomorphism canonicalization.
// Complexity: O(r*c).
func (m *Dense) AppendKey(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(m.r), 10)
	dst = append(dst, 'x')
	dst = strconv.AppendInt(dst, int64(m.c), 10)
	for _, v := range m.data {
		dst = append(dst, ',')
		dst = strconv.AppendInt(dst, v, 10)
	}

	return dst
}

// String renders the matrix row per line for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		b.WriteString("]\n")
	}

	return b.String()
}
