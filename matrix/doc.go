// Package matrix provides integer dense matrices and active-vertex vectors
// for adjacency-based graph computations, plus converters to and from
// core.Graph.
//
// What:
//
//   - Dense: row-major int64 matrix; entry (i, j) of an adjacency matrix is
//     the multiplicity of the directed edge i→j.
//   - Vector: int64 column vector; an active-vertex vector holds 0/1 flags,
//     a degree vector holds weighted degree sums.
//   - Validators: ValidateSquare, ValidateVectorLength — the single source
//     of truth for the shape invariants every (matrix, vector) pair must
//     satisfy at package boundaries.
//   - FromGraph / ToGraph: exact conversion between a core.Graph and its
//     adjacency matrix, preserving multiplicities, with vertices indexed in
//     ascending ID order.
//
// Matrices are best for the dense, small graphs the subgraph engine works
// on, where O(V²) memory and O(1) entry access are the right trade.
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a negative dimension.
//   - ErrIndexOutOfBounds: row or column index outside the matrix.
//   - ErrNonSquare: a square matrix was required but not supplied.
//   - ErrVectorLength: vector length does not match the matrix dimension.
//   - ErrGraphNil: a nil *core.Graph was passed to a converter.
package matrix
