// Package core defines the directed multigraph used throughout kinet.
//
// What:
//
//   - Graph stores string-identified vertices and directed edges with
//     integer multiplicities: adding the same (from, to) pair twice yields
//     a parallel-edge count of 2, not an error (unless multi-edges are
//     disabled). This mirrors the adjacency-matrix data model, where entry
//     (i, j) is the number of directed edges i→j.
//   - All mutation and query methods are safe for concurrent use; a single
//     RWMutex guards vertex and adjacency state.
//
// Why:
//
//   - The subgraph enumeration engine (package subgraph) treats parallel
//     edges as first-class: each removal step peels off one multiplicity.
//     Storing counts instead of per-edge records keeps conversion to and
//     from matrices exact and cheap.
//
// Errors:
//
//   - ErrEmptyVertexID: a vertex ID is the empty string.
//   - ErrVertexNotFound: an operation referenced a missing vertex.
//   - ErrEdgeNotFound: removal of an edge with zero multiplicity.
//   - ErrLoopNotAllowed: self-loop without WithLoops().
//   - ErrMultiEdgeNotAllowed: parallel edge after WithoutMultiEdges().
package core
