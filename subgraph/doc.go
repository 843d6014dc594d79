// Package subgraph enumerates the edge-induced subgraphs of a directed
// multigraph that survive sink/source elimination, keep a set of required
// vertices active, and stay under an exclusive edge budget.
//
// What:
//
//   - Degrees: weighted in-/out-degree vectors of an adjacency matrix
//     under an active-vertex weighting.
//   - Normalize: resolve a graph-or-matrix Source plus an optional
//     active-vertex vector into a validated (Dense, Vector) pair.
//   - Reduce: iteratively deactivate vertices with zero in- or out-degree
//     until a fixed point, short-circuiting to the all-zero sentinel state
//     when a required vertex dies.
//   - Prune: project a (matrix, vertices) pair down to its active rows and
//     columns, keeping the original indices.
//   - Enumerate: the recursive search — remove one edge multiplicity at a
//     time, reduce, deduplicate states through a memo table, and collect
//     every pruned subgraph whose edge count E satisfies 1 < E < k.
//
// Why:
//
//   - In kinetic models a subnetwork is only meaningful when no vertex is a
//     pure source or pure sink; Enumerate finds every such subnetwork of a
//     reaction graph, optionally anchored on required species.
//
// State identity:
//
//   - The memo table keys on the exact contents of the reduced
//     (matrix, vertices) pair. Two structurally isomorphic states with
//     different index labelings are distinct on purpose; switching to
//     isomorphism-based deduplication would change the reported results.
//
// Complexity:
//
//   - Worst case exponential in the edge count (the search is exhaustive);
//     the memo table collapses the many removal orders that reach the same
//     reduced state. Reduce: O(V²) per pass, ≤ V passes.
//
// Errors:
//
//   - ErrNilSource: Enumerate/Normalize received a nil Source.
//   - ErrUnknownDegreeMode: degree mode outside {DegreeIn, DegreeOut}.
//   - ErrVertexIndex: a required vertex index outside the matrix dimension.
//   - matrix.ErrNonSquare / matrix.ErrVectorLength: shape violations;
//     any of these aborts the whole enumeration (no retries).
package subgraph
