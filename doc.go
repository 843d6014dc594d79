// SPDX-License-Identifier: MIT

// Package kinet is an in-memory toolkit for kinetic graph analysis:
// exhaustive subgraph enumeration over directed multigraphs, plus the
// supporting machinery around it.
//
// What lives where:
//
//	core/     — directed multigraph primitives (vertices, counted parallel edges)
//	matrix/   — integer adjacency matrices, active-vertex vectors, converters
//	subgraph/ — the enumeration engine: degree ops, sink/source reduction,
//	            pruning, and the memoized edge-removal search
//	builder/  — deterministic graph constructors (random G(n,m), cycles, paths)
//	subgrad/  — augmented-Lagrangian subgradient descent with multi-start
//	viz/      — Graphviz DOT emission for quick visual inspection
//	cmd/kinet — a small CLI gluing the pieces together
//
// The subgraph engine answers one question: which edge-induced subgraphs of
// a directed graph survive repeated sink/source elimination, keep a set of
// required vertices alive, and stay under an edge budget? The state space is
// exponential in the edge count; a memo table over exact (matrix, vertices)
// states keeps re-exploration in check.
//
// All randomness is explicit (seeded via options), all iteration orders are
// stable, and all user-facing failures are sentinel errors checked with
// errors.Is. Start with subgraph.Enumerate and builder.RandomDirectedGNM.
package kinet
