// SPDX-License-Identifier: MIT
// builder sentinels. Callers branch with errors.Is; constructors attach
// context with %w and never panic at runtime.

package builder

import "errors"

// ErrTooFewVertices reports a vertex count below the constructor's minimum
// (Cycle needs n ≥ 3, Path n ≥ 2, RandomDirectedGNM n ≥ 1).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyEdges reports an edge budget that cannot fit: a simple directed
// graph on n vertices holds at most n·(n−1) edges.
var ErrTooManyEdges = errors.New("builder: edge count exceeds capacity")

// ErrNeedRandSource reports a stochastic constructor invoked without an RNG;
// set one via WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed reports an orchestration failure, e.g. a nil
// constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
