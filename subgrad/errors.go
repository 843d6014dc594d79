// SPDX-License-Identifier: MIT

package subgrad

import "errors"

// ErrNoFuncs reports an empty objective: there is one fᵢ per coordinate,
// so zero functions means zero dimensions.
var ErrNoFuncs = errors.New("subgrad: empty objective")

// ErrDimension reports a starting vector whose length differs from the
// number of objective functions.
var ErrDimension = errors.New("subgrad: start vector length mismatch")

// ErrTooFewStarts reports a non-positive start count for the multi-start
// driver.
var ErrTooFewStarts = errors.New("subgrad: starts must be positive")

// ErrNeedRandSource reports a stochastic entry point invoked without an
// RNG; set one via WithSeed or WithRand.
var ErrNeedRandSource = errors.New("subgrad: rng is required")
