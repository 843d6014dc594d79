// SPDX-License-Identifier: MIT

// Package subgrad implements projected subgradient descent on an augmented
// Lagrangian, for separable objectives over the probability simplex.
//
// What:
//   - The objective is a sum Σ fᵢ(xᵢ) of one-dimensional functions, one per
//     coordinate, subject to the single equality constraint Σ xᵢ = 1 with
//     xᵢ clipped to [0,1].
//   - Descend runs the iteration: estimate per-coordinate subgradients by
//     forward finite differences, add the Lagrangian term λ + ρ·c(x), step
//     against it, clip, then update the multiplier λ ← λ + ρ·c(x).
//   - The penalty ρ grows by β whenever the violation stalls, and the step
//     size η decays by γ every iteration, so late iterations trade progress
//     on the objective for constraint feasibility.
//   - DescendMultiStart runs many descents from random simplex points in
//     parallel and keeps the best by objective value.
//
// Why:
//   - Subgradients (not gradients) make the method safe for kinked
//     objectives such as |x|; finite differences keep the API down to plain
//     func(float64) float64 with no derivative bookkeeping.
//
// Determinism:
//   - Descend is fully deterministic. DescendMultiStart draws every initial
//     point from the single configured RNG before any parallel work starts,
//     so a fixed seed fixes the outcome regardless of scheduling.
//
// Errors: ErrNoFuncs, ErrDimension, ErrTooFewStarts, ErrNeedRandSource.
// Branch with errors.Is.
package subgrad
