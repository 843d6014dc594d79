// SPDX-License-Identifier: MIT
// The core solver loop.
//
// Contract:
//   - One iteration: g ← subgradients(x) + λ + ρ·c, then x ← clip(x − η·g),
//     c ← Violation(x), λ ← λ + ρ·c. Convergence when |c| < tol.
//   - The violation driving the step is the one from the PREVIOUS
//     iteration; the multiplier update uses the fresh one. Reordering these
//     changes the trajectory.
//   - ρ grows by β when |c| fails to improve by at least tol/10; η decays
//     by γ after every non-converged iteration.
//
// Complexity: O(maxIter · n) function evaluations, O(maxIter · n) space for
// the history.

package subgrad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Step is one entry of the convergence history.
type Step struct {
	Iteration int
	X         []float64
	Violation float64
	Objective float64
}

// Result is the outcome of one descent.
type Result struct {
	X         []float64
	Objective float64
	Lambda    float64
	History   []Step
}

// Descend minimizes Σ fᵢ(xᵢ) over the clipped simplex. Without WithStart
// it begins at the uniform point (1/n, ..., 1/n).
func Descend(funcs []Func, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if len(funcs) == 0 {
		return Result{}, fmt.Errorf("Descend: %w", ErrNoFuncs)
	}
	if cfg.start != nil && len(cfg.start) != len(funcs) {
		return Result{}, fmt.Errorf("Descend: start has %d coordinates, objective has %d: %w",
			len(cfg.start), len(funcs), ErrDimension)
	}

	return descend(funcs, cfg), nil
}

// descend assumes a validated config; shared with the multi-start driver.
func descend(funcs []Func, cfg config) Result {
	n := len(funcs)

	x := make([]float64, n)
	if cfg.start != nil {
		copy(x, cfg.start)
	} else {
		for i := range x {
			x[i] = 1 / float64(n)
		}
	}

	var lambda float64
	rho := cfg.penalty
	eta := cfg.step
	history := make([]Step, 0, cfg.maxIter)
	c := Violation(x)

	for iter := 0; iter < cfg.maxIter; iter++ {
		grads := subgradients(x, funcs, cfg.argmax)
		floats.AddConst(lambda+rho*c, grads)

		floats.AddScaled(x, -eta, grads)
		clipUnit(x)

		c = Violation(x)
		lambda += rho * c

		snap := make([]float64, n)
		copy(snap, x)
		history = append(history, Step{
			Iteration: iter,
			X:         snap,
			Violation: c,
			Objective: Objective(x, funcs, cfg.argmax),
		})

		if math.Abs(c) < cfg.tol {
			break
		}

		if iter > 0 && math.Abs(history[len(history)-2].Violation)-math.Abs(c) < cfg.tol/10 {
			rho *= cfg.growth
		}
		eta *= cfg.decay
	}

	return Result{
		X:         x,
		Objective: Objective(x, funcs, cfg.argmax),
		Lambda:    lambda,
		History:   history,
	}
}

// clipUnit clamps every coordinate into [0,1] in place.
func clipUnit(x []float64) {
	for i, v := range x {
		x[i] = math.Min(1, math.Max(0, v))
	}
}
