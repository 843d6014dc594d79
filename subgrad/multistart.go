// SPDX-License-Identifier: MIT
// Parallel multi-start driver.
//
// Contract:
//   - All initial points are drawn from cfg.rng sequentially, then the
//     descents run in parallel over worker ranges; descent itself never
//     touches the RNG, so results do not depend on goroutine scheduling.
//   - Initial points are uniform draws normalized to the simplex, so every
//     start already satisfies Σ xᵢ = 1.
//   - Best is the minimum by Result.Objective; ties keep the earliest
//     start, matching a sequential scan.

package subgrad

import (
	"fmt"

	"github.com/intel/forGoParallel/parallel"
	"gonum.org/v1/gonum/floats"
)

// DescendMultiStart runs starts independent descents from random simplex
// points and returns the best result alongside all of them. Requires an
// RNG via WithSeed or WithRand.
func DescendMultiStart(funcs []Func, starts int, opts ...Option) (Result, []Result, error) {
	cfg := newConfig(opts...)
	if len(funcs) == 0 {
		return Result{}, nil, fmt.Errorf("DescendMultiStart: %w", ErrNoFuncs)
	}
	if starts < 1 {
		return Result{}, nil, fmt.Errorf("DescendMultiStart: starts=%d: %w", starts, ErrTooFewStarts)
	}
	if cfg.rng == nil {
		return Result{}, nil, fmt.Errorf("DescendMultiStart: %w", ErrNeedRandSource)
	}

	n := len(funcs)

	// Sequential draws keep the outcome a pure function of the seed.
	inits := make([][]float64, starts)
	for s := range inits {
		x := make([]float64, n)
		for i := range x {
			x[i] = cfg.rng.Float64()
		}
		if sum := floats.Sum(x); sum > 0 {
			floats.Scale(1/sum, x)
		}
		inits[s] = x
	}

	results := make([]Result, starts)
	parallel.Range(0, starts, 0, func(low, high int) {
		for i := low; i < high; i++ {
			run := cfg
			run.start = inits[i]
			results[i] = descend(funcs, run)
		}
	})

	best := 0
	for i := 1; i < starts; i++ {
		if results[i].Objective < results[best].Objective {
			best = i
		}
	}

	return results[best], results, nil
}
