// SPDX-License-Identifier: MIT
// Objective, constraint, and finite-difference building blocks.
//
// Contract:
//   - All helpers assume len(x) == len(funcs); Descend validates once at
//     its boundary so the hot loop stays check-free.
//   - argmax=true negates both the objective and the subgradient, turning
//     the minimizer into a maximizer without touching the update rule.

package subgrad

import "gonum.org/v1/gonum/floats"

// Func is a one-dimensional term of the separable objective.
type Func func(x float64) float64

// epsilon is the forward finite-difference offset.
const epsilon = 1e-6

// Objective computes Σ fᵢ(xᵢ), negated when argmax is set.
func Objective(x []float64, funcs []Func, argmax bool) float64 {
	var total float64
	for i, f := range funcs {
		total += f(x[i])
	}
	if argmax {
		return -total
	}

	return total
}

// Violation computes the equality-constraint violation c(x) = Σ xᵢ − 1.
func Violation(x []float64) float64 {
	return floats.Sum(x) - 1
}

// AugmentedLagrangian computes L(x) = f(x) + λ·c(x) + ½ρ·c(x)².
func AugmentedLagrangian(x []float64, funcs []Func, lambda, rho float64, argmax bool) float64 {
	c := Violation(x)

	return Objective(x, funcs, argmax) + lambda*c + 0.5*rho*c*c
}

// Subgradient estimates a subgradient of f at x by a forward finite
// difference, negated when argmax is set. For kinked functions this picks
// the right-hand element of the subdifferential.
func Subgradient(f Func, x float64, argmax bool) float64 {
	g := (f(x+epsilon) - f(x)) / epsilon
	if argmax {
		return -g
	}

	return g
}

// subgradients fills one Subgradient per coordinate.
func subgradients(x []float64, funcs []Func, argmax bool) []float64 {
	grads := make([]float64, len(funcs))
	for i, f := range funcs {
		grads[i] = Subgradient(f, x[i], argmax)
	}

	return grads
}
