// SPDX-License-Identifier: MIT
// Functional options for Descend and DescendMultiStart. Option constructors
// validate and panic on meaningless inputs; the solvers themselves return
// sentinel errors only.

package subgrad

import "math/rand"

// Defaults, chosen so the vanilla call converges on small well-scaled
// problems without tuning.
const (
	defaultMaxIter = 1000
	defaultTol     = 1e-6
	defaultStep    = 0.01 // initial η
	defaultPenalty = 1.0  // initial ρ
	defaultGrowth  = 1.5  // β, penalty multiplier on stall
	defaultDecay   = 0.9  // γ, per-iteration step multiplier
)

type config struct {
	start   []float64 // nil means uniform 1/n
	maxIter int
	tol     float64
	step    float64
	penalty float64
	growth  float64
	decay   float64
	argmax  bool
	rng     *rand.Rand // multi-start only
}

// Option customizes a solver run.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		maxIter: defaultMaxIter,
		tol:     defaultTol,
		step:    defaultStep,
		penalty: defaultPenalty,
		growth:  defaultGrowth,
		decay:   defaultDecay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStart sets the initial point. The slice is copied; its length is
// checked against the objective at the solver boundary. Panics on empty.
func WithStart(x []float64) Option {
	if len(x) == 0 {
		panic("subgrad: WithStart(empty)")
	}
	cp := make([]float64, len(x))
	copy(cp, x)

	return func(c *config) {
		c.start = cp
	}
}

// WithMaxIter bounds the iteration count. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic("subgrad: WithMaxIter(n<1)")
	}

	return func(c *config) {
		c.maxIter = n
	}
}

// WithTol sets the convergence tolerance on |c(x)|. Panics if tol <= 0.
func WithTol(tol float64) Option {
	if tol <= 0 {
		panic("subgrad: WithTol(tol<=0)")
	}

	return func(c *config) {
		c.tol = tol
	}
}

// WithStep sets the initial step size η₀. Panics if eta <= 0.
func WithStep(eta float64) Option {
	if eta <= 0 {
		panic("subgrad: WithStep(eta<=0)")
	}

	return func(c *config) {
		c.step = eta
	}
}

// WithPenalty sets the initial penalty ρ₀. Panics if rho <= 0.
func WithPenalty(rho float64) Option {
	if rho <= 0 {
		panic("subgrad: WithPenalty(rho<=0)")
	}

	return func(c *config) {
		c.penalty = rho
	}
}

// WithPenaltyGrowth sets the stall multiplier β. Panics if beta <= 1.
func WithPenaltyGrowth(beta float64) Option {
	if beta <= 1 {
		panic("subgrad: WithPenaltyGrowth(beta<=1)")
	}

	return func(c *config) {
		c.growth = beta
	}
}

// WithStepDecay sets the per-iteration step multiplier γ. Panics unless
// 0 < gamma <= 1.
func WithStepDecay(gamma float64) Option {
	if gamma <= 0 || gamma > 1 {
		panic("subgrad: WithStepDecay(gamma out of (0,1])")
	}

	return func(c *config) {
		c.decay = gamma
	}
}

// WithArgmax flips the solver into maximization mode.
func WithArgmax() Option {
	return func(c *config) {
		c.argmax = true
	}
}

// WithRand provides an explicit RNG for DescendMultiStart. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("subgrad: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG for DescendMultiStart.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
