// SPDX-License-Identifier: MIT
// builderConfig — the single source of truth for builder knobs, resolved
// once per BuildGraph call. Defaults are deterministic: decimal IDs, no RNG
// unless seeded.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is passed by value to constructors; callers cannot mutate a
// resolved configuration.
type builderConfig struct {
	idFn func(int) string // vertex ID strategy, index → ID
	rng  *rand.Rand       // nil means no randomness available
}

// newBuilderConfig applies options in order; later options override earlier
// ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: decimalID,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string: "0","1","2",...
func decimalID(i int) string {
	return strconv.Itoa(i)
}
