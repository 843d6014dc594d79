// SPDX-License-Identifier: MIT
// Thin public entry point for the builder package. One orchestrator,
// BuildGraph, resolves options once and applies constructors in order;
// topology logic lives in impl_*.go.

package builder

import (
	"fmt"

	"github.com/kinetlab/kinet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors, and never panic at runtime.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// The first constructor error aborts construction; no partial cleanup is
// attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
