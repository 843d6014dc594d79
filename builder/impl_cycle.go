// SPDX-License-Identifier: MIT
// Cycle(n) — the n-vertex directed ring. The smallest input whose
// enumeration is nonempty, and the canonical stability fixture: a ring has
// no sinks or sources.

package builder

import (
	"fmt"

	"github.com/kinetlab/kinet/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed cycle C_n:
// edges i → (i+1) mod n for i in 0..n−1, vertices added in ascending
// index order via cfg.idFn.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, cfg.idFn(i), err)
			}
		}

		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
