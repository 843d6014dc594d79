// SPDX-License-Identifier: MIT
// Path(n) — the n-vertex directed path. Fully acyclic, so it reduces to
// nothing: the canonical empty-enumeration fixture.

package builder

import (
	"fmt"

	"github.com/kinetlab/kinet/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n:
// edges i → i+1 for i in 0..n−2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, cfg.idFn(i), err)
			}
		}

		for i := 0; i+1 < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
