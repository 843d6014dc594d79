// SPDX-License-Identifier: MIT
// RandomDirectedGNM(n, m) — uniform G(n,m) directed graphs.
//
// Contract:
//   - n ≥ 1, 0 ≤ m ≤ n·(n−1); loops are never emitted.
//   - Requires an RNG (WithSeed/WithRand), else ErrNeedRandSource.
//   - Sampling: enumerate all n·(n−1) ordered pairs in row-major order,
//     Fisher–Yates shuffle with cfg.rng, take the first m. Uniform over
//     all m-edge simple digraphs and deterministic per seed.
//
// Complexity: O(n²) time and space regardless of m.

package builder

import (
	"fmt"

	"github.com/kinetlab/kinet/core"
)

const (
	methodRandomGNM   = "RandomDirectedGNM"
	minRandomGNMNodes = 1
)

// RandomDirectedGNM returns a Constructor that builds a uniformly random
// simple directed graph with n vertices and exactly m edges.
func RandomDirectedGNM(n int, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomGNMNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGNM, n, minRandomGNMNodes, ErrTooFewVertices)
		}
		maxEdges := n * (n - 1)
		if m < 0 || m > maxEdges {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodRandomGNM, m, maxEdges, ErrTooManyEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGNM, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomGNM, cfg.idFn(i), err)
			}
		}

		// All ordered pairs (u,v), u≠v, in row-major order.
		pairs := make([][2]int, 0, maxEdges)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v {
					pairs = append(pairs, [2]int{u, v})
				}
			}
		}

		cfg.rng.Shuffle(len(pairs), func(i, j int) {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		})

		for _, p := range pairs[:m] {
			u, v := cfg.idFn(p[0]), cfg.idFn(p[1])
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomGNM, u, v, err)
			}
		}

		return nil
	}
}
