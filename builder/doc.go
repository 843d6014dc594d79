// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for directed
// multigraphs: fixed topologies (Cycle, Path) and random instances
// (RandomDirectedGNM) suitable as enumeration inputs and test fixtures.
//
// What:
//   - Constructor is a function that mutates a core.Graph using a resolved
//     builderConfig. BuildGraph is the single orchestrator: it creates the
//     graph, resolves options, and applies constructors in order.
//   - Options are functional (BuilderOption); option constructors validate
//     and panic on meaningless inputs, constructors themselves never panic
//     and return sentinel errors only.
//
// Why:
//   - Subgraph enumeration is exponential, so experiments live or die on
//     reproducibility. Every builder here is deterministic for a fixed
//     seed, ID scheme, and call order.
//
// Determinism:
//   - Vertex IDs come from cfg.idFn (decimal "0","1",... by default).
//   - Stochastic builders require an explicit RNG via WithSeed or WithRand
//     and fail with ErrNeedRandSource otherwise.
//
// Errors:
//   - ErrTooFewVertices, ErrTooManyEdges, ErrNeedRandSource,
//     ErrConstructFailed. Branch with errors.Is.
package builder
