// SPDX-License-Identifier: MIT

// Package viz renders directed multigraphs as Graphviz DOT for quick
// visual inspection of enumeration inputs and results.
//
// Output is deterministic: vertices and edges are emitted in sorted order,
// and a multiplicity-m edge appears as m separate DOT edges so parallel
// edges survive the round trip through dot(1).
package viz
