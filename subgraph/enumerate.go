// SPDX-License-Identifier: MIT
// Package subgraph — the memoized edge-removal search.
//
// Contract:
//   - Enumerate normalizes its input, defaults the exclusive edge bound k
//     to (total edge count + 1), then explores: reduce the state, skip it
//     if the memo table has seen the exact reduced (matrix, vertices) pair,
//     collect the pruned subgraph when 1 < E < k, and branch by removing a
//     single edge multiplicity at every nonzero position. Parallel edges
//     therefore take several recursion steps to disappear, which is what
//     exposes the intermediate multiplicities.
//   - The memo table lives for exactly one top-level call and is threaded
//     through the recursion as an explicit parameter — never package state,
//     so repeated calls cannot leak exploration history into each other.
//   - Single-threaded, synchronous, call-stack recursion; depth is bounded
//     by the total edge count. A shape error anywhere aborts the whole
//     enumeration.
//
// Determinism:
//   - Branch order is the row-major nonzero scan of the reduced matrix;
//     results arrive in a stable order for identical inputs.
//
// Complexity: worst case exponential in edge count; the memo table
// guarantees at most one expansion per distinct reduced state.

package subgraph

import (
	"fmt"

	"github.com/kinetlab/kinet/matrix"
)

// memoTable marks reduced states as explored. Keys are the exact contents
// of the (matrix, vertices) pair; see Dense.AppendKey. Scoped to one
// Enumerate call.
type memoTable struct {
	seen  map[string]struct{}
	stats *MemoStats // optional; nil when not instrumented
}

func newMemoTable(stats *MemoStats) *memoTable {
	return &memoTable{seen: make(map[string]struct{}), stats: stats}
}

// visit records the state and reports whether this is its first visit.
func (t *memoTable) visit(A *matrix.Dense, verts matrix.Vector) bool {
	buf := A.AppendKey(nil)
	buf = append(buf, '|')
	key := string(verts.AppendKey(buf))

	if _, ok := t.seen[key]; ok {
		if t.stats != nil {
			t.stats.Hits++
		}

		return false
	}
	t.seen[key] = struct{}{}
	if t.stats != nil {
		t.stats.Distinct++
	}

	return true
}

// Enumerate collects every valid subgraph of src reachable by repeated
// single-edge removal. See the package documentation for the validity
// rules and the file contract for the search mechanics.
//
// The zero-option call enumerates everything: all vertices active, no
// required vertices, k = total edge count + 1.
func Enumerate(src Source, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)

	A, verts, err := Normalize(src, o.verts)
	if err != nil {
		return nil, fmt.Errorf("Enumerate: %w", err)
	}

	k := o.bound
	if !o.hasBound {
		k = A.Sum() + 1
	}

	memo := newMemoTable(o.stats)
	var results []Result
	if err = enumerate(A, verts, k, o.required, memo, &results); err != nil {
		return nil, fmt.Errorf("Enumerate: %w", err)
	}

	return results, nil
}

// enumerate is the recursive worker. Every call owns its (A, verts) pair
// outright; children receive fresh copies, so no graph state is ever
// aliased between branches.
func enumerate(
	A *matrix.Dense,
	verts matrix.Vector,
	k int64,
	required []int,
	memo *memoTable,
	results *[]Result,
) error {
	reduced, active, err := Reduce(A, verts, required)
	if err != nil {
		return err
	}

	// Primary pruning: a reduced state reached before, via any removal
	// order, contributes nothing new.
	if !memo.visit(reduced, active) {
		return nil
	}

	// Collect when the edge count lands strictly inside (1, k): single-edge
	// and empty states are never valid, and the bound is exclusive.
	if total := reduced.Sum(); total > 1 && total < k {
		pruned, retained, pruneErr := Prune(reduced, active)
		if pruneErr != nil {
			return pruneErr
		}
		*results = append(*results, Result{Matrix: pruned, Vertices: retained})
	}

	// Branch: peel one multiplicity off each present edge in row-major
	// order. A multiplicity of 3 becomes 2 here and needs two more branches
	// down the line to vanish entirely.
	for _, p := range reduced.NonZero() {
		child := reduced.Clone()
		mult, _ := child.At(p.Row, p.Col)
		_ = child.Set(p.Row, p.Col, mult-1)

		if err = enumerate(child, active.Clone(), k, required, memo, results); err != nil {
			return err
		}
	}

	return nil
}
