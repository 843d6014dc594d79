// This file declares the Graph type, its configuration options, the
// package sentinel errors, and the NewGraph constructor.
//
// Concurrency model: one sync.RWMutex (mu) guards vertices, adjacency and
// the edge total. Read paths take RLock; mutating paths take Lock. The
// configuration flags are immutable after construction and may be read
// without holding the lock on the hot paths that own a clone.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a removal referenced an edge with zero multiplicity.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when
	// multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithoutMultiEdges caps every (from, to) multiplicity at one.
// Multi-edges are permitted by default because the adjacency-matrix data
// model counts parallel edges.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// Graph is a thread-safe directed multigraph with counted parallel edges.
//
// adjacency[from][to] holds the multiplicity of the directed edge from→to;
// absent keys mean multiplicity zero. edgeTotal caches the sum of all
// multiplicities so EdgeCount is O(1).
type Graph struct {
	mu sync.RWMutex // guards vertices, adjacency, edgeTotal

	// Configuration flags (immutable after NewGraph).
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges (multiplicity > 1)

	// Storage.
	vertices  map[string]struct{}         // vertex ID set
	adjacency map[string]map[string]int64 // from → to → multiplicity
	edgeTotal int64                       // sum of all multiplicities
}

// NewGraph creates an empty directed Graph.
// Defaults: no self-loops, parallel edges allowed.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowLoops: false,
		allowMulti: true,
		vertices:   make(map[string]struct{}),
		adjacency:  make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// MultiEdges reports whether parallel edges are permitted.
func (g *Graph) MultiEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
