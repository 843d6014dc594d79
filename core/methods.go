// This file implements the mutation and query surface of Graph.
// All methods honor the locking model declared in types.go and return only
// package sentinels for user-triggered failures (checked via errors.Is).

package core

import "sort"

// AddVertex inserts a vertex with the given ID.
// Inserting an existing vertex is a no-op (idempotent by design).
// Returns ErrEmptyVertexID when id is "".
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending lexicographic order.
// The sorted order is the canonical vertex indexing used by the matrix
// converters; keep it stable.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge adds one directed edge from→to, creating missing endpoints.
// Repeated calls on the same ordered pair raise the multiplicity, unless
// the graph was built with WithoutMultiEdges().
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// Auto-create endpoints so builders can emit edges without a separate
	// vertex pass.
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	row := g.adjacency[from]
	if row == nil {
		row = make(map[string]int64)
		g.adjacency[from] = row
	}
	if row[to] > 0 && !g.allowMulti {
		return ErrMultiEdgeNotAllowed
	}
	row[to]++
	g.edgeTotal++

	return nil
}

// RemoveEdge removes one multiplicity of the directed edge from→to.
// Returns ErrVertexNotFound when either endpoint is missing and
// ErrEdgeNotFound when the multiplicity is already zero.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrVertexNotFound
	}

	row := g.adjacency[from]
	if row == nil || row[to] == 0 {
		return ErrEdgeNotFound
	}
	row[to]--
	g.edgeTotal--
	if row[to] == 0 {
		delete(row, to)
		if len(row) == 0 {
			delete(g.adjacency, from)
		}
	}

	return nil
}

// Multiplicity returns the number of parallel edges from→to.
// Missing endpoints or absent edges report zero; this is a query, not a
// validation point.
// Complexity: O(1).
func (g *Graph) Multiplicity(from, to string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[from][to]
}

// EdgeCount returns the total edge count, counting multiplicities.
// Complexity: O(1).
func (g *Graph) EdgeCount() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeTotal
}

// Clone returns a deep copy of the graph: independent vertex set and
// adjacency storage, same configuration flags.
// Complexity: O(V + E').   (E' = number of distinct ordered pairs)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		adjacency:  make(map[string]map[string]int64, len(g.adjacency)),
		edgeTotal:  g.edgeTotal,
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for from, row := range g.adjacency {
		crow := make(map[string]int64, len(row))
		for to, mult := range row {
			crow[to] = mult
		}
		c.adjacency[from] = crow
	}

	return c
}
