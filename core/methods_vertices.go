// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns cells in row-major order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddVertex inserts c if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, look up c in the index.
//   - Stage 2: If missing, intern it at the next dense position with an
//     empty adjacency slice.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(c Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.intern(c)
}

// intern returns the dense index of c, registering it if needed.
// Caller must hold the write lock.
func (g *Graph) intern(c Cell) int {
	if i, ok := g.index[c]; ok {
		return i
	}
	i := len(g.cells)
	g.index[c] = i
	g.cells = append(g.cells, c)
	g.adj = append(g.adj, nil)

	return i
}

// HasVertex reports whether c is a vertex.
// Complexity: O(1).
func (g *Graph) HasVertex(c Cell) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[c]

	return ok
}

// Vertices returns all vertices in row-major order.
//
// Determinism:
//   - Independent of insertion order.
//
// Complexity:
//   - Time O(V log V), Space O(V) for the returned slice.
func (g *Graph) Vertices() []Cell {
	g.mu.RLock()
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.cells)
}

// Degree returns the number of edges incident to c.
// Returns ErrVertexNotFound if c is not a vertex.
// Complexity: O(1).
func (g *Graph) Degree(c Cell) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[c]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adj[i]), nil
}

// Stats produces a snapshot of vertex and edge counts plus degree totals.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{VertexCount: len(g.cells), EdgeCount: g.edgeCount}
	for _, nbrs := range g.adj {
		d := len(nbrs)
		st.DegreeSum += d
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}

	return st
}
