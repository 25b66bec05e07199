// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/Neighbors.
// Determinism:
//   - Edges() is sorted by (From, To) row-major; Neighbors() is row-major.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddEdge connects a and b with an undirected edge.
//
// Steps:
//  1. Reject a == b with ErrLoopNotAllowed.
//  2. Intern both endpoints (missing vertices are created).
//  3. If the pair is already adjacent, return nil without changes.
//  4. Append each endpoint to the other's adjacency and count the edge once.
//
// Complexity: O(deg(a)) for the duplicate check.
func (g *Graph) AddEdge(a, b Cell) error {
	if a == b {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ia, ib := g.intern(a), g.intern(b)
	if g.adjacent(ia, ib) {
		return nil
	}
	g.adj[ia] = append(g.adj[ia], ib)
	g.adj[ib] = append(g.adj[ib], ia)
	g.edgeCount++

	return nil
}

// adjacent reports whether dense indices i and j share an edge.
// Caller must hold a lock. Scans the shorter list.
func (g *Graph) adjacent(i, j int) bool {
	if len(g.adj[j]) < len(g.adj[i]) {
		i, j = j, i
	}
	for _, k := range g.adj[i] {
		if k == j {
			return true
		}
	}

	return false
}

// HasEdge reports whether a and b are adjacent. Unknown cells yield false.
func (g *Graph) HasEdge(a, b Cell) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ia, ok := g.index[a]
	if !ok {
		return false
	}
	ib, ok := g.index[b]
	if !ok {
		return false
	}

	return g.adjacent(ia, ib)
}

// Neighbors returns the cells adjacent to c in row-major order.
// Returns ErrVertexNotFound if c is not a vertex.
func (g *Graph) Neighbors(c Cell) ([]Cell, error) {
	g.mu.RLock()
	i, ok := g.index[c]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]Cell, 0, len(g.adj[i]))
	for _, j := range g.adj[i] {
		out = append(out, g.cells[j])
	}
	g.mu.RUnlock()

	sort.Slice(out, func(x, y int) bool { return out[x].Less(out[y]) })

	return out, nil
}

// Edges returns every edge exactly once, sorted by From then To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for i, nbrs := range g.adj {
		for _, j := range nbrs {
			// each undirected edge appears in both lists; keep the i<j copy
			if i < j {
				out = append(out, newEdge(g.cells[i], g.cells[j]))
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(x, y int) bool {
		if out[x].From != out[y].From {
			return out[x].From.Less(out[y].From)
		}
		return out[x].To.Less(out[y].To)
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
