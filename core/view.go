// File: view.go
// Role: Read-only dense snapshot of a Graph for traversal-heavy algorithms.
// Determinism:
//   - Cells are row-major; each neighbour list is ascending.

package core

import "sort"

// DenseView is an immutable snapshot of a Graph where vertices are numbered
// 0..V-1 in row-major order of their cells.
//
// Cells[i] is the cell of vertex i; Adj[i] lists the vertex numbers adjacent
// to i in ascending order. Traversals over a DenseView need no locking and no
// per-step allocation.
type DenseView struct {
	Cells []Cell
	Adj   [][]int
}

// Dense takes a DenseView snapshot of g. Later mutations of g are not
// reflected in the returned view.
//
// Implementation:
//   - Stage 1: Under the read lock, copy cells and sort their positions row-major.
//   - Stage 2: Renumber every adjacency list through the sorted permutation.
//   - Stage 3: Sort each renumbered list.
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func (g *Graph) Dense() *DenseView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.cells)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(x, y int) bool { return g.cells[order[x]].Less(g.cells[order[y]]) })

	rank := make([]int, n)
	for r, i := range order {
		rank[i] = r
	}

	v := &DenseView{Cells: make([]Cell, n), Adj: make([][]int, n)}
	for r, i := range order {
		v.Cells[r] = g.cells[i]
		nbrs := make([]int, len(g.adj[i]))
		for k, j := range g.adj[i] {
			nbrs[k] = rank[j]
		}
		sort.Ints(nbrs)
		v.Adj[r] = nbrs
	}

	return v
}
