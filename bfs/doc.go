// Package bfs provides breadth-first search over a core.Graph of grid cells,
// returning hop distances, parent links and visit order from a start cell.
//
// What
//
//   - Explore cells in non-decreasing hop count from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: cell → distance (edges) from start
//   - Parent: cell → its predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the search.
//
// Determinism
//
//	core.Graph.Neighbors returns cells in row-major order and BFS enqueues in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, core.Cell{Row: 0, Col: 0},
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start cell is not a vertex.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNeighbors            if neighbour lookup fails.
//   - Wrapped errors returned by OnVisit.
package bfs
