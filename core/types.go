// File: types.go
// Role: Cell, Edge, Graph and sentinel errors.
// Concurrency:
//   - mu guards index, cells, adj and edgeCount.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a cell that is not a vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge from a cell to itself was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Cell identifies a raster cell by row and column. It is the vertex identity.
type Cell struct {
	Row, Col int
}

// String renders the cell as "row,col".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Less orders cells row-major: by Row, then by Col.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Edge is an unordered pair of cells, normalized so that From.Less(To).
type Edge struct {
	From, To Cell
}

// newEdge returns the normalized edge between a and b.
func newEdge(a, b Cell) Edge {
	if b.Less(a) {
		a, b = b, a
	}
	return Edge{From: a, To: b}
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	// DegreeSum is the sum of all vertex degrees; always 2 × EdgeCount.
	DegreeSum int
	// MaxDegree is the largest degree of any vertex, 0 for an empty graph.
	MaxDegree int
}

// Graph is an undirected simple graph over grid cells.
//
// index maps a Cell to its dense position in cells and adj.
// adj[i] lists the dense indices adjacent to cells[i], in insertion order.
type Graph struct {
	mu sync.RWMutex

	index     map[Cell]int
	cells     []Cell
	adj       [][]int
	edgeCount int
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for n vertices. Builders that know the
// number of water cells up front use it to avoid rehashing.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.index = make(map[Cell]int, n)
		g.cells = make([]Cell, 0, n)
		g.adj = make([][]int, 0, n)
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{index: make(map[Cell]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
