// Package interop converts waternet graphs into gonum graphs so downstream
// consumers can run gonum's algorithms (paths, centrality, community
// detection) on a water network.
package interop

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/waternet/core"
)

// ToGonum copies g into a gonum undirected graph. Node IDs are the row-major
// rank of each cell (see core.DenseView); the returned slice maps a node ID
// back to its cell.
// Complexity: O(V log V + E).
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, []core.Cell) {
	v := g.Dense()
	ug := simple.NewUndirectedGraph()
	for id := range v.Cells {
		ug.AddNode(simple.Node(int64(id)))
	}
	for u, nbrs := range v.Adj {
		for _, w := range nbrs {
			if u < w {
				ug.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(w))})
			}
		}
	}
	return ug, v.Cells
}
