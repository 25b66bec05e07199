package connectivity

import (
	"errors"

	"github.com/katalvlaran/waternet/core"
)

// ErrDegenerateInput is returned when Analyze is given a nil graph.
var ErrDegenerateInput = errors.New("connectivity: graph is nil")

// Metrics is the connectivity summary of one graph. It is a plain value;
// callers receive a copy.
type Metrics struct {
	Edges            int     `json:"num_edges"`
	Nodes            int     `json:"num_nodes"`
	Components       int     `json:"num_components"`
	LargestComponent int     `json:"largest_component_size"`
	AvgDegree        float64 `json:"avg_node_connections"`
	Score            float64 `json:"connectivity"`
}

// Analyze computes Metrics for g.
//
// Steps:
//  1. Snapshot g row-major (core.DenseView).
//  2. Nodes and Edges are the vertex and edge counts.
//  3. BFS from every unvisited vertex gives the components; track the largest.
//  4. AvgDegree sums each vertex's degree and divides by Nodes.
//  5. Score applies the composite formula.
//
// Nodes == 0 yields the zero Metrics. Returns ErrDegenerateInput when g is nil.
func Analyze(g *core.Graph) (Metrics, error) {
	if g == nil {
		return Metrics{}, ErrDegenerateInput
	}
	v := g.Dense()
	comps := components(v)

	m := Metrics{
		Edges:      g.EdgeCount(),
		Nodes:      len(v.Cells),
		Components: len(comps),
	}
	if m.Nodes == 0 {
		return m, nil
	}
	if m.Components == 0 {
		panic("connectivity: non-empty graph without components")
	}

	for _, comp := range comps {
		if len(comp) > m.LargestComponent {
			m.LargestComponent = len(comp)
		}
	}

	degreeSum := 0
	for _, nbrs := range v.Adj {
		degreeSum += len(nbrs)
	}
	m.AvgDegree = float64(degreeSum) / float64(m.Nodes)
	m.Score = Score(m.Edges, m.Nodes, m.Components, m.LargestComponent, m.AvgDegree)

	return m, nil
}

// Score evaluates the composite connectivity formula. It returns 0 when nodes
// is 0; components must be positive otherwise.
func Score(edges, nodes, components, largest int, avgDegree float64) float64 {
	if nodes == 0 {
		return 0
	}
	penalty := float64(edges) - float64(largest)*float64(largest)
	return penalty / float64(nodes) * (1 + avgDegree/float64(components))
}
