package connectivity

import (
	"sort"

	"github.com/katalvlaran/waternet/core"
)

// Components partitions the vertices of g into maximal connected subsets.
// Components are ordered by their first cell in row-major order; the cells of
// each component are sorted row-major as well.
// Returns ErrDegenerateInput when g is nil.
func Components(g *core.Graph) ([][]core.Cell, error) {
	if g == nil {
		return nil, ErrDegenerateInput
	}
	v := g.Dense()
	comps := components(v)

	out := make([][]core.Cell, len(comps))
	for i, comp := range comps {
		cells := make([]core.Cell, len(comp))
		for j, id := range comp {
			cells[j] = v.Cells[id]
		}
		out[i] = cells
	}
	return out, nil
}

// components runs BFS over v with one shared visited slice and returns the
// vertex numbers of each component in ascending order.
func components(v *core.DenseView) [][]int {
	n := len(v.Cells)
	seen := make([]bool, n)
	var comps [][]int

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []int{start}
		for qi := 0; qi < len(queue); qi++ {
			for _, w := range v.Adj[queue[qi]] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}
	return comps
}

// DegreeHistogram counts vertices by degree: hist[d] is the number of
// vertices with exactly d neighbours. An empty graph yields an empty slice.
// Returns ErrDegenerateInput when g is nil.
func DegreeHistogram(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrDegenerateInput
	}
	v := g.Dense()
	hist := []int{}
	for _, nbrs := range v.Adj {
		d := len(nbrs)
		for len(hist) <= d {
			hist = append(hist, 0)
		}
		hist[d]++
	}
	return hist, nil
}
