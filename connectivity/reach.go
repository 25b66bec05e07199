package connectivity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/waternet/bfs"
	"github.com/katalvlaran/waternet/core"
)

// ComponentOf returns the connected component containing c, sorted row-major.
// Returns ErrDegenerateInput for a nil graph and core.ErrVertexNotFound when
// c is not a water cell of g.
func ComponentOf(g *core.Graph, c core.Cell) ([]core.Cell, error) {
	return Reach(g, c, 0)
}

// Reach returns every cell within hops edges of c, c included, sorted
// row-major. hops == 0 means unbounded, which is the whole component.
func Reach(g *core.Graph, c core.Cell, hops int) ([]core.Cell, error) {
	if g == nil {
		return nil, ErrDegenerateInput
	}
	res, err := bfs.BFS(g, c, bfs.WithMaxDepth(hops))
	switch {
	case errors.Is(err, bfs.ErrStartVertexNotFound):
		return nil, fmt.Errorf("connectivity: %s: %w", c, core.ErrVertexNotFound)
	case err != nil:
		return nil, fmt.Errorf("connectivity: reach from %s: %w", c, err)
	}

	out := res.Order
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out, nil
}
