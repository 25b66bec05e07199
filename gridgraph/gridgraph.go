package gridgraph

import (
	"github.com/katalvlaran/waternet/core"
)

// NewGrid constructs a Grid from a rectangular 2D slice of pixel values.
// Only the water mask is retained, so later mutation of values has no effect.
// Returns ErrNonRectangular if any row length differs from the first row,
// ErrBadConnectivity if opts.LabelConn is unknown.
// A grid with no rows or no columns is valid and empty.
// Algorithmic complexity: O(H×W) time and memory.
func NewGrid[T Number](values [][]T, opts Options) (*Grid, error) {
	if opts.LabelConn != Conn4 && opts.LabelConn != Conn8 {
		return nil, ErrBadConnectivity
	}
	h := len(values)
	w := 0
	if h > 0 {
		w = len(values[0])
	}
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	gg := &Grid{
		Rows:  h,
		Cols:  w,
		opts:  opts,
		water: make([]bool, h*w),
	}
	for r, row := range values {
		for c, v := range row {
			if float64(v) == opts.WaterValue {
				gg.water[r*w+c] = true
				gg.waterCount++
			}
		}
	}

	return gg, nil
}

// Build converts values into its water graph and region labelling in one call.
// The two outputs are computed independently of each other.
func Build[T Number](values [][]T, opts Options) (*Result, error) {
	gg, err := NewGrid(values, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Graph: gg.Graph(), Labels: gg.Label()}, nil
}

// Options returns the options the grid was built with.
func (gg *Grid) Options() Options {
	return gg.opts
}

// InBounds reports whether (r, c) lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < gg.Rows && c >= 0 && c < gg.Cols
}

// IsWater reports whether (r, c) is an in-bounds water cell.
// Complexity: O(1).
func (gg *Grid) IsWater(r, c int) bool {
	return gg.InBounds(r, c) && gg.water[gg.index(r, c)]
}

// WaterCount returns the number of water cells.
func (gg *Grid) WaterCount() int {
	return gg.waterCount
}

// Graph builds the undirected 4-connectivity graph of the water cells.
// Every water cell becomes a vertex, including isolated ones; each in-bounds
// water neighbour above, below, left or right adds an edge. Each pair is seen
// from both ends and core.Graph ignores the second insertion.
// Complexity: O(H×W×4) time, O(W_c + E) memory.
func (gg *Grid) Graph() *core.Graph {
	g := core.NewGraph(core.WithCapacity(gg.waterCount))
	for r := 0; r < gg.Rows; r++ {
		for c := 0; c < gg.Cols; c++ {
			if !gg.water[gg.index(r, c)] {
				continue
			}
			u := core.Cell{Row: r, Col: c}
			g.AddVertex(u)
			for _, d := range offsets4 {
				nr, nc := r+d[0], c+d[1]
				if !gg.IsWater(nr, nc) {
					continue
				}
				// u != neighbour, so AddEdge cannot fail
				_ = g.AddEdge(u, core.Cell{Row: nr, Col: nc})
			}
		}
	}

	return g
}

// index maps (r, c) to a row-major index: r*Cols + c.
// Complexity: O(1).
func (gg *Grid) index(r, c int) int {
	return r*gg.Cols + c
}

// Coordinate converts a row-major index back to a cell.
// Complexity: O(1).
func (gg *Grid) Coordinate(idx int) core.Cell {
	return core.Cell{Row: idx / gg.Cols, Col: idx % gg.Cols}
}
