package gridgraph

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/waternet/core"
)

// Number is any pixel type a single-band raster can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	default:
		return "invalid"
	}
}

// ParseConnectivity maps 4 and 8 to Conn4 and Conn8.
func ParseConnectivity(n int) (Connectivity, error) {
	switch n {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	default:
		return 0, ErrBadConnectivity
	}
}

var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// offsets returns (dRow, dCol) pairs for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Options contains tunable parameters for grid analysis.
type Options struct {
	// WaterValue is the pixel value that marks a water cell.
	WaterValue float64
	// LabelConn chooses the neighbourhood used by Label. Graph always uses Conn4.
	LabelConn Connectivity
}

// DefaultOptions returns Options with WaterValue=0 and LabelConn=Conn8.
func DefaultOptions() Options {
	return Options{
		WaterValue: 0,
		LabelConn:  Conn8,
	}
}

// Grid is the water mask of a classification raster. It is immutable once built.
// water[r*Cols+c] reports whether cell (r, c) is water.
type Grid struct {
	Rows, Cols int
	opts       Options
	water      []bool
	waterCount int
}

// LabelGrid holds region labels for a Rows×Cols raster in row-major order.
// Labels are 0 for cells outside every region and 1..Count otherwise, numbered
// in raster-scan order of each region's first cell.
type LabelGrid struct {
	Rows, Cols int
	Count      int
	Labels     []int32
}

// At returns the label of cell (r, c).
func (lg *LabelGrid) At(r, c int) int {
	return int(lg.Labels[r*lg.Cols+c])
}

// Sizes returns the number of cells carrying each label; Sizes()[k-1] is the
// size of region k.
func (lg *LabelGrid) Sizes() []int {
	sizes := make([]int, lg.Count)
	for _, l := range lg.Labels {
		if l > 0 {
			sizes[l-1]++
		}
	}
	return sizes
}

// Result bundles the outputs of Build.
type Result struct {
	Graph  *core.Graph
	Labels *LabelGrid
}
