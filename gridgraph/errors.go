package gridgraph

import "errors"

var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadConnectivity indicates an unknown Connectivity value.
	ErrBadConnectivity = errors.New("gridgraph: connectivity must be Conn4 or Conn8")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNotWater indicates a cell that was required to be water is dry.
	ErrNotWater = errors.New("gridgraph: cell is not water")
)
