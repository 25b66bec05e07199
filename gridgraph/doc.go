// Package gridgraph turns a classification raster into the graph of its
// water cells.
//
// What:
//
//   - Grid wraps a rectangular [][]T raster (any integer or float type) and
//     keeps only its water mask: a cell is water iff its value equals
//     Options.WaterValue (0 by default, the convention of the water-coverage
//     rasters this package was written for; nonzero is dry).
//   - Graph builds a *core.Graph with one vertex per water cell and an edge
//     between every pair of water cells that are 4-neighbours (up, down,
//     left, right).
//   - Label assigns region labels 1..K to the water cells with its own
//     neighbourhood rule (Options.LabelConn, Conn8 by default). The labelling
//     is a visual byproduct and is not required to agree with the graph's
//     connected components when LabelConn is Conn8.
//   - Bridge computes the fewest dry cells that must turn into water to merge
//     two water bodies (0-1 BFS).
//
// Complexity:
//
//   - NewGrid: O(H×W), Memory: O(H×W).
//   - Graph:   O(H×W×4), Memory: O(W_c + E) for W_c water cells.
//   - Label:   O(H×W×d), Memory: O(H×W)    (d = 4 or 8).
//   - Bridge:  O(H×W×4), Memory: O(H×W).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadConnectivity: Options.LabelConn is neither Conn4 nor Conn8.
//   - ErrOutOfBounds, ErrNotWater: invalid Bridge endpoints.
//
// An input with zero rows or zero columns is valid and yields an empty graph.
package gridgraph
