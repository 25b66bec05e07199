// Package waternet measures how well connected the water in a land-cover
// classification raster is.
//
// What is waternet?
//
//	Every cell classified as water becomes a vertex; every pair of water
//	cells sharing an edge (up, down, left, right) becomes an undirected edge.
//	From that graph waternet reports six numbers:
//		• number of edges and nodes
//		• number of connected components and the size of the largest
//		• average node connections (Σ degree / nodes)
//		• a connectivity score ((E − L²)/N) × (1 + avg/components)
//
// Packages:
//
//	core/          thread-safe undirected graph over grid cells, dense snapshots
//	gridgraph/     raster to graph builder, region labelling, channel bridging
//	connectivity/  components, degree histogram, metrics and score
//	bfs/           hop-distance traversal with hooks and depth limits
//	raster/        GeoTIFF, PNG and ESRI ASCII band-1 loaders
//	report/        text, JSON and table output; label PNG rendering
//	history/       SQLite run history for year-over-year comparison
//	interop/       conversion to gonum graphs
//	cmd/waternet   the command-line tool
//
// Quick example:
//
//	   0 0 1        (0,0)─(0,1)
//	   0 1 1          │
//	   1 1 0        (1,0)        (2,2)
//
//	res, _ := gridgraph.Build(grid, gridgraph.DefaultOptions())
//	m, _ := connectivity.Analyze(res.Graph)
//	// m.Nodes == 4, m.Edges == 2, m.Components == 2, m.LargestComponent == 3
package waternet
