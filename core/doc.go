// Package core provides the undirected, unweighted simple graph used to
// represent water networks extracted from classification rasters.
//
// Vertices are grid cells identified by their (Row, Col) coordinate pair.
// Internally each cell is interned to a dense integer index so that adjacency
// is stored as compact slices rather than nested maps; callers never see the
// indices.
//
// Guarantees:
//
//   - Simple graph: no self-loops (ErrLoopNotAllowed) and no parallel edges.
//     Adding an existing edge again is a no-op, so construction does not
//     depend on insertion order.
//   - Closure: AddEdge registers missing endpoints, so every edge's endpoints
//     are always vertices of the graph.
//   - Determinism: Vertices(), Edges() and Neighbors() are returned in
//     row-major order regardless of how the graph was built.
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog and adjacency. Reads may run in
//	parallel; mutations are serialized.
//
// Complexity:
//
//	AddVertex, HasVertex:           O(1) amortized
//	AddEdge, HasEdge, Degree:       O(deg(v))
//	Vertices, Edges:                O(V log V), O(E log E)
//	VertexCount, EdgeCount, Stats:  O(1)
//
// Errors:
//
//	ErrVertexNotFound  - the referenced cell is not a vertex.
//	ErrLoopNotAllowed  - AddEdge(a, a).
package core
