// Package connectivity summarizes how fragmented a water network graph is.
//
// Analyze reduces a *core.Graph to Metrics: edge and node counts, the number
// of connected components, the size of the largest one, the average node
// degree, and a composite connectivity score
//
//	Score = ((Edges − Largest²) / Nodes) × (1 + AvgDegree / Components)
//
// The score is a heuristic, not a standard graph measure: the Largest² term
// penalizes networks dominated by one giant body, the second factor rewards
// well-connected nodes relative to fragmentation. It is usually negative.
//
// Empty graphs are not an error: every metric falls back to 0. Only a nil
// graph is rejected (ErrDegenerateInput).
//
// Complexity: Analyze and Components run in O(V log V + E) time and O(V + E)
// memory; the log factor comes from the row-major snapshot.
package connectivity
