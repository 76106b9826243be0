// Package graph provides the undirected, positively-weighted graph that the
// shortest-path engine runs on.
//
// # Overview
//
// Vertices are dense integer indices in [0, VertexCount). There is no vertex
// object: a vertex exists because its index is in range. Edges are unordered
// pairs with a positive integer weight, stored twice in per-vertex adjacency
// lists so that both endpoints see each other.
//
// # Basic Usage
//
// Create a graph with [New] and insert edges with [Graph.AddEdge]:
//
//	g, _ := graph.New(4)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(0, 2, 1)
//
//	for w, weight := range g.Neighbors(0) {
//	    fmt.Println(w, weight)
//	}
//
// # Validation
//
// [Graph.AddEdge] is a hard validation boundary. It rejects, in this order:
//
//   - endpoints outside [0, VertexCount) ([ErrVertexOutOfRange])
//   - self-loops ([ErrSelfLoop])
//   - weights ≤ 0 ([ErrNonPositiveWeight])
//   - a second edge between the same unordered pair ([ErrDuplicateEdge])
//
// Every rejection is returned as an [*EdgeError] wrapping one of these
// sentinels, so callers can use errors.Is and errors.As.
//
// # Neighbor Order
//
// [Graph.Neighbors] yields neighbors most-recent-first: the last edge added
// to a vertex is visited first. Loading the edges of a file therefore yields
// neighbors in reverse file order. The adjacency dump and the tie-breaking of
// equal-length paths both depend on this order.
//
// # Limits
//
// [SoftMaxVertices], [SoftMaxEdges] and [SoftMaxWeight] document the sizes the
// file format was designed for. They are not enforced.
//
// # Concurrency
//
// A Graph is mutated only while it is being loaded. Once loading is done it
// can be read from any number of goroutines.
package graph
