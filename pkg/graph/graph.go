package graph

import (
	"iter"
	"slices"
)

// Graph is an undirected graph with positive integer edge weights over the
// vertices [0, VertexCount).
//
// The zero value is not usable - use New.
type Graph struct {
	// adj[v] holds v's neighbors in insertion order; iteration runs backwards.
	adj   [][]Neighbor
	pairs map[pair]struct{}
	edges []Edge
}

// New creates a graph with vertexCount isolated vertices.
// It returns ErrInvalidVertexCount if vertexCount is not positive.
func New(vertexCount int) (*Graph, error) {
	if vertexCount <= 0 {
		return nil, ErrInvalidVertexCount
	}
	return &Graph{
		adj:   make([][]Neighbor, vertexCount),
		pairs: make(map[pair]struct{}),
	}, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// AddEdge connects v1 and v2 with the given weight.
//
// The checks run in a fixed order: range, self-loop, weight, duplicate. The
// first failing check is reported as an *EdgeError and the graph is left
// unchanged. On success v2 is added to v1's neighbors and v1 to v2's.
func (g *Graph) AddEdge(v1, v2, weight int) error {
	e := Edge{From: v1, To: v2, Weight: weight}
	switch {
	case !g.HasVertex(v1) || !g.HasVertex(v2):
		return &EdgeError{Edge: e, Err: ErrVertexOutOfRange}
	case v1 == v2:
		return &EdgeError{Edge: e, Err: ErrSelfLoop}
	case weight <= 0:
		return &EdgeError{Edge: e, Err: ErrNonPositiveWeight}
	case g.EdgeExists(v1, v2):
		return &EdgeError{Edge: e, Err: ErrDuplicateEdge}
	}

	g.adj[v1] = append(g.adj[v1], Neighbor{Vertex: v2, Weight: weight})
	g.adj[v2] = append(g.adj[v2], Neighbor{Vertex: v1, Weight: weight})
	g.pairs[makePair(v1, v2)] = struct{}{}
	g.edges = append(g.edges, e)
	return nil
}

// EdgeExists reports whether an edge connects v1 and v2 in either direction.
// Out-of-range vertices never have edges.
func (g *Graph) EdgeExists(v1, v2 int) bool {
	_, ok := g.pairs[makePair(v1, v2)]
	return ok
}

// Weight returns the weight of the edge between v1 and v2.
func (g *Graph) Weight(v1, v2 int) (int, bool) {
	if !g.EdgeExists(v1, v2) {
		return 0, false
	}
	for w, weight := range g.Neighbors(v1) {
		if w == v2 {
			return weight, true
		}
	}
	return 0, false
}

// Neighbors returns the (neighbor, weight) pairs of v, most recently added
// first. The sequence is empty for an out-of-range v and can be ranged over
// any number of times.
func (g *Graph) Neighbors(v int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if !g.HasVertex(v) {
			return
		}
		list := g.adj[v]
		for i := len(list) - 1; i >= 0; i-- {
			if !yield(list[i].Vertex, list[i].Weight) {
				return
			}
		}
	}
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}
	return len(g.adj[v])
}

// Edges returns all edges in insertion order, with endpoints as given to AddEdge.
// The returned slice is a copy.
func (g *Graph) Edges() []Edge {
	return slices.Clone(g.edges)
}
