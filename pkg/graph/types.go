package graph

import (
	"errors"
	"fmt"
)

// Documented size limits of the graph file format. Exceeding them is
// unspecified, not an error.
const (
	SoftMaxVertices = 100
	SoftMaxEdges    = 1000
	SoftMaxWeight   = 1000
)

var (
	// ErrInvalidVertexCount is returned by [New] when the vertex count is not positive.
	ErrInvalidVertexCount = errors.New("vertex count must be positive")

	// ErrVertexOutOfRange is returned when an endpoint lies outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("vertex out of range")

	// ErrSelfLoop is returned when both endpoints of an edge are the same vertex.
	ErrSelfLoop = errors.New("self-loop")

	// ErrNonPositiveWeight is returned when an edge weight is zero or negative.
	ErrNonPositiveWeight = errors.New("edge weight must be positive")

	// ErrDuplicateEdge is returned when an edge already connects the two endpoints.
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// Edge is an undirected weighted connection between two distinct vertices.
type Edge struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

// String formats the edge as it appears in a graph file.
func (e Edge) String() string {
	return fmt.Sprintf("%d,%d,%d", e.From, e.To, e.Weight)
}

// Neighbor is one entry of an adjacency list.
type Neighbor struct {
	Vertex int
	Weight int
}

// EdgeError reports a rejected edge. Err is one of the package sentinels.
type EdgeError struct {
	Edge Edge
	Err  error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("edge %s: %v", e.Edge, e.Err)
}

func (e *EdgeError) Unwrap() error { return e.Err }

// pair is the unordered key of an edge, smaller endpoint first.
type pair struct{ lo, hi int }

func makePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{lo: a, hi: b}
}
