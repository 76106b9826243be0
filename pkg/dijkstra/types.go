package dijkstra

import (
	"errors"
	"math"
)

const (
	// Infinity is the distance of a vertex no path has reached.
	Infinity = math.MaxInt

	// NoVertex is the predecessor of the source and of unreached vertices.
	NoVertex = -1
)

var (
	// ErrNilGraph is returned by Run and NewEngine when the graph is nil.
	ErrNilGraph = errors.New("graph is nil")

	// ErrSourceOutOfRange is returned when the source is not a vertex of the graph.
	ErrSourceOutOfRange = errors.New("source vertex out of range")

	// ErrVertexOutOfRange is returned by Table lookups for an invalid vertex.
	ErrVertexOutOfRange = errors.New("vertex out of range")

	// ErrNoPath is returned by Table.PathTo when the target is unreachable.
	ErrNoPath = errors.New("no path")
)

// Entry is the state of one vertex.
type Entry struct {
	Distance    int  `json:"distance"`
	Predecessor int  `json:"predecessor"`
	Settled     bool `json:"settled"`
}

// Reachable reports whether the entry has a finite distance.
func (e Entry) Reachable() bool { return e.Distance != Infinity }

// StepEvent describes one iteration of the main loop.
type StepEvent struct {
	Iteration int   // 1-based
	Vertex    int   // the vertex settled in this iteration
	Distance  int   // its distance
	Relaxed   []int // neighbors whose distance improved
}

// Option configures a run.
type Option func(*options)

type options struct {
	parallelThreshold int
	settleAll         bool
	observer          func(StepEvent)
}

// WithParallelScan scans for the next vertex with several goroutines once the
// graph has at least threshold vertices. A threshold ≤ 0 disables it.
func WithParallelScan(threshold int) Option {
	return func(o *options) { o.parallelThreshold = threshold }
}

// WithSettleAll keeps iterating until every reachable vertex is settled
// instead of stopping at VertexCount-1.
func WithSettleAll() Option {
	return func(o *options) { o.settleAll = true }
}

// WithObserver calls fn after every iteration.
func WithObserver(fn func(StepEvent)) Option {
	return func(o *options) { o.observer = fn }
}
