package dijkstra

import (
	"runtime"
	"sync"

	"github.com/matzehuels/shortpath/pkg/graph"
)

// Engine runs the main loop step by step. Use Run unless you need the
// individual steps.
type Engine struct {
	g         *graph.Graph
	t         *Table
	opts      options
	settled   int
	iteration int
	exhausted bool
}

// NewEngine prepares a run from source over g.
func NewEngine(g *graph.Graph, source int, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	t, err := NewTable(g.VertexCount(), source)
	if err != nil {
		return nil, err
	}
	e := &Engine{g: g, t: t}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e, nil
}

// Table returns the table the engine writes to.
func (e *Engine) Table() *Table { return e.t }

// Done reports whether the loop has finished: VertexCount-1 vertices are
// settled (all of them with WithSettleAll), or the last Select found no
// vertex with a finite distance.
func (e *Engine) Done() bool {
	if e.exhausted {
		return true
	}
	target := e.t.Len() - 1
	if e.opts.settleAll {
		target = e.t.Len()
	}
	return e.settled >= target
}

// Select settles and returns the unsettled vertex with the smallest finite
// distance, preferring the lowest index on ties. It returns false when no
// such vertex exists.
func (e *Engine) Select() (int, bool) {
	var v int
	if e.opts.parallelThreshold > 0 && e.t.Len() >= e.opts.parallelThreshold {
		v = e.scanParallel()
	} else {
		v = scan(e.t.entries, 0, len(e.t.entries))
	}
	if v == NoVertex {
		e.exhausted = true
		return NoVertex, false
	}
	e.t.entries[v].Settled = true
	e.settled++
	return v, true
}

// Relax tries to shorten the paths to v's unsettled neighbors through v and
// returns the neighbors whose entries changed. A path whose length would not
// fit below Infinity is not taken.
func (e *Engine) Relax(v int) []int {
	entries := e.t.entries
	base := entries[v].Distance
	if base == Infinity {
		return nil
	}

	var improved []int
	for w, weight := range e.g.Neighbors(v) {
		if entries[w].Settled || weight > Infinity-1-base {
			continue
		}
		if candidate := base + weight; candidate < entries[w].Distance {
			entries[w].Distance = candidate
			entries[w].Predecessor = v
			improved = append(improved, w)
		}
	}
	return improved
}

// Step runs one select-and-relax iteration. It returns false once Done.
func (e *Engine) Step() bool {
	if e.Done() {
		return false
	}
	v, ok := e.Select()
	if !ok {
		return false
	}
	improved := e.Relax(v)
	e.iteration++
	if e.opts.observer != nil {
		e.opts.observer(StepEvent{
			Iteration: e.iteration,
			Vertex:    v,
			Distance:  e.t.entries[v].Distance,
			Relaxed:   improved,
		})
	}
	return true
}

// Iterations returns the number of completed steps.
func (e *Engine) Iterations() int { return e.iteration }

// Run computes shortest distances from source over g and returns the frozen table.
// It fails only for a nil graph or an out-of-range source.
func Run(g *graph.Graph, source int, opts ...Option) (*Table, error) {
	e, err := NewEngine(g, source, opts...)
	if err != nil {
		return nil, err
	}
	for e.Step() {
	}
	return e.t, nil
}

// scan returns the first unsettled vertex in [lo, hi) with the strictly
// smallest finite distance, or NoVertex.
func scan(entries []Entry, lo, hi int) int {
	best, lowest := NoVertex, Infinity
	for i := lo; i < hi; i++ {
		if !entries[i].Settled && entries[i].Distance < lowest {
			best, lowest = i, entries[i].Distance
		}
	}
	return best
}

// scanParallel scans contiguous chunks concurrently and merges the chunk
// minima in index order, which gives the same answer as scan.
func (e *Engine) scanParallel() int {
	entries := e.t.entries
	n := len(entries)
	workers := min(runtime.GOMAXPROCS(0), n)
	chunk := (n + workers - 1) / workers

	best := make([]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, n)
		go func() {
			defer wg.Done()
			best[w] = NoVertex
			if lo < hi {
				best[w] = scan(entries, lo, hi)
			}
		}()
	}
	wg.Wait()

	result, dist := NoVertex, Infinity
	for _, v := range best {
		if v != NoVertex && entries[v].Distance < dist {
			result, dist = v, entries[v].Distance
		}
	}
	return result
}
