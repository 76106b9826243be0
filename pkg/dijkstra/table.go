package dijkstra

import (
	"fmt"
	"slices"
)

// Table holds one Entry per vertex, indexed by vertex.
// It is written only by the Engine that created it.
type Table struct {
	source  int
	entries []Entry
}

// NewTable returns the initial table for a run from source: distance 0 for
// the source, Infinity elsewhere, no predecessors, nothing settled.
func NewTable(vertexCount, source int) (*Table, error) {
	if source < 0 || source >= vertexCount {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrSourceOutOfRange, source, vertexCount)
	}
	entries := make([]Entry, vertexCount)
	for i := range entries {
		entries[i] = Entry{Distance: Infinity, Predecessor: NoVertex}
	}
	entries[source].Distance = 0
	return &Table{source: source, entries: entries}, nil
}

// Source returns the source vertex.
func (t *Table) Source() int { return t.source }

// Len returns the number of vertices.
func (t *Table) Len() int { return len(t.entries) }

// Entry returns the entry for v.
func (t *Table) Entry(v int) (Entry, error) {
	if v < 0 || v >= len(t.entries) {
		return Entry{}, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	return t.entries[v], nil
}

// Entries returns a copy of all entries.
func (t *Table) Entries() []Entry { return slices.Clone(t.entries) }

// Distance returns the distance of v, or Infinity for an invalid v.
func (t *Table) Distance(v int) int {
	if v < 0 || v >= len(t.entries) {
		return Infinity
	}
	return t.entries[v].Distance
}

// Predecessor returns the predecessor of v, or NoVertex.
func (t *Table) Predecessor(v int) int {
	if v < 0 || v >= len(t.entries) {
		return NoVertex
	}
	return t.entries[v].Predecessor
}

// Settled reports whether v was settled during the run.
func (t *Table) Settled(v int) bool {
	return v >= 0 && v < len(t.entries) && t.entries[v].Settled
}

// Reachable reports whether v has a finite distance.
func (t *Table) Reachable(v int) bool { return t.Distance(v) != Infinity }

// SettledCount returns how many vertices are settled.
func (t *Table) SettledCount() int {
	n := 0
	for _, e := range t.entries {
		if e.Settled {
			n++
		}
	}
	return n
}

// ReversePathTo returns the chain target, pred(target), ..., source.
//
// The walk stops with ErrNoPath when it reaches a vertex without a
// predecessor that is not the source. It never takes more than Len steps.
func (t *Table) ReversePathTo(target int) ([]int, error) {
	if target < 0 || target >= len(t.entries) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, target)
	}

	path := []int{target}
	for v := target; v != t.source; {
		v = t.entries[v].Predecessor
		if v == NoVertex || len(path) >= len(t.entries) {
			return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, t.source, target)
		}
		path = append(path, v)
	}
	return path, nil
}

// PathTo returns the shortest path source, ..., target.
func (t *Table) PathTo(target int) ([]int, error) {
	path, err := t.ReversePathTo(target)
	if err != nil {
		return nil, err
	}
	slices.Reverse(path)
	return path, nil
}

// Restore rebuilds a finished table from its entries, for example when a
// result is read back from a cache.
func Restore(source int, entries []Entry) (*Table, error) {
	if source < 0 || source >= len(entries) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrSourceOutOfRange, source, len(entries))
	}
	for v, e := range entries {
		if e.Distance < 0 {
			return nil, fmt.Errorf("vertex %d: negative distance %d", v, e.Distance)
		}
		if e.Predecessor < NoVertex || e.Predecessor >= len(entries) {
			return nil, fmt.Errorf("vertex %d: predecessor %w: %d", v, ErrVertexOutOfRange, e.Predecessor)
		}
	}
	return &Table{source: source, entries: slices.Clone(entries)}, nil
}
