package graph

import (
	"errors"
	"slices"
	"testing"
)

func collect(g *Graph, v int) []Neighbor {
	var out []Neighbor
	for w, weight := range g.Neighbors(v) {
		out = append(out, Neighbor{Vertex: w, Weight: weight})
	}
	return out
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr error
	}{
		{"single vertex", 1, nil},
		{"soft max", SoftMaxVertices, nil},
		{"beyond soft max", SoftMaxVertices + 1, nil},
		{"zero", 0, ErrInvalidVertexCount},
		{"negative", -3, ErrInvalidVertexCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%d) error = %v, want %v", tt.n, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if g.VertexCount() != tt.n {
				t.Errorf("VertexCount() = %d, want %d", g.VertexCount(), tt.n)
			}
			if g.EdgeCount() != 0 {
				t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
			}
		})
	}
}

func TestAddEdgeRejects(t *testing.T) {
	tests := []struct {
		name           string
		v1, v2, weight int
		wantErr        error
	}{
		{"negative v1", -1, 1, 5, ErrVertexOutOfRange},
		{"v2 too large", 0, 4, 5, ErrVertexOutOfRange},
		{"self-loop", 2, 2, 5, ErrSelfLoop},
		{"zero weight", 0, 1, 0, ErrNonPositiveWeight},
		{"negative weight", 0, 1, -7, ErrNonPositiveWeight},
		{"out of range wins over self-loop", 9, 9, 5, ErrVertexOutOfRange},
		{"self-loop wins over weight", 1, 1, 0, ErrSelfLoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := New(4)
			err := g.AddEdge(tt.v1, tt.v2, tt.weight)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge(%d,%d,%d) error = %v, want %v", tt.v1, tt.v2, tt.weight, err, tt.wantErr)
			}
			var ee *EdgeError
			if !errors.As(err, &ee) {
				t.Fatalf("error %T is not *EdgeError", err)
			}
			if ee.Edge != (Edge{From: tt.v1, To: tt.v2, Weight: tt.weight}) {
				t.Errorf("EdgeError.Edge = %+v", ee.Edge)
			}
			if g.EdgeCount() != 0 {
				t.Errorf("rejected edge was stored")
			}
		})
	}
}

func TestAddEdgeDuplicate(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 int
	}{
		{"same order", 0, 1},
		{"reverse order", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := New(3)
			if err := g.AddEdge(0, 1, 3); err != nil {
				t.Fatalf("first AddEdge: %v", err)
			}
			err := g.AddEdge(tt.v1, tt.v2, 8)
			if !errors.Is(err, ErrDuplicateEdge) {
				t.Fatalf("error = %v, want ErrDuplicateEdge", err)
			}
			if g.Degree(0) != 1 || g.Degree(1) != 1 {
				t.Errorf("degrees = %d,%d, want 1,1", g.Degree(0), g.Degree(1))
			}
			if w, _ := g.Weight(0, 1); w != 3 {
				t.Errorf("weight changed to %d", w)
			}
		})
	}
}

func TestAddEdgeSymmetric(t *testing.T) {
	g, _ := New(3)
	if err := g.AddEdge(0, 2, 7); err != nil {
		t.Fatal(err)
	}

	if got := collect(g, 0); !slices.Equal(got, []Neighbor{{2, 7}}) {
		t.Errorf("Neighbors(0) = %v", got)
	}
	if got := collect(g, 2); !slices.Equal(got, []Neighbor{{0, 7}}) {
		t.Errorf("Neighbors(2) = %v", got)
	}
	if got := collect(g, 1); len(got) != 0 {
		t.Errorf("Neighbors(1) = %v, want empty", got)
	}
	if !g.EdgeExists(0, 2) || !g.EdgeExists(2, 0) {
		t.Error("EdgeExists should hold in both directions")
	}
	if g.EdgeExists(0, 1) {
		t.Error("EdgeExists(0,1) should be false")
	}
}

func TestNeighborsReverseInsertionOrder(t *testing.T) {
	g, _ := New(4)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(3, 0, 9)

	want := []Neighbor{{3, 9}, {2, 1}, {1, 4}}
	if got := collect(g, 0); !slices.Equal(got, want) {
		t.Errorf("Neighbors(0) = %v, want %v", got, want)
	}

	// Restartable: a second pass yields the same sequence.
	if got := collect(g, 0); !slices.Equal(got, want) {
		t.Errorf("second pass = %v, want %v", got, want)
	}
}

func TestNeighborsEarlyBreak(t *testing.T) {
	g, _ := New(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(0, 3, 1)

	count := 0
	for range g.Neighbors(0) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestNeighborsOutOfRange(t *testing.T) {
	g, _ := New(2)
	if got := collect(g, 5); len(got) != 0 {
		t.Errorf("Neighbors(5) = %v, want empty", got)
	}
	if got := collect(g, -1); len(got) != 0 {
		t.Errorf("Neighbors(-1) = %v, want empty", got)
	}
}

func TestEdges(t *testing.T) {
	g, _ := New(3)
	_ = g.AddEdge(2, 1, 5)
	_ = g.AddEdge(0, 1, 2)

	want := []Edge{{2, 1, 5}, {0, 1, 2}}
	got := g.Edges()
	if !slices.Equal(got, want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}

	got[0].Weight = 100
	if g.Edges()[0].Weight != 5 {
		t.Error("Edges() should return a copy")
	}
}

func TestWeight(t *testing.T) {
	g, _ := New(3)
	_ = g.AddEdge(0, 1, 6)

	if w, ok := g.Weight(1, 0); !ok || w != 6 {
		t.Errorf("Weight(1,0) = %d,%v, want 6,true", w, ok)
	}
	if _, ok := g.Weight(0, 2); ok {
		t.Error("Weight(0,2) should not exist")
	}
}

func TestEdgeErrorMessage(t *testing.T) {
	g, _ := New(2)
	err := g.AddEdge(0, 0, 1)
	if got, want := err.Error(), "edge 0,0,1: self-loop"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
