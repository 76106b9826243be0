package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/shortpath/pkg/dijkstra"
	"github.com/matzehuels/shortpath/pkg/graph"
)

// Document is the JSON form of a graph and the shortest paths from one source.
type Document struct {
	Source      int            `json:"source"`
	VertexCount int            `json:"vertex_count"`
	Edges       []graph.Edge   `json:"edges"`
	Vertices    []VertexReport `json:"vertices"`
}

// VertexReport describes one vertex of a result. Distance and Predecessor
// are null when they do not exist; Path is empty for unreachable vertices.
type VertexReport struct {
	Vertex      int   `json:"vertex"`
	Distance    *int  `json:"distance"`
	Predecessor *int  `json:"predecessor"`
	Settled     bool  `json:"settled"`
	Path        []int `json:"path,omitempty"`
}

// NewDocument builds the JSON document for g and its result table t.
func NewDocument(g *graph.Graph, t *dijkstra.Table) Document {
	doc := Document{
		Source:      t.Source(),
		VertexCount: g.VertexCount(),
		Edges:       g.Edges(),
		Vertices:    make([]VertexReport, t.Len()),
	}
	for v, e := range t.Entries() {
		vr := VertexReport{Vertex: v, Settled: e.Settled}
		if e.Reachable() {
			d := e.Distance
			vr.Distance = &d
			vr.Path, _ = t.PathTo(v)
		}
		if e.Predecessor != dijkstra.NoVertex {
			p := e.Predecessor
			vr.Predecessor = &p
		}
		doc.Vertices[v] = vr
	}
	return doc
}

// WriteJSON encodes g and t as an indented Document.
func WriteJSON(g *graph.Graph, t *dijkstra.Table, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(g, t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a Document and rebuilds the graph and the table.
// Edges are re-added in document order, so neighbor order is preserved.
func ReadJSON(r io.Reader) (*graph.Graph, *dijkstra.Table, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}

	g, err := graph.New(doc.VertexCount)
	if err != nil {
		return nil, nil, err
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, nil, err
		}
	}

	if len(doc.Vertices) != doc.VertexCount {
		return nil, nil, fmt.Errorf("got %d vertices, want %d", len(doc.Vertices), doc.VertexCount)
	}
	entries := make([]dijkstra.Entry, len(doc.Vertices))
	for i, vr := range doc.Vertices {
		e := dijkstra.Entry{Distance: dijkstra.Infinity, Predecessor: dijkstra.NoVertex, Settled: vr.Settled}
		if vr.Distance != nil {
			e.Distance = *vr.Distance
		}
		if vr.Predecessor != nil {
			e.Predecessor = *vr.Predecessor
		}
		entries[i] = e
	}
	t, err := dijkstra.Restore(doc.Source, entries)
	if err != nil {
		return nil, nil, err
	}
	return g, t, nil
}

// WriteText writes g in the graph file format, edges in insertion order.
// Reading the output back yields an identical graph.
func WriteText(g *graph.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.VertexCount())
	for _, e := range g.Edges() {
		fmt.Fprintln(bw, e)
	}
	return bw.Flush()
}

// ExportText writes g to a graph file at path.
func ExportText(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteText(g, f)
}
