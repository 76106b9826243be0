package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/shortpath/pkg/dijkstra"
	"github.com/matzehuels/shortpath/pkg/graph"
)

// NoPath is printed in place of a path for unreachable vertices.
const NoPath = "no path"

// WriteAdjacency writes the adjacency dump of g, framed by blank lines:
//
//	0 : 2 (1) -> 1 (4) -> NULL
func WriteAdjacency(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("\n")
	for v := range g.VertexCount() {
		fmt.Fprintf(bw, "%d : ", v)
		for n, weight := range g.Neighbors(v) {
			fmt.Fprintf(bw, "%d (%d) -> ", n, weight)
		}
		bw.WriteString("NULL\n")
	}
	bw.WriteString("\n")
	return bw.Flush()
}

// WriteReport writes, for every vertex, its distance from the source and
// the path walked back to the source, followed by a blank line:
//
//	Vertex 3: 3
//	3 -> 1 -> 2 -> 0
//
// Unreachable vertices get "inf" and [NoPath].
func WriteReport(w io.Writer, t *dijkstra.Table) error {
	bw := bufio.NewWriter(w)
	for v := range t.Len() {
		fmt.Fprintf(bw, "Vertex %d: %s\n", v, FormatDistance(t.Distance(v)))
		fmt.Fprintln(bw, FormatReversePath(t, v))
	}
	bw.WriteString("\n")
	return bw.Flush()
}

// FormatDistance returns d in decimal, or "inf" for [dijkstra.Infinity].
func FormatDistance(d int) string {
	if d == dijkstra.Infinity {
		return "inf"
	}
	return strconv.Itoa(d)
}

// FormatReversePath returns the path from v back to the source joined by
// " -> ", or [NoPath].
func FormatReversePath(t *dijkstra.Table, v int) string {
	path, err := t.ReversePathTo(v)
	if err != nil {
		return NoPath
	}
	return joinPath(path)
}

// FormatPath returns the path from the source to v joined by " -> ", or
// [NoPath].
func FormatPath(t *dijkstra.Table, v int) string {
	path, err := t.PathTo(v)
	if err != nil {
		return NoPath
	}
	return joinPath(path)
}

func joinPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " -> ")
}
