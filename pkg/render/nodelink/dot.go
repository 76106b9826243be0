package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/shortpath/pkg/dijkstra"
	"github.com/matzehuels/shortpath/pkg/graph"
	"github.com/matzehuels/shortpath/pkg/render"
)

// Output formats accepted by [Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Target, when it names a reachable vertex, highlights the path from
	// the source to it. Use dijkstra.NoVertex for none.
	Target int

	// HideDistances drops distances from vertex labels.
	HideDistances bool
}

// DefaultOptions returns options with no highlighted target.
func DefaultOptions() Options {
	return Options{Target: dijkstra.NoVertex}
}

// ToDOT converts g and its result table t to Graphviz DOT source.
func ToDOT(g *graph.Graph, t *dijkstra.Table, opts Options) string {
	onPath := pathEdges(t, opts.Target)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=12, color=grey50];\n")
	buf.WriteString("\n")

	for v := range g.VertexCount() {
		attrs := []string{fmt.Sprintf("label=%q", vertexLabel(t, v, opts.HideDistances))}
		switch {
		case v == t.Source():
			attrs = append(attrs, "fillcolor=\"#2b6cb0\"", "fontcolor=white", "penwidth=2")
		case !t.Reachable(v):
			attrs = append(attrs, "fillcolor=lightgrey", "fontcolor=grey40", "style=\"filled,dashed\"")
		case v == opts.Target:
			attrs = append(attrs, "fillcolor=\"#f6ad55\"", "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := []string{fmt.Sprintf("label=%q", strconv.Itoa(e.Weight))}
		switch {
		case onPath[makeKey(e.From, e.To)]:
			attrs = append(attrs, "color=\"#dd6b20\"", "penwidth=4")
		case inTree(t, e):
			attrs = append(attrs, "color=\"#2b6cb0\"", "penwidth=2.5")
		}
		fmt.Fprintf(&buf, "  %d -- %d [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexLabel(t *dijkstra.Table, v int, hideDistance bool) string {
	if hideDistance {
		return strconv.Itoa(v)
	}
	d := render.FormatDistance(t.Distance(v))
	if d == "inf" {
		d = "∞"
	}
	return fmt.Sprintf("%d\n%s", v, d)
}

// inTree reports whether e is a predecessor link of the result.
func inTree(t *dijkstra.Table, e graph.Edge) bool {
	return t.Predecessor(e.To) == e.From || t.Predecessor(e.From) == e.To
}

type edgeKey struct{ lo, hi int }

func makeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func pathEdges(t *dijkstra.Table, target int) map[edgeKey]bool {
	path, err := t.PathTo(target)
	if err != nil {
		return nil
	}
	keys := make(map[edgeKey]bool, len(path))
	for i := 1; i < len(path); i++ {
		keys[makeKey(path[i-1], path[i])] = true
	}
	return keys
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	svg, err := Render(dot, FormatSVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// Render renders a DOT graph in the given format. FormatDOT returns the
// source unchanged.
func Render(dot, format string) ([]byte, error) {
	var gvFormat graphviz.Format
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		gvFormat = graphviz.SVG
	case FormatPNG:
		gvFormat = graphviz.PNG
	default:
		return nil, fmt.Errorf("unsupported format %q (want dot, svg or png)", format)
	}

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
