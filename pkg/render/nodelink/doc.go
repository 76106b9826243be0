// Package nodelink renders a weighted graph and its shortest path tree as a
// node-link diagram.
//
// # Overview
//
// Vertices appear as circles labelled with their index and distance from
// the source; edges carry their weight. The source is filled, edges of the
// shortest path tree are drawn bold, and unreachable vertices are greyed
// out. Optionally one target's path is highlighted on top.
//
// # Usage
//
// Convert to DOT, then render:
//
//	dot := nodelink.ToDOT(g, t, nodelink.Options{Target: 3})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.Render(dot, nodelink.FormatPNG)
//
// # DOT Format
//
// The [ToDOT] function produces undirected Graphviz source that can be:
//
//   - Rendered directly via [RenderSVG] or [Render]
//   - Saved and processed with external Graphviz tools
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering; no Graphviz installation is needed.
package nodelink
