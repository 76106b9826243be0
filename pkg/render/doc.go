// Package render turns a graph and its shortest path table into output.
//
// # Overview
//
// This package writes the plain-text forms used by the command line:
//
//   - [WriteAdjacency]: one line per vertex listing its neighbors in
//     adjacency order, ending in NULL
//   - [WriteReport]: per-vertex distance and the path back to the source
//
// Both formats are stable and meant to be diffed against expected output.
//
//	render.WriteAdjacency(os.Stdout, g)
//	render.WriteReport(os.Stdout, t)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the graph with Graphviz, highlighting
// the shortest path tree.
//
//	dot := nodelink.ToDOT(g, t, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [nodelink]: github.com/matzehuels/shortpath/pkg/render/nodelink
package render
