// Package io reads graphs from the plain-text graph format and writes graphs
// and shortest-path results back out.
//
// # Graph Format
//
// The first line holds the vertex count. Every following line holds one edge
// as three comma-separated integers:
//
//	4
//	0,1,4
//	0,2,1
//	2,1,1
//	1,3,1
//
// Only the leading run of digits and commas on the header line is looked at,
// and only its first number is used; "99,1000" declares 99 vertices. Anything
// after that run is ignored.
//
// Edge lines are parsed leniently, the way C's atoi would: a token that is
// not a number reads as 0, missing tokens read as 0 and extra tokens are
// ignored. A malformed line is therefore not a parse error; it usually turns
// into an edge that [graph.Graph.AddEdge] rejects. Whitespace-only lines are
// skipped.
//
// [MaxHeaderLine] and [MaxEdgeLine] record the line lengths the format was
// designed for. Lines are read whole, so longer lines are not truncated.
//
// # Loading
//
// [ReadGraph] parses the header, creates the graph and adds every edge in
// file order. The first rejected edge aborts the whole load; there is no
// partial result. [ImportGraph] does the same for a file path.
//
//	g, err := io.ImportGraph("graph.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// [WriteText] writes a graph back in the input format. [WriteJSON] encodes a
// graph together with a [dijkstra.Table] as a [Document]; [ReadJSON] decodes
// it again, which is how results are cached.
package io
