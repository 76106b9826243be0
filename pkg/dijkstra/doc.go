// Package dijkstra computes single-source shortest paths over a [graph.Graph]
// with the classic label-setting algorithm.
//
// # Overview
//
// The engine keeps one [Entry] per vertex in a [Table]: the best known
// distance from the source, the predecessor on that path, and whether the
// vertex is settled. Each iteration selects the unsettled vertex with the
// smallest finite distance, settles it, and relaxes the edges to its unsettled
// neighbors.
//
// Selection is a linear scan over all vertices rather than a heap extraction,
// so a run costs O(V² + E). Ties go to the lowest vertex index: the scan keeps
// the first strict minimum it sees.
//
// # Usage
//
//	g, _ := graph.New(4)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(0, 2, 1)
//	_ = g.AddEdge(2, 1, 1)
//	_ = g.AddEdge(1, 3, 1)
//
//	t, err := dijkstra.Run(g, 0)
//	if err != nil {
//	    return err
//	}
//	path, _ := t.PathTo(3) // [0 2 1 3]
//
// [Engine] exposes the individual steps ([Engine.Select], [Engine.Relax]) for
// callers that want to watch the algorithm progress.
//
// # Termination
//
// The loop stops as soon as VertexCount-1 vertices are settled, so the vertex
// selected last is left unsettled. Its distance is already final: every
// neighbor that could improve it has been settled and relaxed. [WithSettleAll]
// runs the extra iteration for callers that want every reachable vertex
// marked settled; distances and predecessors are identical either way.
//
// The loop also stops when no unsettled vertex has a finite distance. Vertices
// in other components keep distance [Infinity] and predecessor [NoVertex].
//
// # Paths
//
// [Table.PathTo] walks predecessor links back from a target. An unreachable
// target yields [ErrNoPath] instead of an endless walk.
//
// # Concurrency
//
// A run is synchronous and owns its Table. [WithParallelScan] splits the
// selection scan across goroutines for large graphs; the selected vertex is
// the same as in a sequential scan.
package dijkstra
