package dijkstra_test

import (
	"fmt"

	"github.com/matzehuels/shortpath/pkg/dijkstra"
	"github.com/matzehuels/shortpath/pkg/graph"
)

func ExampleRun() {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)
	_ = g.AddEdge(1, 3, 1)

	t, _ := dijkstra.Run(g, 0)
	for v := range t.Len() {
		path, _ := t.PathTo(v)
		fmt.Println(v, t.Distance(v), path)
	}
	// Output:
	// 0 0 [0]
	// 1 2 [0 2 1]
	// 2 1 [0 2]
	// 3 3 [0 2 1 3]
}

func ExampleTable_PathTo_unreachable() {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 2)

	t, _ := dijkstra.Run(g, 0)
	_, err := t.PathTo(2)
	fmt.Println(err)
	// Output:
	// no path: 0 -> 2
}
