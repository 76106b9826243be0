package io_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/shortpath/pkg/io"
)

func ExampleReadGraph() {
	g, err := io.ReadGraph(strings.NewReader("3\n0,1,2\n1,2,x\n"))
	fmt.Println(g, err)

	g, _ = io.ReadGraph(strings.NewReader("3\n0,1,2\n\n1,2,7\n"))
	_ = io.WriteText(g, os.Stdout)
	// Output:
	// <nil> line 3: edge 1,2,0: edge weight must be positive
	// 3
	// 0,1,2
	// 1,2,7
}
