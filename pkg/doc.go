// Package pkg provides the core libraries for shortpath, a single-source
// shortest path tool for undirected weighted graphs.
//
// # Overview
//
// The pkg directory is organized into three main areas:
//
//  1. Domain logic: [graph] and [dijkstra]
//  2. Input and output: [io] and [render]
//  3. Infrastructure: [pipeline], [cache], [config], [errors], [observability]
//     and [server]
//
// # Architecture
//
// The typical data flow:
//
//	graph file ("<n>" then "v1,v2,w" lines)
//	         ↓
//	    [io] package (parse header and edges)
//	         ↓
//	    [graph] package (validated adjacency list)
//	         ↓
//	    [dijkstra] package (distance table)
//	         ↓
//	    text report, JSON, table, DOT/SVG/PNG
//
// # Quick Start
//
//	g, err := io.ImportGraph("graph.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t, err := dijkstra.Run(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	render.WriteReport(os.Stdout, t)
//
// The [pipeline] package wraps these steps with source validation, coded
// errors and result caching; the CLI and the HTTP [server] both go through it.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/dijkstra/... # Specific package
//	go test -run Example ./... # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/graph
// [dijkstra]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/dijkstra
// [io]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/observability
// [server]: https://pkg.go.dev/github.com/matzehuels/shortpath/pkg/server
package pkg
