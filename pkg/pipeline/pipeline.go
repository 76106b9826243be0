// Package pipeline provides the load → solve pipeline shared by the CLI and
// the HTTP API.
//
// By centralizing this logic, every entry point validates input, classifies
// errors, consults the result cache and reports statistics the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: read the graph text, check the source vertex against the header,
//     then build the graph. Any rejected edge fails the load.
//  2. Solve: run Dijkstra from the source, or restore the table from the
//     cache when the same graph bytes and source were solved before.
//
// Errors leaving this package are coded [sperrors.Error] values
// (INVALID_ARGUMENTS, IO_ERROR, GRAPH_CONSTRUCTION) with the underlying
// sentinel kept in the cause chain.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.ExecuteFile(ctx, "graph.txt", pipeline.Options{Source: 0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d := result.Table.Distance(3)
package pipeline

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/shortpath/pkg/dijkstra"
	sperrors "github.com/matzehuels/shortpath/pkg/errors"
	"github.com/matzehuels/shortpath/pkg/graph"
)

// DefaultTTL is how long solved results stay cached when the runner has no
// TTL of its own.
const DefaultTTL = 7 * 24 * time.Hour

// ErrTooManyVertices is the cause of the error returned when a graph header
// names more vertices than Options.MaxVertices allows.
var ErrTooManyVertices = errors.New("too many vertices")

// Report formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// ValidFormats lists the supported report formats in display order.
var ValidFormats = []string{FormatText, FormatJSON, FormatTable}

// ValidateFormat checks that a report format is supported.
func ValidateFormat(format string) error {
	return sperrors.ValidateChoice("format", format, ValidFormats...)
}

// Options contains all configuration for one pipeline run.
type Options struct {
	// Source is the vertex distances are measured from.
	Source int `json:"source"`

	// ParallelThreshold enables the parallel selection scan for graphs with
	// at least this many vertices. Zero keeps the scan sequential.
	ParallelThreshold int `json:"parallel_threshold,omitempty"`

	// SettleAll runs until every reachable vertex is settled instead of
	// stopping one vertex early. Distances are identical either way.
	SettleAll bool `json:"settle_all,omitempty"`

	// MaxVertices rejects graphs whose header names more vertices, before
	// anything is allocated for them. Zero means no limit.
	MaxVertices int `json:"max_vertices,omitempty"`

	// Refresh skips the cache lookup but still stores the new result.
	Refresh bool `json:"refresh,omitempty"`

	// Name labels the input in logs and hooks, e.g. the file path.
	Name string `json:"-"`

	// Observer, if set, receives every engine step.
	Observer func(dijkstra.StepEvent) `json:"-"`

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger `json:"-"`
}

// engineOptions translates o into engine options.
func (o Options) engineOptions() []dijkstra.Option {
	var opts []dijkstra.Option
	if o.ParallelThreshold > 0 {
		opts = append(opts, dijkstra.WithParallelScan(o.ParallelThreshold))
	}
	if o.SettleAll {
		opts = append(opts, dijkstra.WithSettleAll())
	}
	if o.Observer != nil {
		opts = append(opts, dijkstra.WithObserver(o.Observer))
	}
	return opts
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and API responses.
	RunID uuid.UUID

	// Graph is the loaded graph.
	Graph *graph.Graph

	// GraphHash is the SHA-256 of the raw graph bytes.
	GraphHash string

	// Table holds distances and predecessors from the source.
	Table *dijkstra.Table

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the solve stage hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int
	EdgeCount   int
	Settled     int
	Iterations  int // zero when the table came from the cache
	LoadTime    time.Duration
	SolveTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SolveHit bool // Whether the table came from cache
}
