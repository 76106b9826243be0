package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/shortpath/pkg/cache"
	"github.com/matzehuels/shortpath/pkg/dijkstra"
	sperrors "github.com/matzehuels/shortpath/pkg/errors"
	"github.com/matzehuels/shortpath/pkg/graph"
	graphio "github.com/matzehuels/shortpath/pkg/io"
	"github.com/matzehuels/shortpath/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// ExecuteFile reads the graph file at path and runs the pipeline on it.
func (r *Runner) ExecuteFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := sperrors.ValidateGraphPath(path); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, sperrors.Wrap(sperrors.ErrCodeIO, err, "could not open supplied graph file")
	}
	if opts.Name == "" {
		opts.Name = path
	}
	return r.Execute(ctx, raw, opts)
}

// Execute runs the complete load → solve pipeline on raw graph text.
func (r *Runner) Execute(ctx context.Context, raw []byte, opts Options) (*Result, error) {
	logger := r.logger(opts)
	result := &Result{
		RunID:     uuid.New(),
		GraphHash: cache.Hash(raw),
	}
	logger = logger.With("run", result.RunID.String()[:8])

	// Stage 1: Load
	loadStart := time.Now()
	g, err := r.Load(ctx, raw, opts)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.VertexCount = g.VertexCount()
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Info("loaded graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Solve
	solveStart := time.Now()
	t, iterations, hit, err := r.SolveWithCacheInfo(ctx, g, result.GraphHash, opts)
	if err != nil {
		return nil, err
	}
	result.Table = t
	result.Stats.SolveTime = time.Since(solveStart)
	result.Stats.Settled = t.SettledCount()
	result.Stats.Iterations = iterations
	result.CacheInfo.SolveHit = hit

	logger.Info("solved shortest paths",
		"source", opts.Source,
		"settled", result.Stats.Settled,
		"cached", hit,
		"duration", result.Stats.SolveTime)

	return result, nil
}

// Load builds the graph from raw text. The source vertex is checked against
// the header before any edge is read, so a bad source is reported ahead of
// a bad edge.
func (r *Runner) Load(ctx context.Context, raw []byte, opts Options) (*graph.Graph, error) {
	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Name)

	g, err := load(raw, opts.Source, opts.MaxVertices)

	vertices, edges := 0, 0
	if g != nil {
		vertices, edges = g.VertexCount(), g.EdgeCount()
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.Name, vertices, edges, time.Since(start), err)
	return g, err
}

func load(raw []byte, source, maxVertices int) (*graph.Graph, error) {
	n, err := graphio.ParseHeader(bufio.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return nil, classify(err)
	}
	if maxVertices > 0 && n > maxVertices {
		return nil, sperrors.Wrap(sperrors.ErrCodeInvalidArguments, ErrTooManyVertices,
			"graph has %d vertices, the limit is %d", n, maxVertices)
	}
	if err := sperrors.ValidateSource(source, n); err != nil {
		return nil, err
	}
	g, err := graphio.ReadGraph(bytes.NewReader(raw))
	if err != nil {
		return nil, classify(err)
	}
	return g, nil
}

// SolveWithCacheInfo runs Dijkstra on g with caching. graphHash identifies
// the raw bytes g was loaded from. It returns the table, the number of
// engine iterations (zero on a hit) and whether the cache was hit.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, g *graph.Graph, graphHash string, opts Options) (*dijkstra.Table, int, bool, error) {
	logger := r.logger(opts)
	cacheKey := r.Keyer.ResultKey(graphHash, opts.Source, opts.SettleAll)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if t, ok := r.lookup(ctx, cacheKey, g, opts.Source); ok {
			observability.Cache().OnCacheHit(ctx, "result")
			return t, 0, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	start := time.Now()
	observability.Pipeline().OnSolveStart(ctx, g.VertexCount(), opts.Source)

	e, err := dijkstra.NewEngine(g, opts.Source, opts.engineOptions()...)
	if err != nil {
		err = classify(err)
		observability.Pipeline().OnSolveComplete(ctx, 0, time.Since(start), err)
		return nil, 0, false, err
	}
	for e.Step() {
		if ctx.Err() != nil {
			err := sperrors.Wrap(sperrors.ErrCodeInternal, ctx.Err(), "solve interrupted")
			observability.Pipeline().OnSolveComplete(ctx, e.Table().SettledCount(), time.Since(start), err)
			return nil, 0, false, err
		}
	}
	t := e.Table()
	observability.Pipeline().OnSolveComplete(ctx, t.SettledCount(), time.Since(start), nil)

	var buf bytes.Buffer
	if err := graphio.WriteJSON(g, t, &buf); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, buf.Bytes(), r.TTL); err != nil {
			logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "result", buf.Len())
		}
	}

	return t, e.Iterations(), false, nil
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and keeps
// only the table.
func (r *Runner) Solve(ctx context.Context, g *graph.Graph, graphHash string, opts Options) (*dijkstra.Table, error) {
	t, _, _, err := r.SolveWithCacheInfo(ctx, g, graphHash, opts)
	return t, err
}

// lookup returns a cached table if one exists and fits g and source.
// Unreadable or mismatched entries are misses.
func (r *Runner) lookup(ctx context.Context, key string, g *graph.Graph, source int) (*dijkstra.Table, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}
	_, t, err := graphio.ReadJSON(bytes.NewReader(data))
	if err != nil || t.Len() != g.VertexCount() || t.Source() != source {
		r.Logger.Debug("discarding unusable cache entry", "key", key)
		return nil, false
	}
	return t, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

// classify turns package sentinels into coded errors. Errors that already
// carry a code pass through unchanged.
func classify(err error) error {
	if err == nil || sperrors.GetCode(err) != "" {
		return err
	}
	switch {
	case errors.Is(err, graphio.ErrNoHeader),
		errors.Is(err, graphio.ErrMalformedHeader),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return sperrors.Wrap(sperrors.ErrCodeIO, err, "could not read graph header")
	case errors.Is(err, graph.ErrInvalidVertexCount),
		errors.Is(err, graph.ErrVertexOutOfRange),
		errors.Is(err, graph.ErrSelfLoop),
		errors.Is(err, graph.ErrNonPositiveWeight),
		errors.Is(err, graph.ErrDuplicateEdge):
		return sperrors.Wrap(sperrors.ErrCodeGraphConstruction, err, "could not build graph")
	case errors.Is(err, dijkstra.ErrSourceOutOfRange):
		return sperrors.Wrap(sperrors.ErrCodeInvalidArguments, err, "supplied source vertex does not exist in graph")
	default:
		return sperrors.Wrap(sperrors.ErrCodeInternal, err, "unexpected failure")
	}
}
