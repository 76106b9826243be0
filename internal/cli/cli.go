package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shortpath/pkg/buildinfo"
	"github.com/matzehuels/shortpath/pkg/cache"
	"github.com/matzehuels/shortpath/pkg/config"
	sperrors "github.com/matzehuels/shortpath/pkg/errors"
	"github.com/matzehuels/shortpath/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

const usageLine = "shortpath <graphFile> <sourceVertex>"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The configuration file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand it prints the shortest path report.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string
	opts := reportOpts{format: pipeline.FormatText}

	root := &cobra.Command{
		Use:   usageLine,
		Short: "Shortpath computes single-source shortest paths in weighted graphs",
		Long: `Shortpath reads an undirected weighted graph from a text file, runs
Dijkstra's algorithm from a source vertex and prints the adjacency list
followed by the distance and path to every vertex.

The graph file starts with the vertex count on the first line, followed by
one "v1,v2,weight" edge per line.`,
		Version:       buildinfo.Version,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd, configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/shortpath/config.toml)")
	root.Flags().StringVarP(&opts.format, "format", "f", opts.format, "report format: text, json, table")
	root.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	root.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached result exists")
	root.Flags().BoolVar(&opts.settleAll, "settle-all", false, "settle every vertex instead of stopping one early")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies its log level and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.SetLogLevel(cfg.LogLevel())
	registerLogHooks(c.Logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// exactArgs is cobra.ExactArgs returning an INVALID_ARGUMENTS error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return sperrors.New(sperrors.ErrCodeInvalidArguments,
				"bad inputs: expected %d arguments, got %d (usage: %s)", n, len(args), cmd.UseLine())
		}
		return nil
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	store, keyer := c.newCache(ctx, noCache)
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	if c.Config.Cache.TTL > 0 {
		runner.TTL = c.Config.Cache.TTL
	}
	return runner
}

// newCache opens the configured cache backend. A backend that cannot be
// opened disables caching with a warning rather than failing the run.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	cfg := c.Config.Cache
	switch cfg.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "addr", cfg.RedisAddr, "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, cache.NewScopedKeyer(cache.NewDefaultKeyer(), cfg.RedisPrefix)
	default:
		dir, err := c.Config.CacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("cache directory unusable, caching disabled", "dir", dir, "error", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	}
}

// pipelineOptions builds run options for a source vertex using the engine
// settings from the configuration.
func (c *CLI) pipelineOptions(ctx context.Context, source int) pipeline.Options {
	return pipeline.Options{
		Source:            source,
		ParallelThreshold: c.Config.Engine.ParallelThreshold,
		Logger:            loggerFromContext(ctx),
	}
}

// solveFile parses the source argument and runs the pipeline on a graph file.
func (c *CLI) solveFile(ctx context.Context, path, sourceArg string, noCache bool, tune func(*pipeline.Options)) (*pipeline.Result, error) {
	source, err := sperrors.ParseVertexArg(sourceArg)
	if err != nil {
		return nil, err
	}

	runner := c.newRunner(ctx, noCache)
	defer runner.Close()

	opts := c.pipelineOptions(ctx, source)
	if tune != nil {
		tune(&opts)
	}
	return runner.ExecuteFile(ctx, path, opts)
}
