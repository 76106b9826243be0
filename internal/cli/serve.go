package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shortpath/pkg/server"
)

// serveCommand creates the command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the shortest path API over HTTP",
		Long: `Serve starts an HTTP server exposing the shortest path pipeline.

Routes:
  GET  /healthz
  GET  /v1/version
  POST /v1/shortest-paths?source=N     (body: graph file)
  POST /v1/render?source=N&format=svg  (body: graph file)

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.Config.Server.Addr = addr
			}
			return c.runServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context) error {
	runner := c.newRunner(ctx, false)
	defer runner.Close()

	var health server.HealthService
	if p, ok := runner.Cache.(server.Pinger); ok {
		health = server.CacheHealthService{Cache: p}
	}

	handler := server.NewRouter(c.Logger, server.RouterDependencies{
		Runner:       runner,
		Health:       health,
		MaxBodyBytes: c.Config.Server.MaxBodyBytes,
		MaxVertices:  c.Config.Server.MaxVertices,
	})
	return server.New(c.Logger, c.Config.Server, handler).Run(ctx)
}
