package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shortpath/pkg/dijkstra"
	sperrors "github.com/matzehuels/shortpath/pkg/errors"
	"github.com/matzehuels/shortpath/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string // output file path; derived from the graph file when empty
	format        string // dot, svg or png; inferred from the output extension when empty
	target        int    // vertex whose path is highlighted, or dijkstra.NoVertex
	hideDistances bool   // drop distances from vertex labels
	noCache       bool
}

var renderFormats = []string{nodelink.FormatDOT, nodelink.FormatSVG, nodelink.FormatPNG}

// renderCommand creates the render command for node-link diagrams of the
// shortest path tree.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{target: dijkstra.NoVertex}

	cmd := &cobra.Command{
		Use:   "render <graphFile> <sourceVertex>",
		Short: "Render the shortest path tree as a Graphviz diagram",
		Long: `Render draws the graph with the shortest path tree from the source
highlighted. Unreachable vertices are drawn dashed. With --target the path
from the source to that vertex is emphasised.`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <graphFile>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg (default), png")
	cmd.Flags().IntVarP(&opts.target, "target", "t", opts.target, "highlight the path to this vertex")
	cmd.Flags().BoolVar(&opts.hideDistances, "hide-distances", false, "omit distances from vertex labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, w io.Writer, path, sourceArg string, opts renderOpts) error {
	format, output := resolveRenderTarget(path, opts.output, opts.format)
	if err := sperrors.ValidateChoice("format", format, renderFormats...); err != nil {
		return err
	}

	result, err := c.solveFile(ctx, path, sourceArg, opts.noCache, nil)
	if err != nil {
		return err
	}
	if opts.target != dijkstra.NoVertex && !result.Graph.HasVertex(opts.target) {
		return sperrors.New(sperrors.ErrCodeInvalidArguments,
			"target vertex %d does not exist in graph (vertices 0..%d)", opts.target, result.Graph.VertexCount()-1)
	}

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinner(ctx, w, "Rendering "+filepath.Base(output)+"...")
	spinner.Start()

	dot := nodelink.ToDOT(result.Graph, result.Table, nodelink.Options{
		Target:        opts.target,
		HideDistances: opts.hideDistances,
	})
	var data []byte
	if format == nodelink.FormatSVG {
		data, err = nodelink.RenderSVG(dot)
	} else {
		data, err = nodelink.Render(dot, format)
	}
	if err != nil {
		spinner.StopWithError("Render failed")
		return sperrors.Wrap(sperrors.ErrCodeInternal, err, "could not render graph")
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		spinner.StopWithError("Write failed")
		return sperrors.Wrap(sperrors.ErrCodeIO, err, "could not write %s", output)
	}

	spinner.StopWithSuccess("Rendered shortest path tree")
	printFile(w, output)
	prog.done("rendered " + output)
	return nil
}

// resolveRenderTarget fills in the format from the output extension, or the
// output path from the graph file name, whichever is missing.
func resolveRenderTarget(graphPath, output, format string) (string, string) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "" {
			format = nodelink.FormatSVG
		}
	}
	if output == "" {
		base := strings.TrimSuffix(filepath.Base(graphPath), filepath.Ext(graphPath))
		output = base + "." + format
	}
	return format, output
}
