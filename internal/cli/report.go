package cli

import (
	"context"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/shortpath/pkg/dijkstra"
	sperrors "github.com/matzehuels/shortpath/pkg/errors"
	graphio "github.com/matzehuels/shortpath/pkg/io"
	"github.com/matzehuels/shortpath/pkg/pipeline"
	"github.com/matzehuels/shortpath/pkg/render"
)

// reportOpts holds the flags of the root command.
type reportOpts struct {
	format    string // text, json or table
	noCache   bool   // bypass the result cache entirely
	refresh   bool   // skip the cache lookup but store the result
	settleAll bool   // settle every vertex
}

// runReport solves the graph file from the source vertex and writes the
// report in the requested format.
func (c *CLI) runReport(ctx context.Context, w io.Writer, path, sourceArg string, opts reportOpts) error {
	if err := pipeline.ValidateFormat(opts.format); err != nil {
		return err
	}

	result, err := c.solveFile(ctx, path, sourceArg, opts.noCache, func(o *pipeline.Options) {
		o.Refresh = opts.refresh
		o.SettleAll = opts.settleAll
	})
	if err != nil {
		return err
	}
	return writeReport(w, result, opts.format)
}

// writeReport writes result to w in format.
func writeReport(w io.Writer, result *pipeline.Result, format string) error {
	var err error
	switch format {
	case pipeline.FormatJSON:
		err = graphio.WriteJSON(result.Graph, result.Table, w)
	case pipeline.FormatTable:
		err = writeTable(w, result)
	default:
		if err = render.WriteAdjacency(w, result.Graph); err == nil {
			err = render.WriteReport(w, result.Table)
		}
	}
	if err != nil {
		return sperrors.Wrap(sperrors.ErrCodeIO, err, "could not write report")
	}
	return nil
}

// writeTable renders the per-vertex report as a styled table followed by
// the run statistics.
func writeTable(w io.Writer, result *pipeline.Result) error {
	t := result.Table
	rows := make([][]string, 0, t.Len())
	for v := range t.Len() {
		pred := "-"
		if p := t.Predecessor(v); p != dijkstra.NoVertex {
			pred = strconv.Itoa(p)
		}
		rows = append(rows, []string{
			strconv.Itoa(v),
			render.FormatDistance(t.Distance(v)),
			pred,
			render.FormatPath(t, v),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Vertex", "Distance", "Via", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if row < 0 || row >= len(rows) {
				return base
			}
			v := row
			switch {
			case v == t.Source():
				return base.Foreground(colorCyan).Bold(true)
			case !t.Reachable(v):
				return base.Foreground(colorDim)
			case col == 3:
				return base.Foreground(colorOrange)
			}
			return base
		})

	if _, err := io.WriteString(w, StyleTitle.Render("Shortest paths from vertex "+strconv.Itoa(t.Source()))+"\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, tbl.Render()+"\n"); err != nil {
		return err
	}
	printStats(w, result.Stats.VertexCount, result.Stats.EdgeCount, result.Stats.Settled, result.CacheInfo.SolveHit)
	return nil
}
