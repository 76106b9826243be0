package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shortpath/pkg/dijkstra"
	"github.com/matzehuels/shortpath/pkg/graph"
	"github.com/matzehuels/shortpath/pkg/render"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

var detailBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorDim).
	Padding(0, 1)

// exploreCommand creates the interactive explorer command.
func (c *CLI) exploreCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "explore <graphFile> <sourceVertex>",
		Short: "Browse distances and paths in an interactive terminal UI",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), cmd, args[0], args[1], noCache)
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, cmd *cobra.Command, path, sourceArg string, noCache bool) error {
	result, err := c.solveFile(ctx, path, sourceArg, noCache, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewExploreModel(result.Graph, result.Table),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}

// =============================================================================
// ExploreModel - Interactive vertex browser
// =============================================================================

// ExploreModel is the bubbletea model listing every vertex with its
// distance. The vertex under the cursor is shown in detail: distance,
// predecessor, path from the source and neighbors.
type ExploreModel struct {
	Graph  *graph.Graph
	Table  *dijkstra.Table
	Cursor int
	Height int
	Offset int
}

// NewExploreModel creates an explorer positioned on the source vertex.
func NewExploreModel(g *graph.Graph, t *dijkstra.Table) ExploreModel {
	m := ExploreModel{Graph: g, Table: t, Height: 15}
	m.moveTo(t.Source())
	return m
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveTo(m.Cursor - 1)
		case "down", "j":
			m.moveTo(m.Cursor + 1)
		case "pgup":
			m.moveTo(m.Cursor - m.Height)
		case "pgdown":
			m.moveTo(m.Cursor + m.Height)
		case "home", "g":
			m.moveTo(0)
		case "end", "G":
			m.moveTo(m.Table.Len() - 1)
		case "s":
			m.moveTo(m.Table.Source())
		case "p":
			if pred := m.Table.Predecessor(m.Cursor); pred != dijkstra.NoVertex {
				m.moveTo(pred)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.moveTo(m.Cursor)
	}
	return m, nil
}

// moveTo places the cursor on v, clamped to the vertex range, and scrolls
// the list so the cursor stays visible.
func (m *ExploreModel) moveTo(v int) {
	n := m.Table.Len()
	m.Cursor = min(max(v, 0), n-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Shortest paths from vertex %d", m.Table.Source())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  p predecessor  s source  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.Table.Len())
	var list strings.Builder
	for v := m.Offset; v < end; v++ {
		cursor := "  "
		if v == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-6d %8s", cursor, v, render.FormatDistance(m.Table.Distance(v)))
		switch {
		case v == m.Cursor:
			list.WriteString(listSelectedStyle.Render(line))
		case !m.Table.Reachable(v):
			list.WriteString(listDimStyle.Render(line))
		default:
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", m.detail()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Table.Len())))

	return b.String()
}

// detail renders the box describing the vertex under the cursor.
func (m ExploreModel) detail() string {
	v := m.Cursor
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Vertex " + strconv.Itoa(v)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("distance  ") + StyleNumber.Render(render.FormatDistance(m.Table.Distance(v))))
	b.WriteString("\n")

	via := "-"
	if pred := m.Table.Predecessor(v); pred != dijkstra.NoVertex {
		via = strconv.Itoa(pred)
	}
	b.WriteString(StyleDim.Render("via       ") + StyleValue.Render(via))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("path      ") + StylePath.Render(render.FormatPath(m.Table, v)))
	b.WriteString("\n")

	var neighbors []string
	for n, w := range m.Graph.Neighbors(v) {
		neighbors = append(neighbors, fmt.Sprintf("%d (%d)", n, w))
	}
	if len(neighbors) == 0 {
		neighbors = []string{"none"}
	}
	b.WriteString(StyleDim.Render("neighbors ") + StyleValue.Render(strings.Join(neighbors, ", ")))

	return detailBoxStyle.Render(b.String())
}
