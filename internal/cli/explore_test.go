package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/shortpath/pkg/dijkstra"
	"github.com/matzehuels/shortpath/pkg/graph"
)

func exploreScenario(t *testing.T, source int) ExploreModel {
	t.Helper()
	g, err := graph.New(5)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range [][3]int{{0, 1, 4}, {0, 2, 1}, {2, 1, 1}, {1, 3, 1}} {
		if err := g.AddEdge(e[0], e[1], e[2]); err != nil {
			t.Fatal(err)
		}
	}
	tbl, err := dijkstra.Run(g, source)
	if err != nil {
		t.Fatal(err)
	}
	return NewExploreModel(g, tbl)
}

func press(m ExploreModel, keys ...tea.KeyMsg) ExploreModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(ExploreModel)
	}
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExploreStartsOnSource(t *testing.T) {
	m := exploreScenario(t, 2)
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want source 2", m.Cursor)
	}
}

func TestExploreNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}}, 1},
		{"j twice", []tea.KeyMsg{runeKey("j"), runeKey("j")}, 2},
		{"up clamps at zero", []tea.KeyMsg{{Type: tea.KeyUp}}, 0},
		{"end", []tea.KeyMsg{runeKey("G")}, 4},
		{"down clamps at last", []tea.KeyMsg{runeKey("G"), {Type: tea.KeyDown}}, 4},
		{"home", []tea.KeyMsg{runeKey("G"), runeKey("g")}, 0},
		{"predecessor chain", []tea.KeyMsg{runeKey("j"), runeKey("j"), runeKey("j"), runeKey("p")}, 1},
		{"predecessor of source stays", []tea.KeyMsg{runeKey("p")}, 0},
		{"back to source", []tea.KeyMsg{runeKey("G"), runeKey("s")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(exploreScenario(t, 0), tt.keys...)
			if m.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", m.Cursor, tt.want)
			}
		})
	}
}

func TestExploreScrollsWithCursor(t *testing.T) {
	m := exploreScenario(t, 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(ExploreModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want minimum 5", m.Height)
	}

	m.Height = 2
	m = press(m, runeKey("G"))
	if m.Offset != 3 {
		t.Errorf("Offset = %d, want 3 so vertex 4 is visible", m.Offset)
	}
	m = press(m, runeKey("g"))
	if m.Offset != 0 {
		t.Errorf("Offset = %d, want 0 after jumping home", m.Offset)
	}
}

func TestExploreView(t *testing.T) {
	m := press(exploreScenario(t, 0), runeKey("j"), runeKey("j"), runeKey("j"))
	view := m.View()

	for _, want := range []string{
		"Shortest paths from vertex 0",
		"Vertex 3",
		"0 -> 2 -> 1 -> 3",
		"1 (1)",
		"[4/5]",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestExploreViewUnreachable(t *testing.T) {
	m := press(exploreScenario(t, 0), runeKey("G"))
	view := m.View()
	for _, want := range []string{"inf", "no path", "none"} {
		if !strings.Contains(view, want) {
			t.Errorf("view for isolated vertex missing %q:\n%s", want, view)
		}
	}
}

func TestExploreQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := exploreScenario(t, 0).Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}
