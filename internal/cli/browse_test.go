package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/texttree/pkg/format"
	"github.com/matzehuels/texttree/pkg/tree"
)

func browseTree() *tree.StringNode {
	return tree.WithChildNodes[tree.Text]("root",
		tree.Strings("a", "a1", "a2"),
		tree.NewString("b"),
	)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m browseModel, keys ...string) browseModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(browseModel)
	}
	return m
}

func TestBrowseModelInitial(t *testing.T) {
	m := newBrowseModel(browseTree(), format.Default())
	if len(m.lines) != 5 || len(m.nodes) != 5 {
		t.Fatalf("lines = %d, nodes = %d, want 5", len(m.lines), len(m.nodes))
	}
	if m.lines[1] != "+-- a" || m.lines[2] != "|  +-- a1" {
		t.Errorf("unexpected rendering: %q", m.lines)
	}
}

func TestBrowseModelNavigate(t *testing.T) {
	m := newBrowseModel(browseTree(), format.Default())

	m = press(m, "up")
	if m.Cursor != 0 {
		t.Errorf("cursor should stay at top, got %d", m.Cursor)
	}
	m = press(m, "down", "j", "j", "j", "j", "j")
	if m.Cursor != 4 {
		t.Errorf("cursor should stop at last line, got %d", m.Cursor)
	}
	m = press(m, "k")
	if m.Cursor != 3 {
		t.Errorf("cursor = %d, want 3", m.Cursor)
	}
}

func TestBrowseModelFold(t *testing.T) {
	m := newBrowseModel(browseTree(), format.Default())

	m = press(m, "down", "enter")
	if len(m.lines) != 3 {
		t.Fatalf("folding a should hide its children, got %q", m.lines)
	}
	if m.lines[1] != "+-- a [+2]" {
		t.Errorf("folded label = %q", m.lines[1])
	}

	m = press(m, "enter")
	if len(m.lines) != 5 {
		t.Errorf("unfolding should restore children, got %q", m.lines)
	}

	// Leaves do not fold.
	m = press(m, "down", "enter")
	if len(m.lines) != 5 {
		t.Errorf("folding a leaf should do nothing, got %q", m.lines)
	}
}

func TestBrowseModelCollapseAll(t *testing.T) {
	m := newBrowseModel(browseTree(), format.DirTree(format.Box()))

	m = press(m, "down", "down", "c")
	if len(m.lines) != 3 || m.Cursor != 0 {
		t.Errorf("collapse all: lines = %q, cursor = %d", m.lines, m.Cursor)
	}
	m = press(m, "e")
	if len(m.lines) != 5 {
		t.Errorf("expand all: lines = %q", m.lines)
	}
}

func TestBrowseModelView(t *testing.T) {
	m := newBrowseModel(browseTree(), format.Default())
	m = press(m, "down")
	view := m.View()

	for _, want := range []string{"root", "▸ +-- a", "[2/5]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestBrowseModelScroll(t *testing.T) {
	root := tree.NewString("root")
	for i := 0; i < 30; i++ {
		root.Push("leaf")
	}
	m := newBrowseModel(root, format.Default())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 11})
	m = next.(browseModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want 5", m.Height)
	}
	for i := 0; i < 10; i++ {
		m = press(m, "down")
	}
	if m.Offset != 6 {
		t.Errorf("Offset = %d, want 6", m.Offset)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := newBrowseModel(browseTree(), format.Default())
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
