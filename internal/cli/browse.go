package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/texttree/pkg/format"
	"github.com/matzehuels/texttree/pkg/render"
	"github.com/matzehuels/texttree/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

type browseOpts struct {
	format formatFlags
	input  string
}

// browseCommand creates the interactive tree browser.
func (c *CLI) browseCommand() *cobra.Command {
	var opts browseOpts

	cmd := &cobra.Command{
		Use:   "browse [file]",
		Short: "Explore a tree document interactively",
		Long: `Explore a tree document interactively.

Keys: up/down (k/j) move, enter or space folds a node, e expands all,
c collapses all, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.format.resolve(cmd)
			if err != nil {
				return err
			}
			root, err := readDocument(cmd.InOrStdin(), args[0], opts.input)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(root, f), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	opts.format.register(cmd)
	cmd.Flags().StringVar(&opts.input, "input", "json", "stdin document type: json, yaml")

	return cmd
}

// browseModel is the bubbletea model for the tree browser. Each visible
// node owns exactly one rendered line, in pre-order.
type browseModel struct {
	root      *tree.StringNode
	format    format.Formatting
	collapsed map[*tree.StringNode]bool

	nodes []*tree.StringNode
	lines []string
	err   error

	Cursor int
	Offset int
	Height int
}

func newBrowseModel(root *tree.StringNode, f format.Formatting) browseModel {
	m := browseModel{
		root:      root,
		format:    f,
		collapsed: make(map[*tree.StringNode]bool),
		Height:    20,
	}
	m.refresh()
	return m
}

// refresh rebuilds the visible tree and its rendering.
func (m *browseModel) refresh() {
	m.nodes = m.nodes[:0]
	visible := m.visible(m.root)
	out, err := render.Render(visible, m.format)
	m.err = err
	m.lines = strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if m.Cursor >= len(m.nodes) {
		m.Cursor = len(m.nodes) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.scroll()
}

func (m *browseModel) visible(n *tree.StringNode) *tree.StringNode {
	m.nodes = append(m.nodes, n)
	if m.collapsed[n] {
		return tree.NewString(fmt.Sprintf("%s [+%d]", n.Label(), n.Count()-1))
	}
	out := tree.New(n.Data())
	for c := range n.Children() {
		out.PushNode(m.visible(c))
	}
	return out
}

func (m *browseModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m *browseModel) setAll(collapse bool) {
	m.root.Walk(func(n *tree.StringNode, depth int) bool {
		if depth > 0 && n.HasChildren() {
			if collapse {
				m.collapsed[n] = true
			} else {
				delete(m.collapsed, n)
			}
		}
		return true
	})
	if collapse {
		m.Cursor = 0
	}
	m.refresh()
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.scroll()
			}
		case "down", "j":
			if m.Cursor < len(m.nodes)-1 {
				m.Cursor++
				m.scroll()
			}
		case "enter", " ":
			n := m.nodes[m.Cursor]
			if n.HasChildren() {
				m.collapsed[n] = !m.collapsed[n]
				m.refresh()
			}
		case "e":
			m.setAll(false)
		case "c":
			m.setAll(true)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
		m.scroll()
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.root.Label()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ fold  e/c expand/collapse all  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.lines))
	for i := m.Offset; i < end; i++ {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + m.lines[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + m.lines[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.nodes))))
	return b.String()
}
