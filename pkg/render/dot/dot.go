package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/texttree/pkg/tree"
)

// Options configures DOT generation.
type Options struct {
	// Detailed appends each node's depth and child count to its label.
	Detailed bool

	// LeftToRight lays the graph out horizontally instead of top-down.
	LeftToRight bool
}

// ToDOT converts a tree to Graphviz DOT source.
func ToDOT[T fmt.Stringer](root *tree.Node[T], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.LeftToRight {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if root == nil {
		buf.WriteString("}\n")
		return buf.String()
	}
	buf.WriteString("\n")

	var edges []string
	next := 0
	var visit func(n *tree.Node[T], depth int) string
	visit = func(n *tree.Node[T], depth int) string {
		id := fmt.Sprintf("n%d", next)
		next++
		fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(fmtAttrs(n, depth, opts.Detailed), ", "))
		for c := range n.Children() {
			childID := visit(c, depth+1)
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", id, childID))
		}
		return id
	}
	visit(root, 0)

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs[T fmt.Stringer](n *tree.Node[T], depth int, detailed bool) []string {
	label := n.Label()
	if detailed {
		label = fmt.Sprintf("%s\ndepth: %d\nchildren: %d", label, depth, n.Len())
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !n.HasChildren() {
		attrs = append(attrs, "fillcolor=\"#f4f4f4\"")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
