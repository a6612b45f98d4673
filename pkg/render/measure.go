package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/texttree/pkg/format"
	"github.com/matzehuels/texttree/pkg/tree"
)

// Stats describes the shape of a diagram without producing it.
type Stats struct {
	Lines int // one per node
	Width int // widest line in terminal columns, without the trailing newline
	Depth int // deepest node depth, root is 0
}

// Measure computes the diagram dimensions for root under f.
// Label widths are measured in terminal columns.
func Measure[T fmt.Stringer](root *tree.Node[T], f format.Formatting) Stats {
	var s Stats
	if root == nil {
		return s
	}
	prefix := runewidth.StringWidth(f.Prefix)
	root.Walk(func(n *tree.Node[T], depth int) bool {
		s.Lines++
		s.Depth = max(s.Depth, depth)
		s.Width = max(s.Width, prefix+f.LabelColumn(depth)+runewidth.StringWidth(n.Label()))
		return true
	})
	return s
}
