package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/format"
	"github.com/matzehuels/texttree/pkg/observability"
	"github.com/matzehuels/texttree/pkg/tree"
)

// Render returns the complete diagram for root as a string.
func Render[T fmt.Stringer](root *tree.Node[T], f format.Formatting) (string, error) {
	var sb strings.Builder
	if err := RenderTo(&sb, root, f); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderTo writes the diagram for root to w, one Write call per line.
// A nil root writes nothing.
func RenderTo[T fmt.Stringer](w io.Writer, root *tree.Node[T], f format.Formatting) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if root == nil {
		return nil
	}

	hooks := observability.Render()
	anchor := f.Anchor.String()
	hooks.OnRenderStart(anchor)
	start := time.Now()

	r := newLineWriter[T](w, f)
	err := r.node(root)
	hooks.OnRenderComplete(anchor, r.lines, r.bytes, time.Since(start), err)
	return err
}

// String renders root with [format.Default]. Writing to memory cannot fail
// and the default formatting is valid, so no error is returned.
func String[T fmt.Stringer](root *tree.Node[T]) string {
	s, _ := Render(root, format.Default())
	return s
}

// lineWriter holds the per-render state: the prebuilt column strings, the
// remaining-siblings stack and a reusable line buffer.
type lineWriter[T fmt.Stringer] struct {
	w      io.Writer
	prefix string
	root   string // left-anchor root corner, empty when anchored below

	bar, blank         string
	tee, teeParent     string
	angle, angleParent string

	remaining []int
	line      []byte

	lines, bytes int
}

func newLineWriter[T fmt.Stringer](w io.Writer, f format.Formatting) *lineWriter[T] {
	c := f.Chars
	lineRun := strings.Repeat(string(c.HorizontalLine), c.HorizontalLineCount)
	labelGap := strings.Repeat(string(c.LabelSpaceChar), c.LabelSpaceCount)

	spaceRun := c.HorizontalLineCount
	if f.IndentUnderLabel && f.Anchor == format.AnchorBelow {
		spaceRun += c.LabelSpaceCount
	}
	fill := strings.Repeat(string(c.HorizontalSpace), spaceRun)

	// connector builds a tee or angle. With a left anchor the column before
	// the label gap turns down into the node's own children, or continues
	// the line for a leaf.
	connector := func(lead rune, hasChildren bool) string {
		var sb strings.Builder
		sb.WriteRune(lead)
		sb.WriteString(lineRun)
		if f.Anchor == format.AnchorLeft {
			if hasChildren {
				sb.WriteRune(c.DownFacingTee)
			} else {
				sb.WriteRune(c.HorizontalLine)
			}
		}
		sb.WriteString(labelGap)
		return sb.String()
	}

	lw := &lineWriter[T]{
		w:           w,
		prefix:      f.Prefix,
		bar:         string(c.VerticalLine) + fill,
		blank:       string(c.HorizontalSpace) + fill,
		tee:         connector(c.RightFacingTee, false),
		teeParent:   connector(c.RightFacingTee, true),
		angle:       connector(c.RightFacingAngle, false),
		angleParent: connector(c.RightFacingAngle, true),
	}
	if f.Anchor == format.AnchorLeft {
		lw.root = string(c.DownFacingAngle) + labelGap
	}
	return lw
}

// node emits n and its subtree. The caller has already pushed n's level.
func (r *lineWriter[T]) node(n *tree.Node[T]) error {
	if err := r.writeLine(n); err != nil {
		return err
	}
	if !n.HasChildren() {
		return nil
	}

	r.remaining = append(r.remaining, n.Len())
	level := len(r.remaining) - 1
	for c := range n.Children() {
		if err := r.node(c); err != nil {
			return err
		}
		r.remaining[level]--
	}
	r.remaining = r.remaining[:level]
	return nil
}

func (r *lineWriter[T]) writeLine(n *tree.Node[T]) error {
	line := append(r.line[:0], r.prefix...)
	if len(r.remaining) == 0 {
		line = append(line, r.root...)
	}

	last := len(r.remaining) - 1
	for row, left := range r.remaining {
		line = append(line, r.column(left, row == last, n.HasChildren())...)
	}
	line = append(line, n.Label()...)
	line = append(line, '\n')
	r.line = line

	written, err := r.w.Write(line)
	r.bytes += written
	if err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "write line %d", r.lines+1)
	}
	if written < len(line) {
		return errors.Wrap(errors.ErrCodeWrite, io.ErrShortWrite, "write line %d", r.lines+1)
	}
	r.lines++
	return nil
}

func (r *lineWriter[T]) column(left int, lastRow, hasChildren bool) string {
	switch {
	case left == 1 && lastRow:
		if hasChildren {
			return r.angleParent
		}
		return r.angle
	case left == 1:
		return r.blank
	case lastRow:
		if hasChildren {
			return r.teeParent
		}
		return r.tee
	default:
		return r.bar
	}
}
