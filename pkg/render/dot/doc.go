// Package dot exports trees as Graphviz node-link diagrams.
//
// # Overview
//
// The text renderer in the parent package is the primary output. This
// package offers the same tree as a directed graph, for documentation or
// for trees too wide for a terminal.
//
// # Usage
//
//	src := dot.ToDOT(root, dot.Options{})
//	svg, err := dot.RenderSVG(src)
//
// # DOT Format
//
// Nodes are identified by their pre-order position ("n0" is the root), so
// duplicate labels stay distinct. Edges point from parent to child and are
// emitted in child order. The default layout is top-to-bottom
// (rankdir=TB); [Options.LeftToRight] switches to rankdir=LR, which reads
// like the text diagram.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering.
package dot
