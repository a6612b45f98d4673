// Package pkg provides the libraries behind texttree, a renderer for
// tree(1)-style text diagrams.
//
// # Overview
//
//  1. [tree] - Generic ordered tree of labeled nodes
//  2. [format] - Glyph sets and layout configuration
//  3. [render] - Line renderer producing the diagram
//  4. [io] - JSON and YAML tree documents
//  5. [config], [fswalk], [cache], [store] - Supporting infrastructure
//
// # Architecture
//
//	tree document / directory walk
//	         ↓
//	    [tree] package (label tree)
//	         ↓
//	    [render] package (+ [format] configuration)
//	         ↓
//	    text diagram (or Graphviz via render/dot)
//
// # Quick Start
//
//	root := tree.WithChildNodes[tree.Text]("root",
//	    tree.NewString("Uncle"),
//	    tree.Strings("Parent", "Child 1", "Child 2"),
//	)
//	out, err := render.Render(root, format.DirTree(format.Box()))
//
// Produces:
//
//	root
//	├── Uncle
//	└── Parent
//	   ├── Child 1
//	   └── Child 2
package pkg
