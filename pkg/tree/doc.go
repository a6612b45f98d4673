// Package tree provides the ordered, rooted tree that texttree renders.
//
// # Overview
//
// A [Node] owns a label value and an ordered slice of child nodes. Insertion
// order is display order, children are owned by exactly one parent, and there
// are no back-pointers, so no cycle can form through the public API. Depth and
// arity are unbounded; a node without children is a leaf.
//
// The label value may be any type implementing [fmt.Stringer]. The common
// string case is served by [Text] and the [StringNode] alias; arbitrary values
// can be wrapped with [Value].
//
// # Building Trees
//
// Trees are append-only during construction. Leaves are created with [New],
// nodes with leaf children with [WithChildren], and nodes from pre-built
// subtrees with [WithChildNodes]:
//
//	root := tree.WithChildNodes[tree.Text]("root",
//	    tree.New[tree.Text]("Uncle"),
//	    tree.WithChildren[tree.Text]("Aunt", "Child 3"),
//	)
//	root.Push("Cousin")
//
// The [Strings] and [NewString] helpers avoid spelling out the type parameter
// for string trees.
//
// # Reading Trees
//
// [Node.Children] returns an [iter.Seq] view over the owned children. The
// sequence is lazy, finite and can be ranged over any number of times; it does
// not copy subtrees. [Node.Label] formats the value on every call.
//
// A Node is not safe for concurrent mutation. Renderers only read the tree, so
// concurrent renders of an unchanging tree are fine.
package tree
