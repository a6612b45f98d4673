package tree

import (
	"fmt"
	"iter"
)

// Node is a tree node holding a label value and its ordered children.
//
// The zero value is a usable leaf with the zero label value.
type Node[T fmt.Stringer] struct {
	data     T
	children []*Node[T]
}

// New creates a leaf node.
func New[T fmt.Stringer](data T) *Node[T] {
	return &Node[T]{data: data}
}

// WithChildren creates a node whose children are leaves built from values,
// in order.
func WithChildren[T fmt.Stringer](data T, values ...T) *Node[T] {
	n := New(data)
	n.Extend(values...)
	return n
}

// WithChildNodes creates a node whose children are the given pre-built
// subtrees, in order. Nil entries are skipped.
//
// The subtrees become owned by the new node and must not be attached
// anywhere else.
func WithChildNodes[T fmt.Stringer](data T, nodes ...*Node[T]) *Node[T] {
	n := New(data)
	for _, c := range nodes {
		n.PushNode(c)
	}
	return n
}

// Data returns the label value.
func (n *Node[T]) Data() T { return n.data }

// Label returns the display form of the label value. It is computed on every
// call, never cached.
func (n *Node[T]) Label() string { return n.data.String() }

// HasChildren reports whether n has at least one child.
func (n *Node[T]) HasChildren() bool { return len(n.children) > 0 }

// Len returns the number of immediate children.
func (n *Node[T]) Len() int { return len(n.children) }

// Children returns a read-only sequence over the immediate children.
// Each range over the sequence starts from the first child again.
func (n *Node[T]) Children() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// Child returns the i-th child, or nil if i is out of range.
func (n *Node[T]) Child(i int) *Node[T] {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Push appends a leaf child built from data and returns it.
func (n *Node[T]) Push(data T) *Node[T] {
	c := New(data)
	n.children = append(n.children, c)
	return c
}

// PushNode appends a pre-built subtree. A nil node is ignored.
func (n *Node[T]) PushNode(child *Node[T]) {
	if child == nil {
		return
	}
	n.children = append(n.children, child)
}

// Extend appends one leaf child per value, in order.
func (n *Node[T]) Extend(values ...T) {
	for _, v := range values {
		n.Push(v)
	}
}

// Count returns the number of nodes in the subtree rooted at n, including n.
func (n *Node[T]) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// Height returns the number of edges on the longest path from n to a leaf.
// A leaf has height 0.
func (n *Node[T]) Height() int {
	h := 0
	for _, c := range n.children {
		h = max(h, c.Height()+1)
	}
	return h
}

// Walk visits the subtree in pre-order, passing each node with its depth
// below n (n itself has depth 0). Returning false from fn skips that node's
// children.
func (n *Node[T]) Walk(fn func(node *Node[T], depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node[T]) walk(fn func(*Node[T], int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

// Map builds a new tree of the same shape with every label value converted by fn.
func Map[T, U fmt.Stringer](n *Node[T], fn func(T) U) *Node[U] {
	out := New(fn(n.data))
	if len(n.children) > 0 {
		out.children = make([]*Node[U], 0, len(n.children))
	}
	for _, c := range n.children {
		out.children = append(out.children, Map(c, fn))
	}
	return out
}
