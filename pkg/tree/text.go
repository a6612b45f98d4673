package tree

import "fmt"

// Text is a string label.
type Text string

// String implements [fmt.Stringer].
func (t Text) String() string { return string(t) }

// StringNode is a node with a plain string label.
type StringNode = Node[Text]

// NewString creates a string-labeled leaf.
func NewString(label string) *StringNode {
	return New(Text(label))
}

// Strings creates a string-labeled node with one leaf child per label.
func Strings(label string, children ...string) *StringNode {
	n := NewString(label)
	for _, c := range children {
		n.Push(Text(c))
	}
	return n
}

// Value adapts any value into a label using its default fmt formatting.
type Value[T any] struct {
	V T
}

// String implements [fmt.Stringer].
func (v Value[T]) String() string { return fmt.Sprint(v.V) }

// Of wraps v as a label value.
func Of[T any](v T) Value[T] { return Value[T]{V: v} }

// ToStrings converts any tree into a string tree by capturing each label once.
func ToStrings[T fmt.Stringer](n *Node[T]) *StringNode {
	return Map(n, func(v T) Text { return Text(v.String()) })
}
