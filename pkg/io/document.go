package io

import (
	"fmt"

	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/tree"
)

// Document is the serialized form of one tree node.
type Document struct {
	Label    *string    `json:"label" yaml:"label"`
	Children []Document `json:"children,omitempty" yaml:"children,omitempty"`
}

// FromDocument validates doc and converts it into a string tree.
func FromDocument(doc Document) (*tree.StringNode, error) {
	return fromDocument(doc, "root")
}

func fromDocument(doc Document, path string) (*tree.StringNode, error) {
	if doc.Label == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "%s: missing label", path)
	}
	if err := errors.ValidateLabel(*doc.Label); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", path)
	}
	n := tree.NewString(*doc.Label)
	for i, c := range doc.Children {
		child, err := fromDocument(c, childPath(path, i))
		if err != nil {
			return nil, err
		}
		n.PushNode(child)
	}
	return n, nil
}

func childPath(parent string, i int) string {
	if parent == "root" {
		return fmt.Sprintf("children[%d]", i)
	}
	return fmt.Sprintf("%s.children[%d]", parent, i)
}

// ToDocument converts any tree into its serialized form.
// Labels are captured through each value's String method.
func ToDocument[T fmt.Stringer](n *tree.Node[T]) Document {
	label := n.Label()
	doc := Document{Label: &label}
	for c := range n.Children() {
		doc.Children = append(doc.Children, ToDocument(c))
	}
	return doc
}
