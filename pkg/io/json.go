package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/tree"
)

// ReadJSON decodes a JSON tree document from r.
//
// ReadJSON returns an INVALID_DOCUMENT error if the JSON is malformed, if
// any node lacks a label, or if a label contains a line break. ReadJSON
// does not close r.
func ReadJSON(r io.Reader) (*tree.StringNode, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode JSON")
	}
	return FromDocument(doc)
}

// ImportJSON reads a JSON tree document from the file at path.
func ImportJSON(path string) (*tree.StringNode, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes a tree as an indented JSON document and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON[T fmt.Stringer](n *tree.Node[T], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tree to a JSON file at path.
func ExportJSON[T fmt.Stringer](n *tree.Node[T], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(n, f)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
