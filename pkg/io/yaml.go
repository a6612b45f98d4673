package io

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/tree"
)

// ReadYAML decodes a YAML tree document from r.
// Validation matches [ReadJSON].
func ReadYAML(r io.Reader) (*tree.StringNode, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "empty YAML document")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode YAML")
	}
	return FromDocument(doc)
}

// ImportYAML reads a YAML tree document from the file at path.
func ImportYAML(path string) (*tree.StringNode, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadYAML(f)
}

// WriteYAML encodes a tree as a YAML document and writes it to w.
func WriteYAML[T fmt.Stringer](n *tree.Node[T], w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToDocument(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ImportFile reads a tree document, choosing the decoder by file extension.
// Accepted extensions are .json, .yaml and .yml.
func ImportFile(path string) (*tree.StringNode, error) {
	if err := errors.ValidateDocumentFilename(filepath.Base(path)); err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ImportJSON(path)
	default:
		return ImportYAML(path)
	}
}
