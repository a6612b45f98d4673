// Package io provides JSON and YAML import and export for label trees.
//
// # Overview
//
// Trees are exchanged as nested documents. The same shape is used by the
// CLI, the HTTP server and the document store, so a tree written by one
// can be read by the others.
//
// # Document Format
//
// Each node is an object with a required "label" and an optional
// "children" array:
//
//	{
//	  "label": "root",
//	  "children": [
//	    {"label": "Uncle"},
//	    {"label": "Parent", "children": [{"label": "Child 1"}]}
//	  ]
//	}
//
// The YAML form is identical:
//
//	label: root
//	children:
//	  - label: Uncle
//	  - label: Parent
//	    children:
//	      - label: Child 1
//
// # Validation
//
// Every node must carry a label, and labels must fit on one line. Errors
// name the offending node by its path from the root, for example
// "children[1].children[0]", and carry the INVALID_DOCUMENT code from
// [github.com/matzehuels/texttree/pkg/errors].
package io
