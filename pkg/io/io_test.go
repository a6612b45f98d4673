package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/tree"
)

const familyJSON = `{
  "label": "root",
  "children": [
    {"label": "Uncle"},
    {"label": "Parent", "children": [{"label": "Child 1"}, {"label": "Child 2"}]},
    {"label": "Aunt"}
  ]
}`

const familyYAML = `label: root
children:
  - label: Uncle
  - label: Parent
    children:
      - label: Child 1
      - label: Child 2
  - label: Aunt
`

func labels(n *tree.StringNode) []string {
	var out []string
	n.Walk(func(node *tree.StringNode, _ int) bool {
		out = append(out, node.Label())
		return true
	})
	return out
}

func TestReadJSON(t *testing.T) {
	n, err := ReadJSON(strings.NewReader(familyJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	want := []string{"root", "Uncle", "Parent", "Child 1", "Child 2", "Aunt"}
	if got := labels(n); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("labels = %v, want %v", got, want)
	}
	if n.Child(1).Len() != 2 {
		t.Errorf("Parent children = %d, want 2", n.Child(1).Len())
	}
}

func TestReadYAML(t *testing.T) {
	n, err := ReadYAML(strings.NewReader(familyYAML))
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	if got := n.Count(); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	if got := n.Child(1).Child(1).Label(); got != "Child 2" {
		t.Errorf("nested label = %q, want Child 2", got)
	}
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"malformed", `{"label": `, "decode JSON"},
		{"missing root label", `{"children": []}`, "root: missing label"},
		{"missing nested label", `{"label":"a","children":[{"label":"b"},{"children":[{}]}]}`, "children[1]: missing label"},
		{"deep path", `{"label":"a","children":[{"label":"b"},{"label":"c","children":[{}]}]}`, "children[1].children[0]: missing label"},
		{"line break", `{"label":"a\nb"}`, "line break"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidDocument) {
				t.Errorf("code = %s, want INVALID_DOCUMENT", errors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestReadYAML_Empty(t *testing.T) {
	_, err := ReadYAML(strings.NewReader(""))
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("empty YAML should be an invalid document, got %v", err)
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	orig := tree.WithChildNodes[tree.Text]("root",
		tree.Strings("a", "a1", "a2"),
		tree.NewString("b"),
	)

	var buf bytes.Buffer
	if err := WriteJSON(orig, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.Contains(buf.String(), `"label": "b",`) {
		t.Error("leaf nodes should omit the children field")
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if strings.Join(labels(got), ",") != strings.Join(labels(orig), ",") {
		t.Errorf("round trip labels = %v, want %v", labels(got), labels(orig))
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	orig := tree.WithChildren(tree.Of(1), tree.Of(2), tree.Of(3))

	var buf bytes.Buffer
	if err := WriteYAML(orig, &buf); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	got, err := ReadYAML(&buf)
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	if want := "1,2,3"; strings.Join(labels(got), ",") != want {
		t.Errorf("labels = %v, want %s", labels(got), want)
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "family.json")
	yamlPath := filepath.Join(dir, "family.YML")
	if err := os.WriteFile(jsonPath, []byte(familyJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(yamlPath, []byte(familyYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		n, err := ImportFile(path)
		if err != nil {
			t.Fatalf("ImportFile(%s): %v", path, err)
		}
		if n.Count() != 6 {
			t.Errorf("ImportFile(%s) Count() = %d, want 6", path, n.Count())
		}
	}
}

func TestImportFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportFile(filepath.Join(dir, "tree.txt"))
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("unsupported extension: got %v, want INVALID_PATH", err)
	}

	_, err = ImportFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: got %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(tree.Strings("x", "y"), path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	n, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if n.Label() != "x" || n.Child(0).Label() != "y" {
		t.Errorf("unexpected tree after export/import: %v", labels(n))
	}
}
