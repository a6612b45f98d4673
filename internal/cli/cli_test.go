package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const familyJSON = `{"label":"root","children":[{"label":"a"},{"label":"b"}]}`

// execute runs the root command in an isolated home and cache directory.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"render", "dir", "dot", "serve", "browse", "cache", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	doc := writeFile(t, "family.json", familyJSON)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"file default", "", []string{"render", doc}, "root\n+-- a\n'-- b\n"},
		{"box left", "", []string{"render", doc, "--style", "box", "--anchor", "left"}, "┌ root\n├─── a\n└─── b\n"},
		{"prefix", "", []string{"render", doc, "-p", "> "}, "> root\n> +-- a\n> '-- b\n"},
		{"stdin json", familyJSON, []string{"render", "-"}, "root\n+-- a\n'-- b\n"},
		{"stdin yaml", "label: x\nchildren:\n  - label: y\n", []string{"render", "-", "--input", "yaml"}, "x\n'-- y\n"},
		{"no cache", "", []string{"render", doc, "--no-cache", "--style", "box"}, "root\n├── a\n└── b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got != tt.want {
				t.Errorf("output =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderCommandConfig(t *testing.T) {
	doc := writeFile(t, "family.json", familyJSON)
	cfg := writeFile(t, "config.toml", "preset = \"box\"\nprefix = \"# \"\n")

	got, _, err := execute(t, "", "render", doc, "--config", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := "# root\n# ├── a\n# └── b\n"; got != want {
		t.Errorf("config not applied:\n%s", got)
	}

	got, _, err = execute(t, "", "render", doc, "--config", cfg, "--style", "ascii", "--prefix", "")
	if err != nil {
		t.Fatal(err)
	}
	if want := "root\n+-- a\n'-- b\n"; got != want {
		t.Errorf("flags should override config:\n%s", got)
	}
}

func TestRenderCommandOutputFile(t *testing.T) {
	doc := writeFile(t, "family.json", familyJSON)
	out := filepath.Join(t.TempDir(), "tree.txt")

	stdout, _, err := execute(t, "", "render", doc, "-o", out)
	if err != nil {
		t.Fatal(err)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty when writing a file, got %q", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "root\n+-- a\n'-- b\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestRenderCommandStats(t *testing.T) {
	doc := writeFile(t, "family.json", familyJSON)
	_, stderr, err := execute(t, "", "render", doc, "--stats")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "3 lines, 5 columns, depth 1") {
		t.Errorf("stats = %q", stderr)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	doc := writeFile(t, "family.json", familyJSON)

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "nope.json")}},
		{"unsupported extension", []string{"render", writeFile(t, "tree.txt", familyJSON)}},
		{"bad style", []string{"render", doc, "--style", "fancy"}},
		{"bad anchor", []string{"render", doc, "--anchor", "right"}},
		{"bad input type", []string{"render", "-", "--input", "xml"}},
		{"no args", []string{"render"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, familyJSON, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDirCommand(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"sub/x", "y", ".hidden"} {
		if err := os.WriteFile(filepath.Join(root, f), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, _, err := execute(t, "", "dir", root, "--plain")
	if err != nil {
		t.Fatal(err)
	}
	want := "d proj\n+-- d sub\n|  '-- - x\n'-- - y\n\n1 directory, 2 files\n"
	if got != want {
		t.Errorf("output =\n%s\nwant:\n%s", got, want)
	}

	got, _, err = execute(t, "", "dir", root, "--plain", "--all", "-L", "1", "--no-report")
	if err != nil {
		t.Fatal(err)
	}
	want = "d proj\n+-- - .hidden\n+-- d sub\n'-- - y\n"
	if got != want {
		t.Errorf("output =\n%s\nwant:\n%s", got, want)
	}
}

func TestDotCommand(t *testing.T) {
	doc := writeFile(t, "family.json", familyJSON)

	got, _, err := execute(t, "", "dot", doc, "--lr")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"digraph G", "rankdir=LR", "n0 -> n1;", "n0 -> n2;"} {
		if !strings.Contains(got, want) {
			t.Errorf("dot output missing %q", want)
		}
	}

	if _, _, err := execute(t, "", "dot", doc, "--format", "gif"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestCachePathCommand(t *testing.T) {
	got, _, err := execute(t, "", "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(got), appName) {
		t.Errorf("cache path = %q", got)
	}
}

func TestCacheClearCommand(t *testing.T) {
	doc := writeFile(t, "family.json", familyJSON)
	if _, _, err := execute(t, "", "cache", "clear"); err != nil {
		t.Fatalf("clearing an empty cache should succeed: %v", err)
	}
	if _, _, err := execute(t, "", "render", doc); err != nil {
		t.Fatal(err)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		got, _, err := execute(t, "", "completion", shell)
		if err != nil {
			t.Fatalf("completion %s: %v", shell, err)
		}
		if !strings.Contains(got, appName) {
			t.Errorf("completion %s output does not mention %s", shell, appName)
		}
	}
	if _, _, err := execute(t, "", "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}
