package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/texttree/pkg/cache"
	"github.com/matzehuels/texttree/pkg/errors"
	treeio "github.com/matzehuels/texttree/pkg/io"
	"github.com/matzehuels/texttree/pkg/render"
	"github.com/matzehuels/texttree/pkg/tree"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format  formatFlags
	output  string // output file path, stdout when empty
	input   string // stdin document type: json or yaml
	noCache bool
	stats   bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON or YAML tree document as text",
		Long: `Render a tree document as a text diagram.

The document is a nested object with "label" and "children" fields. Use "-"
to read from stdin.`,
		Example: `  texttree render family.json
  texttree render family.yaml --style box --anchor left
  cat family.json | texttree render - --prefix "// "`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	opts.format.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.input, "input", "json", "stdin document type: json, yaml")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print line count, width and depth to stderr")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	f, err := opts.format.resolve(cmd)
	if err != nil {
		return err
	}
	root, err := readDocument(cmd.InOrStdin(), path, opts.input)
	if err != nil {
		return err
	}
	logger.Debug("loaded tree", "nodes", root.Count(), "height", root.Height())

	rc, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := cache.Render(ctx, rc, cache.NewDefaultKeyer(), root, f, cache.TTLRender)
	if err != nil {
		return err
	}

	if opts.stats {
		s := render.Measure(root, f)
		fmt.Fprintf(cmd.ErrOrStderr(), "%d lines, %d columns, depth %d\n", s.Lines, s.Width, s.Depth)
	}
	return writeOutput(cmd.OutOrStdout(), opts.output, []byte(out))
}

// readDocument loads a tree from path, or from stdin when path is "-".
func readDocument(stdin io.Reader, path, input string) (*tree.StringNode, error) {
	if path != "-" {
		return treeio.ImportFile(path)
	}
	switch strings.ToLower(input) {
	case "json", "":
		return treeio.ReadJSON(stdin)
	case "yaml", "yml":
		return treeio.ReadYAML(stdin)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "invalid input type: %s (must be 'json' or 'yaml')", input)
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeWrite, err, "write %s", path)
	}
	printSuccess("Wrote output")
	printFile(path)
	return nil
}
