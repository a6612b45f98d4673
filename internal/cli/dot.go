package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/texttree/pkg/cache"
	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/render/dot"
)

type dotOpts struct {
	output      string
	format      string
	input       string
	detailed    bool
	leftToRight bool
	noCache     bool
}

// validDotFormats is the set of supported Graphviz output formats.
var validDotFormats = map[string]bool{"dot": true, "svg": true, "png": true}

// dotCommand creates the dot command for Graphviz export.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOpts

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Export a tree document as a Graphviz diagram",
		Example: `  texttree dot family.json > family.dot
  texttree dot family.yaml --format svg -o family.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validDotFormats[opts.format] {
				return errors.New(errors.ErrCodeInvalidInput, "invalid format: %s (must be 'dot', 'svg', or 'png')", opts.format)
			}
			return c.runDot(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVar(&opts.input, "input", "json", "stdin document type: json, yaml")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include depth and child count in node labels")
	cmd.Flags().BoolVar(&opts.leftToRight, "lr", false, "lay the graph out left to right")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runDot(cmd *cobra.Command, path string, opts *dotOpts) error {
	ctx := cmd.Context()

	root, err := readDocument(cmd.InOrStdin(), path, opts.input)
	if err != nil {
		return err
	}
	src := dot.ToDOT(root, dot.Options{Detailed: opts.detailed, LeftToRight: opts.leftToRight})
	if opts.format == "dot" {
		return writeOutput(cmd.OutOrStdout(), opts.output, []byte(src))
	}

	rc, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer rc.Close()

	renderFn := dot.RenderSVG
	if opts.format == "png" {
		renderFn = dot.RenderPNG
	}
	key := cache.NewDefaultKeyer().ArtifactKey(cache.HashTree(root), cache.ArtifactKeyOpts{
		Format:      opts.format,
		Detailed:    opts.detailed,
		LeftToRight: opts.leftToRight,
	})

	spinner := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Rendering "+opts.format+"...")
	spinner.Start()
	data, err := cache.Artifact(ctx, rc, key, cache.TTLArtifact, func() ([]byte, error) {
		return renderFn(src)
	})
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()
	return writeOutput(cmd.OutOrStdout(), opts.output, data)
}
