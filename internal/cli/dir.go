package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/texttree/pkg/fswalk"
	"github.com/matzehuels/texttree/pkg/render"
)

type dirOpts struct {
	format   formatFlags
	depth    int
	all      bool
	follow   bool
	plain    bool
	noReport bool
}

// dirCommand creates the dir command, a tree(1)-style directory listing.
func (c *CLI) dirCommand() *cobra.Command {
	var opts dirOpts

	cmd := &cobra.Command{
		Use:   "dir [path]",
		Short: "Draw a directory listing",
		Example: `  texttree dir
  texttree dir ~/src/project --depth 2 --style box
  texttree dir . --all --plain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return c.runDir(cmd, path, &opts)
		},
	}

	opts.format.register(cmd)
	cmd.Flags().IntVarP(&opts.depth, "depth", "L", 0, "maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "include hidden entries")
	cmd.Flags().BoolVar(&opts.follow, "follow", false, "descend into symlinked directories")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "use ASCII entry markers instead of emoji")
	cmd.Flags().BoolVar(&opts.noReport, "no-report", false, "omit the directory and file count")

	return cmd
}

func (c *CLI) runDir(cmd *cobra.Command, path string, opts *dirOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	f, err := opts.format.resolve(cmd)
	if err != nil {
		return err
	}

	walkOpts := fswalk.Options{
		MaxDepth:       opts.depth,
		ShowHidden:     opts.all,
		FollowSymlinks: opts.follow,
		Logger:         logger,
	}
	if opts.plain {
		walkOpts.Markers = &fswalk.PlainMarkers
	}

	prog := newProgress(logger)
	root, err := fswalk.Walk(ctx, path, walkOpts)
	if err != nil {
		return err
	}
	summary := fswalk.Summarize(root)
	if logger.GetLevel() <= LogDebug {
		prog.done(fmt.Sprintf("Walked %d entries", root.Count()))
	}

	out := cmd.OutOrStdout()
	if err := render.RenderTo(out, root, f); err != nil {
		return err
	}
	if !opts.noReport {
		fmt.Fprintf(out, "\n%s, %s\n", plural(summary.Dirs, "directory", "directories"), plural(summary.Files+summary.Symlinks, "file", "files"))
	}
	if summary.Unreadable > 0 {
		printWarning("%d directories could not be read", summary.Unreadable)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
