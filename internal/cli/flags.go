package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/texttree/pkg/config"
	"github.com/matzehuels/texttree/pkg/format"
)

// formatFlags are the formatting overrides shared by drawing commands.
type formatFlags struct {
	config string
	style  string
	anchor string
	prefix string
	indent bool
}

func (f *formatFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.config, "config", "", "config file (default ~/.config/texttree/config.toml)")
	fs.StringVarP(&f.style, "style", "s", "", "glyph set: ascii, box")
	fs.StringVarP(&f.anchor, "anchor", "a", "", "connector anchor: below, left")
	fs.StringVarP(&f.prefix, "prefix", "p", "", "string written before every line")
	fs.BoolVar(&f.indent, "indent", false, "indent children under their parent's label")

	_ = cmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions(
		[]string{format.PresetASCII, format.PresetBox}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("anchor", cobra.FixedCompletions(
		[]string{"below", "left"}, cobra.ShellCompDirectiveNoFileComp))
}

// resolve loads the config file and applies every flag the user set.
func (f *formatFlags) resolve(cmd *cobra.Command) (format.Formatting, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return format.Formatting{}, err
	}
	fs := cmd.Flags()
	if fs.Changed("style") {
		cfg.Preset = f.style
		// Glyph overrides belong to the configured preset.
		cfg.Chars = format.Glyphs{}
	}
	if fs.Changed("anchor") {
		a, err := format.ParseAnchor(f.anchor)
		if err != nil {
			return format.Formatting{}, err
		}
		cfg.Anchor = a
	}
	if fs.Changed("prefix") {
		cfg.Prefix = f.prefix
	}
	if fs.Changed("indent") {
		cfg.IndentUnderLabel = f.indent
	}
	return cfg.Formatting()
}
