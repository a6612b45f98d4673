// Package config loads user formatting defaults from a TOML file.
//
// The file lives at ~/.config/texttree/config.toml unless a path is given
// explicitly. A missing default file is not an error; every field falls
// back to the ASCII, below-anchored layout.
//
//	preset = "box"
//	anchor = "left"
//	prefix = "# "
//	indent_under_label = false
//
//	[chars]
//	horizontal_line = "═"
//	horizontal_line_count = 3
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/format"
)

// Config holds user-level formatting defaults.
type Config struct {
	Preset           string        `toml:"preset"`
	Anchor           format.Anchor `toml:"anchor"`
	Prefix           string        `toml:"prefix"`
	IndentUnderLabel bool          `toml:"indent_under_label"`
	Chars            format.Glyphs `toml:"chars"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Preset: format.PresetASCII, Anchor: format.AnchorBelow}
}

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "texttree", "config.toml"), nil
}

// Load reads the config file at path. An empty path means [Path]; in that
// case a missing file yields [Default]. An explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		if explicit {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Decode parses TOML from r on top of [Default] and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if _, err := cfg.Formatting(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Formatting builds the validated renderer configuration.
func (c Config) Formatting() (format.Formatting, error) {
	base, err := format.Preset(c.Preset)
	if err != nil {
		return format.Formatting{}, err
	}
	chars, err := c.Chars.Apply(base)
	if err != nil {
		return format.Formatting{}, err
	}
	f := format.DirTree(chars)
	f.Anchor = c.Anchor
	f.Prefix = c.Prefix
	f.IndentUnderLabel = c.IndentUnderLabel
	if err := f.Validate(); err != nil {
		return format.Formatting{}, err
	}
	return f, nil
}

// Write encodes c as TOML to w.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
