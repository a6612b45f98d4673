package format

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/texttree/pkg/errors"
)

// Characters is the set of glyphs and repeat counts used to draw connectors.
// It is a plain value; copies are independent.
type Characters struct {
	DownFacingAngle     rune // root corner when anchored left
	DownFacingTee       rune // connector end for nodes with children when anchored left
	VerticalLine        rune // continuation of an ancestor with pending siblings
	HorizontalLine      rune // connector body
	HorizontalSpace     rune // filler in continuation columns
	HorizontalLineCount int  // connector body length
	RightFacingTee      rune // connector for a child with later siblings
	RightFacingAngle    rune // connector for the last child
	LabelSpaceChar      rune // gap between connector and label
	LabelSpaceCount     int  // gap width
}

// ASCII returns the plain ASCII character set.
func ASCII() Characters {
	return Characters{
		DownFacingAngle:     '+',
		DownFacingTee:       ',',
		VerticalLine:        '|',
		HorizontalLine:      '-',
		HorizontalSpace:     ' ',
		HorizontalLineCount: 2,
		RightFacingTee:      '+',
		RightFacingAngle:    '\'',
		LabelSpaceChar:      ' ',
		LabelSpaceCount:     1,
	}
}

// Box returns the Unicode box-drawing character set.
func Box() Characters {
	return Characters{
		DownFacingAngle:     '┌',
		DownFacingTee:       '┬',
		VerticalLine:        '│',
		HorizontalLine:      '─',
		HorizontalSpace:     ' ',
		HorizontalLineCount: 2,
		RightFacingTee:      '├',
		RightFacingAngle:    '└',
		LabelSpaceChar:      ' ',
		LabelSpaceCount:     1,
	}
}

// glyphWidth measures runes with East Asian ambiguous characters treated as
// narrow, independent of the process locale. Box-drawing runes are ambiguous.
var glyphWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Validate reports the first field that would break column alignment.
func (c Characters) Validate() error {
	for _, g := range c.glyphs() {
		if err := validateGlyph(g.name, g.r); err != nil {
			return err
		}
	}
	if c.HorizontalLineCount < 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "horizontal_line_count must not be negative (got %d)", c.HorizontalLineCount)
	}
	if c.LabelSpaceCount < 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "label_space_count must not be negative (got %d)", c.LabelSpaceCount)
	}
	return nil
}

type namedGlyph struct {
	name string
	r    rune
}

func (c Characters) glyphs() []namedGlyph {
	return []namedGlyph{
		{"down_facing_angle", c.DownFacingAngle},
		{"down_facing_tee", c.DownFacingTee},
		{"vertical_line", c.VerticalLine},
		{"horizontal_line", c.HorizontalLine},
		{"horizontal_space", c.HorizontalSpace},
		{"right_facing_tee", c.RightFacingTee},
		{"right_facing_angle", c.RightFacingAngle},
		{"label_space_char", c.LabelSpaceChar},
	}
}

func validateGlyph(field string, r rune) error {
	switch {
	case r == utf8.RuneError || !utf8.ValidRune(r):
		return errors.New(errors.ErrCodeInvalidGlyph, "%s is not a valid code point", field)
	case unicode.IsControl(r):
		return errors.New(errors.ErrCodeInvalidGlyph, "%s is a control character (%U)", field, r)
	}
	if w := glyphWidth.RuneWidth(r); w != 1 {
		return errors.New(errors.ErrCodeInvalidGlyph, "%s %q occupies %d columns, want 1", field, r, w)
	}
	return nil
}

// ParseGlyph converts a configuration string into a single glyph.
// The input is NFC-normalized first, so a base letter followed by a combining
// mark collapses into one code point where Unicode defines one. Anything that
// is still not exactly one single-column code point is rejected.
func ParseGlyph(s string) (rune, error) {
	n := norm.NFC.String(s)
	if utf8.RuneCountInString(n) != 1 {
		return 0, errors.New(errors.ErrCodeInvalidGlyph, "glyph %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(n)
	if err := validateGlyph("glyph", r); err != nil {
		return 0, err
	}
	return r, nil
}

// Glyphs holds textual overrides for a character set, as read from
// configuration files or request parameters. Empty strings and nil counts
// leave the base value unchanged.
type Glyphs struct {
	DownFacingAngle     string `toml:"down_facing_angle" json:"down_facing_angle,omitempty" yaml:"down_facing_angle,omitempty"`
	DownFacingTee       string `toml:"down_facing_tee" json:"down_facing_tee,omitempty" yaml:"down_facing_tee,omitempty"`
	VerticalLine        string `toml:"vertical_line" json:"vertical_line,omitempty" yaml:"vertical_line,omitempty"`
	HorizontalLine      string `toml:"horizontal_line" json:"horizontal_line,omitempty" yaml:"horizontal_line,omitempty"`
	HorizontalSpace     string `toml:"horizontal_space" json:"horizontal_space,omitempty" yaml:"horizontal_space,omitempty"`
	HorizontalLineCount *int   `toml:"horizontal_line_count" json:"horizontal_line_count,omitempty" yaml:"horizontal_line_count,omitempty"`
	RightFacingTee      string `toml:"right_facing_tee" json:"right_facing_tee,omitempty" yaml:"right_facing_tee,omitempty"`
	RightFacingAngle    string `toml:"right_facing_angle" json:"right_facing_angle,omitempty" yaml:"right_facing_angle,omitempty"`
	LabelSpaceChar      string `toml:"label_space_char" json:"label_space_char,omitempty" yaml:"label_space_char,omitempty"`
	LabelSpaceCount     *int   `toml:"label_space_count" json:"label_space_count,omitempty" yaml:"label_space_count,omitempty"`
}

// Apply returns base with every non-empty override parsed and substituted.
// The result is validated.
func (g Glyphs) Apply(base Characters) (Characters, error) {
	out := base
	overrides := []struct {
		name string
		src  string
		dst  *rune
	}{
		{"down_facing_angle", g.DownFacingAngle, &out.DownFacingAngle},
		{"down_facing_tee", g.DownFacingTee, &out.DownFacingTee},
		{"vertical_line", g.VerticalLine, &out.VerticalLine},
		{"horizontal_line", g.HorizontalLine, &out.HorizontalLine},
		{"horizontal_space", g.HorizontalSpace, &out.HorizontalSpace},
		{"right_facing_tee", g.RightFacingTee, &out.RightFacingTee},
		{"right_facing_angle", g.RightFacingAngle, &out.RightFacingAngle},
		{"label_space_char", g.LabelSpaceChar, &out.LabelSpaceChar},
	}
	for _, o := range overrides {
		if o.src == "" {
			continue
		}
		r, err := ParseGlyph(o.src)
		if err != nil {
			return Characters{}, errors.Wrap(errors.ErrCodeInvalidGlyph, err, "%s", o.name)
		}
		*o.dst = r
	}
	if g.HorizontalLineCount != nil {
		out.HorizontalLineCount = *g.HorizontalLineCount
	}
	if g.LabelSpaceCount != nil {
		out.LabelSpaceCount = *g.LabelSpaceCount
	}
	if err := out.Validate(); err != nil {
		return Characters{}, err
	}
	return out, nil
}

// PresetASCII and PresetBox name the built-in character sets.
const (
	PresetASCII = "ascii"
	PresetBox   = "box"
)

// Preset returns the named character set.
func Preset(name string) (Characters, error) {
	switch name {
	case PresetASCII, "":
		return ASCII(), nil
	case PresetBox:
		return Box(), nil
	}
	return Characters{}, errors.New(errors.ErrCodeInvalidFormat, "unknown preset: %s (must be 'ascii' or 'box')", name)
}
