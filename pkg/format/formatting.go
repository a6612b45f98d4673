package format

import (
	"strings"

	"github.com/matzehuels/texttree/pkg/errors"
)

// Orientation is the direction in which the tree grows.
type Orientation int

const (
	// TopDown puts the root on the first line; descendants follow below it
	// and are indented to the right.
	TopDown Orientation = iota
)

// String returns the configuration name of the orientation.
func (o Orientation) String() string {
	if o == TopDown {
		return "top-down"
	}
	return "unknown"
}

// MarshalText implements [encoding.TextMarshaler].
func (o Orientation) MarshalText() ([]byte, error) {
	if o != TopDown {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Orientation) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "top-down", "topdown", "":
		*o = TopDown
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown orientation: %s (must be 'top-down')", b)
}

// Anchor selects where a node's connector attaches relative to its label.
type Anchor int

const (
	// AnchorBelow hangs children below the first column of the parent's
	// connector. The root line has no connector.
	AnchorBelow Anchor = iota
	// AnchorLeft ends every connector with a down-facing glyph that children
	// hang from, and draws a corner glyph before the root label.
	AnchorLeft
)

// String returns the configuration name of the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorBelow:
		return "below"
	case AnchorLeft:
		return "left"
	}
	return "unknown"
}

// ParseAnchor parses "below" or "left" (case-insensitive).
func ParseAnchor(s string) (Anchor, error) {
	var a Anchor
	err := a.UnmarshalText([]byte(s))
	return a, err
}

// MarshalText implements [encoding.TextMarshaler].
func (a Anchor) MarshalText() ([]byte, error) {
	if a != AnchorBelow && a != AnchorLeft {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown anchor %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Anchor) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "below", "":
		*a = AnchorBelow
		return nil
	case "left":
		*a = AnchorLeft
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown anchor: %s (must be 'below' or 'left')", b)
}

// Formatting is the complete drawing configuration consumed by the renderer.
type Formatting struct {
	// Prefix is written verbatim at the start of every line, including the
	// root line. Empty means no prefix.
	Prefix string

	// Orientation is the growth direction. Only TopDown is defined.
	Orientation Orientation

	// Anchor selects the connector style.
	Anchor Anchor

	// Chars are the glyphs and counts used for connectors.
	Chars Characters

	// IndentUnderLabel widens continuation columns by LabelSpaceCount so that
	// children line up under the first character of their parent's label.
	// It only applies to AnchorBelow; with AnchorLeft children always hang
	// from the down-facing tee.
	IndentUnderLabel bool
}

// Default returns ASCII characters, top-down, anchored below, without prefix.
func Default() Formatting {
	return DirTree(ASCII())
}

// DirTree returns a top-down, below-anchored formatting using chars.
func DirTree(chars Characters) Formatting {
	return Formatting{
		Orientation: TopDown,
		Anchor:      AnchorBelow,
		Chars:       chars,
	}
}

// DirTreeWithPrefix is DirTree with a line prefix.
func DirTreeWithPrefix(chars Characters, prefix string) Formatting {
	f := DirTree(chars)
	f.Prefix = prefix
	return f
}

// DirTreeLeft returns a top-down, left-anchored formatting using chars.
func DirTreeLeft(chars Characters) Formatting {
	return Formatting{
		Orientation: TopDown,
		Anchor:      AnchorLeft,
		Chars:       chars,
	}
}

// DirTreeLeftWithPrefix is DirTreeLeft with a line prefix.
func DirTreeLeftWithPrefix(chars Characters, prefix string) Formatting {
	f := DirTreeLeft(chars)
	f.Prefix = prefix
	return f
}

// HasPrefix reports whether a line prefix is configured.
func (f Formatting) HasPrefix() bool { return f.Prefix != "" }

// Validate checks every field. Renderers call it before writing anything.
func (f Formatting) Validate() error {
	if f.Orientation != TopDown {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported orientation %d", int(f.Orientation))
	}
	if f.Anchor != AnchorBelow && f.Anchor != AnchorLeft {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported anchor %d", int(f.Anchor))
	}
	if err := errors.ValidatePrefix(f.Prefix); err != nil {
		return err
	}
	return f.Chars.Validate()
}

// ConnectorWidth is the number of columns a node's own connector occupies
// (tee or angle, including the label gap).
func (f Formatting) ConnectorWidth() int {
	w := 1 + f.Chars.HorizontalLineCount + f.Chars.LabelSpaceCount
	if f.Anchor == AnchorLeft {
		w++
	}
	return w
}

// ContinuationWidth is the number of columns an ancestor row occupies
// (bar or blank).
func (f Formatting) ContinuationWidth() int {
	w := 1 + f.Chars.HorizontalLineCount
	if f.IndentUnderLabel && f.Anchor == AnchorBelow {
		w += f.Chars.LabelSpaceCount
	}
	return w
}

// RootWidth is the number of columns drawn before the root label, excluding
// the prefix.
func (f Formatting) RootWidth() int {
	if f.Anchor == AnchorLeft {
		return 1 + f.Chars.LabelSpaceCount
	}
	return 0
}

// LabelColumn returns the zero-based column, excluding the prefix, at which
// labels of nodes at depth start. The root has depth 0.
func (f Formatting) LabelColumn(depth int) int {
	if depth <= 0 {
		return f.RootWidth()
	}
	return (depth-1)*f.ContinuationWidth() + f.ConnectorWidth()
}
