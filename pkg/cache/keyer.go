package cache

import (
	"github.com/matzehuels/texttree/pkg/format"
)

// Keyer builds cache keys.
type Keyer interface {
	// RenderKey identifies a text rendering of the tree with hash treeHash.
	RenderKey(treeHash string, f format.Formatting) string

	// ArtifactKey identifies a Graphviz artifact ("dot", "svg" or "png").
	ArtifactKey(treeHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the inputs that affect Graphviz output.
type ArtifactKeyOpts struct {
	Format      string `json:"format"`
	Detailed    bool   `json:"detailed,omitempty"`
	LeftToRight bool   `json:"ltr,omitempty"`
}

// DefaultKeyer hashes every output-affecting input.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RenderKey implements [Keyer].
func (DefaultKeyer) RenderKey(treeHash string, f format.Formatting) string {
	return hashKey("render", treeHash, formattingKey(f))
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(treeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", treeHash, opts)
}

type renderKeyParts struct {
	Prefix      string `json:"prefix"`
	Orientation string `json:"orientation"`
	Anchor      string `json:"anchor"`
	Indent      bool   `json:"indent"`
	Glyphs      string `json:"glyphs"`
	HLines      int    `json:"h_lines"`
	LabelSpaces int    `json:"label_spaces"`
}

func formattingKey(f format.Formatting) renderKeyParts {
	c := f.Chars
	return renderKeyParts{
		Prefix:      f.Prefix,
		Orientation: f.Orientation.String(),
		Anchor:      f.Anchor.String(),
		Indent:      f.IndentUnderLabel,
		Glyphs: string([]rune{
			c.DownFacingAngle, c.DownFacingTee, c.VerticalLine, c.HorizontalLine,
			c.HorizontalSpace, c.RightFacingTee, c.RightFacingAngle, c.LabelSpaceChar,
		}),
		HLines:      c.HorizontalLineCount,
		LabelSpaces: c.LabelSpaceCount,
	}
}

// ScopedKeyer prefixes every key of an inner keyer, for example to keep
// separate namespaces per deployment.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with prefix. A nil inner uses [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RenderKey implements [Keyer].
func (k *ScopedKeyer) RenderKey(treeHash string, f format.Formatting) string {
	return k.prefix + k.inner.RenderKey(treeHash, f)
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(treeHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(treeHash, opts)
}
