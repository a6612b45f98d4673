// Package format describes how a tree diagram is drawn: which glyphs to use,
// how wide the connector columns are, where the root connector is anchored and
// what text prefixes every line.
//
// # Characters
//
// [Characters] holds the ten glyph and count fields the renderer consumes.
// Two presets are provided:
//
//	ASCII:  + , | -   (count 2) + ' (label space 1)
//	Box:    ┌ ┬ │ ─   (count 2) ├ └ (label space 1)
//
// Any field may be overridden, for example to make spacing visible:
//
//	chars := format.Box()
//	chars.HorizontalSpace = '#'
//	chars.LabelSpaceChar = '.'
//
// Every glyph must occupy exactly one terminal column. [Characters.Validate]
// rejects control characters and wide or zero-width runes, and [ParseGlyph]
// turns configuration strings into single code points (after NFC
// normalization) or fails.
//
// # Formatting
//
// [Formatting] combines characters with an [Anchor], an [Orientation] and an
// optional line prefix. [Default] is ASCII, top-down, anchored below, with no
// prefix. [DirTree], [DirTreeLeft] and their WithPrefix variants build the
// common layouts from any character set.
//
// With [AnchorBelow] the children of a node hang below its first column:
//
//	root
//	+-- Uncle
//	'-- Aunt
//	   '-- Child 3
//
// With [AnchorLeft] every connector ends in a down-facing tee (or a plain
// line for leaves) and the root gets its own corner glyph:
//
//	+ root
//	+--- Uncle
//	'--, Aunt
//	   '--- Child 3
package format
