package fswalk

import "fmt"

// Kind classifies a filesystem entry.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindHome
	KindSymlink
	KindBroken
)

// Markers are the label prefixes used for each entry kind.
type Markers struct {
	Home    string
	Dir     string
	File    string
	Symlink string
	Broken  string
	Error   string
}

// EmojiMarkers are the default pictographic markers.
var EmojiMarkers = Markers{
	Home:    "🏠",
	Dir:     "📁",
	File:    "📄",
	Symlink: "🔗",
	Broken:  "☠️",
	Error:   "⚠️",
}

// PlainMarkers use ASCII only, for terminals without emoji support.
var PlainMarkers = Markers{
	Home:    "~",
	Dir:     "d",
	File:    "-",
	Symlink: "l",
	Broken:  "x",
	Error:   "!",
}

func (m Markers) forKind(k Kind) string {
	switch k {
	case KindDir:
		return m.Dir
	case KindHome:
		return m.Home
	case KindSymlink:
		return m.Symlink
	case KindBroken:
		return m.Broken
	}
	return m.File
}

// Entry is the label value of one walked node.
type Entry struct {
	Name string
	Path string
	Kind Kind

	// Err is set when the entry is a directory that could not be listed.
	Err error

	markers Markers
}

// IsDir reports whether the entry is a directory, including the home directory.
func (e Entry) IsDir() bool { return e.Kind == KindDir || e.Kind == KindHome }

// String implements [fmt.Stringer].
func (e Entry) String() string {
	label := fmt.Sprintf("%s %s", e.markers.forKind(e.Kind), e.Name)
	if e.Err != nil {
		label += " " + e.markers.Error + " unreadable"
	}
	return label
}
