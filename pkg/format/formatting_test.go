package format

import (
	"testing"

	"github.com/matzehuels/texttree/pkg/errors"
)

func TestDefault(t *testing.T) {
	f := Default()
	if f.Anchor != AnchorBelow {
		t.Errorf("Anchor = %v, want below", f.Anchor)
	}
	if f.Orientation != TopDown {
		t.Errorf("Orientation = %v, want top-down", f.Orientation)
	}
	if f.HasPrefix() {
		t.Errorf("Default() should have no prefix, got %q", f.Prefix)
	}
	if f.Chars != ASCII() {
		t.Error("Default() should use ASCII characters")
	}
	if err := f.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestFactories(t *testing.T) {
	tests := []struct {
		name       string
		f          Formatting
		wantAnchor Anchor
		wantPrefix string
	}{
		{"dir tree", DirTree(Box()), AnchorBelow, ""},
		{"dir tree prefix", DirTreeWithPrefix(Box(), "> "), AnchorBelow, "> "},
		{"dir tree left", DirTreeLeft(ASCII()), AnchorLeft, ""},
		{"dir tree left prefix", DirTreeLeftWithPrefix(ASCII(), ".. "), AnchorLeft, ".. "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.f.Anchor != tt.wantAnchor {
				t.Errorf("Anchor = %v, want %v", tt.f.Anchor, tt.wantAnchor)
			}
			if tt.f.Prefix != tt.wantPrefix {
				t.Errorf("Prefix = %q, want %q", tt.f.Prefix, tt.wantPrefix)
			}
			if tt.f.Orientation != TopDown {
				t.Errorf("Orientation = %v, want top-down", tt.f.Orientation)
			}
		})
	}
}

func TestFormattingValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Formatting)
		code   errors.Code
	}{
		{"bad anchor", func(f *Formatting) { f.Anchor = Anchor(7) }, errors.ErrCodeInvalidFormat},
		{"bad orientation", func(f *Formatting) { f.Orientation = Orientation(3) }, errors.ErrCodeInvalidFormat},
		{"newline prefix", func(f *Formatting) { f.Prefix = "a\n" }, errors.ErrCodeInvalidFormat},
		{"wide glyph", func(f *Formatting) { f.Chars.RightFacingAngle = '＋' }, errors.ErrCodeInvalidGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default()
			tt.modify(&f)
			err := f.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		input   string
		want    Anchor
		wantErr bool
	}{
		{"below", AnchorBelow, false},
		{"LEFT", AnchorLeft, false},
		{"", AnchorBelow, false},
		{"right", AnchorBelow, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAnchor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAnchor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseAnchor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnchorTextRoundTrip(t *testing.T) {
	for _, a := range []Anchor{AnchorBelow, AnchorLeft} {
		b, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", a, err)
		}
		var got Anchor
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", b, err)
		}
		if got != a {
			t.Errorf("round trip = %v, want %v", got, a)
		}
	}
	if _, err := Anchor(9).MarshalText(); err == nil {
		t.Error("MarshalText of unknown anchor should fail")
	}
}

func TestWidths(t *testing.T) {
	tests := []struct {
		name         string
		f            Formatting
		connector    int
		continuation int
		root         int
	}{
		{"ascii below", DirTree(ASCII()), 4, 3, 0},
		{"ascii left", DirTreeLeft(ASCII()), 5, 3, 2},
		{"indented below", Formatting{Chars: ASCII(), IndentUnderLabel: true}, 4, 4, 0},
		{"indent ignored left", Formatting{Anchor: AnchorLeft, Chars: ASCII(), IndentUnderLabel: true}, 5, 3, 2},
		{"zero counts", DirTree(Characters{
			DownFacingAngle: '+', DownFacingTee: ',', VerticalLine: '|', HorizontalLine: '-',
			HorizontalSpace: ' ', RightFacingTee: '+', RightFacingAngle: '\'', LabelSpaceChar: ' ',
		}), 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.ConnectorWidth(); got != tt.connector {
				t.Errorf("ConnectorWidth() = %d, want %d", got, tt.connector)
			}
			if got := tt.f.ContinuationWidth(); got != tt.continuation {
				t.Errorf("ContinuationWidth() = %d, want %d", got, tt.continuation)
			}
			if got := tt.f.RootWidth(); got != tt.root {
				t.Errorf("RootWidth() = %d, want %d", got, tt.root)
			}
		})
	}
}

func TestLabelColumn(t *testing.T) {
	f := DirTree(ASCII())
	for depth, want := range []int{0, 4, 7, 10} {
		if got := f.LabelColumn(depth); got != want {
			t.Errorf("LabelColumn(%d) = %d, want %d", depth, got, want)
		}
	}
}
