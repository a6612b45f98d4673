package errors

import (
	"strings"
	"testing"
)

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"dots", ".. ", false},
		{"unicode", "│ ", false},
		{"newline", "a\nb", true},
		{"tab", "\t", true},
		{"too long", strings.Repeat("x", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidFormat {
				t.Errorf("ValidatePrefix(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"root", false},
		{"", false},
		{"Grand Child 1", false},
		{"two\nlines", true},
		{"carriage\rreturn", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDocumentFilename(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"tree.json", false},
		{"tree.yaml", false},
		{"TREE.YML", false},
		{"dir/tree.json", false},
		{"", true},
		{"tree.toml", true},
		{"tree", true},
		{"tree\x00.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateDocumentFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocumentFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
