package errors

import (
	"strings"
	"unicode"
)

// maxPrefixLength bounds the per-line prefix accepted from configuration and requests.
const maxPrefixLength = 256

// ValidatePrefix validates a per-line prefix string.
// Prefixes are written verbatim before every line, so they must not contain
// line breaks or other control characters that would break the line structure.
func ValidatePrefix(prefix string) error {
	if len(prefix) > maxPrefixLength {
		return New(ErrCodeInvalidFormat, "prefix too long (max %d bytes)", maxPrefixLength)
	}
	for _, r := range prefix {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFormat, "prefix contains control character %U", r)
		}
	}
	return nil
}

// ValidateLabel validates a node label read from a tree document.
// Labels occupy exactly one output line each.
func ValidateLabel(label string) error {
	if strings.ContainsAny(label, "\r\n") {
		return New(ErrCodeInvalidDocument, "label %q contains a line break", label)
	}
	return nil
}

// ValidateDocumentFilename validates a tree document filename for safety.
// Only .json, .yaml and .yml documents are accepted.
func ValidateDocumentFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "document filename cannot be empty")
	}
	if strings.ContainsRune(filename, '\x00') {
		return New(ErrCodeInvalidPath, "document filename contains a null byte")
	}

	lower := strings.ToLower(filename)
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		if strings.HasSuffix(lower, ext) {
			return nil
		}
	}
	return New(ErrCodeInvalidPath, "unsupported document type: %s (must be .json, .yaml or .yml)", filename)
}
