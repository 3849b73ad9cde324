package katana

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies how input content is written.
type Format string

// Supported input formats.
const (
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// formatAliases maps accepted spellings and file extensions to formats.
var formatAliases = map[string]Format{
	"text":     FormatText,
	"txt":      FormatText,
	"plain":    FormatText,
	"html":     FormatHTML,
	"htm":      FormatHTML,
	"xhtml":    FormatHTML,
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
}

// ParseFormat converts a format name to a Format. Matching is
// case-insensitive and accepts common aliases ("md", "htm", "txt").
func ParseFormat(s string) (Format, error) {
	f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q (expected text, html or markdown)", ErrUnknownFormat, s)
	}
	return f, nil
}

// FormatFromPath guesses the format from a file extension.
// Unknown or missing extensions are treated as plain text.
func FormatFromPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, ok := formatAliases[strings.ToLower(ext)]; ok {
		return f
	}
	return FormatText
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatHTML, FormatMarkdown:
		return true
	}
	return false
}
