package pipeline

import (
	"context"
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Three or more newlines
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// TextPreprocessor defines the contract for plain text preprocessing.
type TextPreprocessor interface {
	PreprocessText(ctx context.Context, content string) string
}

// PlainTextPreprocessor prepares plain text for the sentence cutter.
type PlainTextPreprocessor struct{}

// PreprocessText normalizes line endings and Unicode composition.
// A canceled context returns the content unchanged.
func (p *PlainTextPreprocessor) PreprocessText(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(content)
	content = NormalizeUnicode(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines collapses runs of blank lines to a single blank line.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// NormalizeUnicode composes characters to NFC so that decomposed accents
// from entity decoding or copy-paste compare equal to precomposed ones.
func NormalizeUnicode(content string) string {
	return norm.NFC.String(content)
}
