package katana

import (
	"errors"

	"github.com/alnah/go-katana/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyInput    = errors.New("input content cannot be empty")
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	ErrUnknownFormat = errors.New("unknown input format")

	// Markup conversion errors.
	ErrHTMLParse          = pipeline.ErrHTMLParse
	ErrMarkdownConversion = pipeline.ErrMarkdownConversion
)
