package katana

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-katana/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.TextPreprocessor = (*pipeline.PlainTextPreprocessor)(nil)
	_ pipeline.HTMLConverter    = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.TextExtractor    = (*pipeline.HTMLText)(nil)
)

// Defaults applied by NewSegmenter.
const (
	defaultTimeout      = 30 * time.Second
	DefaultMaxInputSize = 10 << 20 // 10 MiB
)

// Input is one document to segment.
type Input struct {
	Content string
	Format  Format // empty means FormatText
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// segmenterConfig holds internal configuration for Segmenter.
type segmenterConfig struct {
	timeout      time.Duration
	maxInputSize int
	text         pipeline.TextOptions
}

// WithTimeout bounds a single Segment call.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("katana: WithTimeout duration must be positive")
	}
	return func(s *Segmenter) {
		s.cfg.timeout = d
	}
}

// WithMaxInputSize rejects inputs larger than n bytes.
// Panics if n <= 0.
func WithMaxInputSize(n int) Option {
	if n <= 0 {
		panic("katana: WithMaxInputSize must be positive")
	}
	return func(s *Segmenter) {
		s.cfg.maxInputSize = n
	}
}

// WithAbbreviationFolding toggles folding of lowercase abbreviations
// ("e.g." -> "eg") in markup input. Enabled by default.
func WithAbbreviationFolding(enabled bool) Option {
	return func(s *Segmenter) {
		s.cfg.text.FoldAbbreviations = enabled
	}
}

// WithFootnoteStripping toggles removal of "[12]" style references in
// markup input. Enabled by default.
func WithFootnoteStripping(enabled bool) Option {
	return func(s *Segmenter) {
		s.cfg.text.StripFootnotes = enabled
	}
}

// WithCodeFences toggles Markdown-style fencing of <pre>, <code> and
// <samp> in markup input. Enabled by default.
func WithCodeFences(enabled bool) Option {
	return func(s *Segmenter) {
		s.cfg.text.CodeFences = enabled
	}
}

// Segmenter turns text, HTML or Markdown into a Document.
// It is safe for concurrent use.
type Segmenter struct {
	cfg           segmenterConfig
	preprocessor  pipeline.TextPreprocessor
	htmlConverter pipeline.HTMLConverter
	extractor     pipeline.TextExtractor
}

// NewSegmenter creates a Segmenter with default configuration.
func NewSegmenter(opts ...Option) *Segmenter {
	s := &Segmenter{
		cfg: segmenterConfig{
			timeout:      defaultTimeout,
			maxInputSize: DefaultMaxInputSize,
			text:         pipeline.DefaultTextOptions(),
		},
		preprocessor:  &pipeline.PlainTextPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create extractor if not injected (e.g., by tests)
	if s.extractor == nil {
		s.extractor = pipeline.NewHTMLText(s.cfg.text)
	}

	return s
}

// Segment reduces input to text according to its format and cuts it.
// The context is used for cancellation; the configured timeout applies on
// top of it. Recovers from internal panics to prevent crashes from
// propagating to callers.
func (s *Segmenter) Segment(ctx context.Context, input Input) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	format, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	text, err := s.toText(ctx, input.Content, format)
	if err != nil {
		return nil, err
	}

	return &Document{Paragraphs: Cut(text)}, nil
}

// toText dispatches content to the pipeline stages its format needs.
func (s *Segmenter) toText(ctx context.Context, content string, format Format) (string, error) {
	switch format {
	case FormatMarkdown:
		htmlContent, err := s.htmlConverter.ToHTML(ctx, content)
		if err != nil {
			return "", fmt.Errorf("converting markdown: %w", err)
		}
		content = htmlContent
		fallthrough
	case FormatHTML:
		text, err := s.extractor.ExtractText(ctx, content)
		if err != nil {
			return "", fmt.Errorf("extracting text: %w", err)
		}
		return text, nil
	default:
		text := s.preprocessor.PreprocessText(ctx, content)
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return text, nil
	}
}

// validateInput checks content and resolves the effective format.
func (s *Segmenter) validateInput(input Input) (Format, error) {
	if input.Content == "" {
		return "", ErrEmptyInput
	}
	if len(input.Content) > s.cfg.maxInputSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(input.Content), s.cfg.maxInputSize)
	}
	format := input.Format
	if format == "" {
		format = FormatText
	}
	if !format.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return format, nil
}
