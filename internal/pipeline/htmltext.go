package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrHTMLParse indicates the HTML input could not be parsed.
var ErrHTMLParse = errors.New("failed to parse HTML")

// Precompiled cleanup patterns.
var (
	// Whitespace run inside flowing text (newlines and no-break spaces included)
	whitespaceRun = regexp.MustCompile(`[\s\x{00A0}]+`)

	// Bracketed numeric footnote reference, e.g. "[12]"
	footnoteRef = regexp.MustCompile(`[ \t]*\[[0-9]+\]`)

	// Horizontal whitespace run
	multipleSpaces = regexp.MustCompile(`[ \t]{2,}`)
)

// TextExtractor defines the contract for markup to text extraction.
type TextExtractor interface {
	ExtractText(ctx context.Context, content string) (string, error)
}

// TextOptions controls the cleanup applied after extraction.
type TextOptions struct {
	FoldAbbreviations bool // "i.e." -> "ie", "dr." -> "dr", ...
	StripFootnotes    bool // drop "[12]" style references
	CodeFences        bool // fence <pre>, backtick <code>/<samp>
}

// DefaultTextOptions enables every cleanup pass.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		FoldAbbreviations: true,
		StripFootnotes:    true,
		CodeFences:        true,
	}
}

// HTMLText extracts cut-ready text from HTML.
// It is safe for concurrent use after construction.
type HTMLText struct {
	opts     TextOptions
	handlers map[string]TagHandler
}

// NewHTMLText creates an extractor with the given options.
func NewHTMLText(opts TextOptions) *HTMLText {
	return &HTMLText{
		opts:     opts,
		handlers: defaultHandlers(opts.CodeFences),
	}
}

// ExtractText converts HTML content to plain text. Block elements are
// separated by blank lines, entities are decoded, comments and non-content
// elements are dropped.
func (h *HTMLText) ExtractText(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := parseHTML(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	w := &TextWriter{}
	h.walk(doc, w)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return h.clean(w.String()), nil
}

// walk visits n and its subtree.
func (h *HTMLText) walk(n *html.Node, w *TextWriter) {
	switch n.Type {
	case html.CommentNode, html.DoctypeNode:
		return
	case html.TextNode:
		h.writeText(n.Data, w)
	case html.ElementNode:
		h.walkElement(n, w)
	default:
		h.walkChildren(n, w)
	}
}

// walkElement dispatches an element to its handler around its children.
func (h *HTMLText) walkElement(n *html.Node, w *TextWriter) {
	if skippedTags[n.Data] {
		return
	}

	handler := h.handlers[n.Data]
	if handler != nil {
		handler.Enter(n, w)
	}
	w.push(n.Data)
	h.walkChildren(n, w)
	w.pop()
	if handler != nil {
		handler.Exit(n, w)
	}
}

func (h *HTMLText) walkChildren(n *html.Node, w *TextWriter) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		h.walk(c, w)
	}
}

// writeText appends a text node. Outside <pre>, whitespace runs collapse
// to one space, as a browser would render them.
func (h *HTMLText) writeText(text string, w *TextWriter) {
	if w.Within("pre") {
		w.WriteString(text)
		return
	}
	text = whitespaceRun.ReplaceAllString(text, " ")
	if text == " " && w.AtLineStart() {
		return
	}
	w.WriteString(text)
}

// clean applies the post-extraction passes in order.
func (h *HTMLText) clean(text string) string {
	if h.opts.StripFootnotes {
		text = footnoteRef.ReplaceAllString(text, "")
	}
	text = multipleSpaces.ReplaceAllString(text, " ")
	if h.opts.FoldAbbreviations {
		text = FoldAbbreviations(text)
	}
	text = trimLines(text)
	text = CompressBlankLines(text)
	text = NormalizeUnicode(text)
	return strings.TrimSpace(text)
}

// trimLines strips leading and trailing whitespace from every line.
func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// parseHTML parses HTML content, handling both full documents and fragments.
func parseHTML(content string) (*html.Node, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		return html.Parse(strings.NewReader(content))
	}

	// Fragment: parse with body context to avoid wrapping
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}
