package katana

import "strings"

// Document is the result of segmenting one input.
type Document struct {
	// Paragraphs holds trimmed, non-empty sentences grouped by paragraph.
	Paragraphs [][]string
}

// String joins sentences with a space and paragraphs with a blank line.
func (d *Document) String() string {
	parts := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		parts[i] = strings.Join(p, " ")
	}
	return strings.Join(parts, "\n\n")
}

// SentenceCount returns the number of sentences across all paragraphs.
func (d *Document) SentenceCount() int {
	n := 0
	for _, p := range d.Paragraphs {
		n += len(p)
	}
	return n
}

// Sentences returns every sentence in document order, ignoring paragraphs.
func (d *Document) Sentences() []string {
	out := make([]string, 0, d.SentenceCount())
	for _, p := range d.Paragraphs {
		out = append(out, p...)
	}
	return out
}
