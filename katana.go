package katana

import (
	"context"

	"github.com/alnah/go-katana/internal/pipeline"
	"github.com/alnah/go-katana/internal/sentence"
)

// Cut splits text into paragraphs of sentences.
//
// Paragraphs end at every newline. Sentences end at '.', '?' or '!' unless
// the period belongs to a decimal, acronym, initial, short title, ellipsis
// or "et al.". A closing paren or quote that follows a terminator stays
// with its sentence. Every sentence is trimmed and non-empty; every
// paragraph holds at least one sentence. Invalid UTF-8 bytes are kept as
// they are. Cut is safe for concurrent use.
func Cut(text string) [][]string {
	return sentence.Cut(text)
}

// PrepareText reduces HTML to text and cuts it, then joins sentences with
// a space and paragraphs with a blank line. It uses the default text
// options of NewSegmenter.
func PrepareText(html string) (string, error) {
	text, err := pipeline.NewHTMLText(pipeline.DefaultTextOptions()).ExtractText(context.Background(), html)
	if err != nil {
		return "", err
	}
	return (&Document{Paragraphs: Cut(text)}).String(), nil
}

// RuleNames lists the protection passes Cut runs, in order.
func RuleNames() []string {
	return sentence.RuleNames()
}
