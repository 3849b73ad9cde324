// Package katana cuts text into paragraphs and sentences.
//
// # Quick Start
//
// Cut plain text directly:
//
//	for _, paragraph := range katana.Cut("Dr. C. Jeung spoke. It took 1.5 minutes.") {
//	    for _, sentence := range paragraph {
//	        fmt.Println(sentence)
//	    }
//	}
//
// The result is a list of paragraphs, each a list of trimmed sentences.
// Cut never fails: empty input yields an empty result.
//
// # Segmentation
//
// Cutting happens in three phases:
//
//  1. Protection: ordered rules mark periods that do not end a sentence
//     (decimals, acronyms, initials, short titles, ellipses, "et al.") and
//     fold a terminator together with the paren or quote that closes it.
//  2. Segmentation: a single scan splits on newlines and on the remaining
//     terminators.
//  3. Repair: marks are decoded back to their source text, sentences are
//     trimmed, empty sentences and paragraphs are dropped.
//
// Marks live beside the text, never inside it, so no input can be
// mistaken for an internal marker.
//
// # Markup Input
//
// Use a Segmenter to cut HTML or Markdown:
//
//	seg := katana.NewSegmenter(katana.WithTimeout(5 * time.Second))
//	doc, err := seg.Segment(ctx, katana.Input{
//	    Content: "<p>First.</p><p>Second.</p>",
//	    Format:  katana.FormatHTML,
//	})
//
// HTML is reduced to text first: block elements become paragraphs, entities
// are decoded, scripts and styles are dropped, footnote references such as
// "[12]" are removed and common lowercase abbreviations ("e.g.") lose their
// periods. Markdown is rendered to HTML with goldmark and then follows the
// same path. Each pass can be turned off with an Option.
package katana
