package sentence

import "strings"

// repair decodes every glyph back to its source punctuation, trims each
// sentence, and drops sentences and paragraphs left empty.
func repair(paragraphs []paragraph) [][]string {
	out := make([][]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		sentences := make([]string, 0, len(p))
		for _, s := range p {
			text := strings.TrimSpace(s.String())
			if text == "" {
				continue
			}
			sentences = append(sentences, text)
		}
		if len(sentences) > 0 {
			out = append(out, sentences)
		}
	}
	return out
}
