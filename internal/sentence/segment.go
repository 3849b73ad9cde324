package sentence

// paragraph is an ordered run of raw, unrepaired sentences.
type paragraph []glyphs

// split groups protected text into paragraphs of sentences. A literal
// newline closes the paragraph; any terminator glyph closes the sentence.
// Every terminator left after protection is a real one.
func split(gs glyphs) []paragraph {
	var (
		paragraphs []paragraph
		current    paragraph
		sentence   glyphs
	)

	for _, g := range gs {
		if g.isNewline() {
			if len(sentence) > 0 {
				current = append(current, sentence)
				sentence = nil
			}
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}

		sentence = append(sentence, g)
		if g.isTerminator() {
			current = append(current, sentence)
			sentence = nil
		}
	}

	if len(sentence) > 0 {
		current = append(current, sentence)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}
