package sentence

// Cut splits text into paragraphs of sentences.
//
// It never fails: empty or whitespace-only input yields no paragraphs, and
// text without terminators yields a single sentence. Every returned
// sentence is trimmed and non-empty, every paragraph has at least one
// sentence, and order follows the input. Invalid UTF-8 bytes are kept as
// they are. Cut is safe for concurrent use.
func Cut(text string) [][]string {
	return repair(split(protect(text)))
}
