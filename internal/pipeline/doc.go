// Package pipeline turns markup into plain text ready for sentence cutting.
//
// This package handles the stages around the sentence cutter:
//   - Plain text normalization (line endings, Unicode composition)
//   - Markdown to HTML conversion via Goldmark
//   - HTML to text extraction, walking the parsed tree with tag handlers
//   - Code fencing for pre, code and samp elements
//   - Cleanup passes (footnote references, abbreviation folding, blank lines)
//
// Sentence and paragraph boundaries are decided by internal/sentence. This
// package only guarantees that block boundaries arrive as blank lines and
// that markup never reaches the cutter.
package pipeline
