// Package sentence splits plain text into paragraphs and sentences.
//
// Splitting on '.', '?' and '!' alone breaks on abbreviations, initials,
// decimal numbers and ellipses. Cut works in three phases:
//
//  1. Protection: an ordered list of regex rules marks every ambiguous
//     period as content and folds a terminator together with the closing
//     paren or quote that follows it.
//  2. Segmentation: a single scan breaks sentences on the remaining
//     terminators and paragraphs on newlines.
//  3. Repair: marked glyphs are rendered back to their source punctuation,
//     sentences are trimmed, and empty sentences and paragraphs are dropped.
//
// Protection state lives beside each character rather than in the text, so
// no input can be mistaken for a marker.
package sentence
