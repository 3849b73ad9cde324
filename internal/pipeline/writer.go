package pipeline

import "strings"

// TextWriter accumulates extracted text while the HTML tree is walked.
// It tracks the chain of open elements so handlers can ask where they are.
type TextWriter struct {
	b       strings.Builder
	parents []string
}

// WriteString appends s verbatim.
func (w *TextWriter) WriteString(s string) {
	w.b.WriteString(s)
}

// ParagraphBreak ends the current paragraph with a blank line.
// It never emits a break at the start of output or doubles an existing one.
func (w *TextWriter) ParagraphBreak() {
	if w.b.Len() == 0 {
		return
	}
	s := w.b.String()
	switch {
	case strings.HasSuffix(s, "\n\n"):
	case strings.HasSuffix(s, "\n"):
		w.b.WriteByte('\n')
	default:
		w.b.WriteString("\n\n")
	}
}

// LineBreak ends the current line.
func (w *TextWriter) LineBreak() {
	w.b.WriteByte('\n')
}

// EndLine starts a new line unless output is empty or already at one.
func (w *TextWriter) EndLine() {
	if !w.AtLineStart() {
		w.b.WriteByte('\n')
	}
}

// AtLineStart reports whether output is empty or ends with a newline.
func (w *TextWriter) AtLineStart() bool {
	s := w.b.String()
	return s == "" || strings.HasSuffix(s, "\n")
}

// Within reports whether any open element has the given name.
func (w *TextWriter) Within(tag string) bool {
	for _, p := range w.parents {
		if p == tag {
			return true
		}
	}
	return false
}

func (w *TextWriter) push(tag string) {
	w.parents = append(w.parents, tag)
}

func (w *TextWriter) pop() {
	if len(w.parents) > 0 {
		w.parents = w.parents[:len(w.parents)-1]
	}
}

// String returns the text written so far.
func (w *TextWriter) String() string {
	return w.b.String()
}
