package pipeline

import "testing"

func TestTextWriterParagraphBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"empty output stays empty", "", ""},
		{"after text", "a", "a\n\n"},
		{"after single newline", "a\n", "a\n\n"},
		{"after blank line", "a\n\n", "a\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := &TextWriter{}
			w.WriteString(tt.start)
			w.ParagraphBreak()
			if got := w.String(); got != tt.want {
				t.Errorf("ParagraphBreak() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextWriterParents(t *testing.T) {
	t.Parallel()

	w := &TextWriter{}
	if w.Within("pre") {
		t.Error("Within(pre) = true at top level, want false")
	}

	w.push("pre")
	w.push("code")
	if !w.Within("code") {
		t.Error("Within(code) = false, want true")
	}
	if !w.Within("pre") {
		t.Error("Within(pre) = false, want true")
	}

	w.pop()
	w.pop()
	w.pop() // extra pop is harmless
	if w.Within("pre") {
		t.Error("Within(pre) = true after pop, want false")
	}
}

func TestTextWriterEndLine(t *testing.T) {
	t.Parallel()

	w := &TextWriter{}
	w.EndLine()
	if w.String() != "" {
		t.Errorf("EndLine() on empty = %q, want empty", w.String())
	}
	w.WriteString("a")
	w.EndLine()
	w.EndLine()
	if got, want := w.String(), "a\n"; got != want {
		t.Errorf("EndLine() = %q, want %q", got, want)
	}
}
