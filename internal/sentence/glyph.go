package sentence

import (
	"strings"
	"unicode/utf8"
)

// shieldRune stands in for a protected period when rules match against a
// projection. It only has to be something no pattern treats specially;
// the glyph itself keeps its real rune.
const shieldRune = '\uFFFC'

// glyph is one character of the text being cut together with its
// protection state. Closing glyphs carry their full rendering in text, and
// so do invalid UTF-8 bytes, which match as utf8.RuneError.
type glyph struct {
	r    rune
	mark Mark
	text string
}

// isTerminator reports whether the glyph ends a sentence.
func (g glyph) isTerminator() bool {
	if g.mark.Closes() {
		return true
	}
	return g.mark == Literal && isTerminatorRune(g.r)
}

func (g glyph) isNewline() bool {
	return g.mark == Literal && g.r == '\n'
}

// projected returns the rune that rule patterns see for this glyph.
func (g glyph) projected() rune {
	if g.mark.ShieldsPeriod() {
		return shieldRune
	}
	return g.r
}

func (g glyph) writeTo(b *strings.Builder) {
	if g.text != "" {
		b.WriteString(g.text)
		return
	}
	b.WriteRune(g.r)
}

func (g glyph) String() string {
	var b strings.Builder
	g.writeTo(&b)
	return b.String()
}

func isTerminatorRune(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// glyphs is an ordered run of glyphs.
type glyphs []glyph

func newGlyphs(s string) glyphs {
	out := make(glyphs, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		g := glyph{r: r}
		if r == utf8.RuneError && size == 1 {
			g.text = s[i : i+1]
		}
		out = append(out, g)
		i += size
	}
	return out
}

// project renders the sequence for pattern matching. at maps every byte
// offset that starts a glyph (plus the final length) back to a glyph index.
func (gs glyphs) project() (proj string, at []int) {
	var b strings.Builder
	b.Grow(len(gs))
	at = make([]int, 0, len(gs)+1)
	for i, g := range gs {
		for len(at) < b.Len() {
			at = append(at, -1)
		}
		at = append(at, i)
		b.WriteRune(g.projected())
	}
	for len(at) < b.Len() {
		at = append(at, -1)
	}
	at = append(at, len(gs))
	return b.String(), at
}

// String decodes every glyph back to its source punctuation.
func (gs glyphs) String() string {
	var b strings.Builder
	b.Grow(len(gs))
	for _, g := range gs {
		g.writeTo(&b)
	}
	return b.String()
}
