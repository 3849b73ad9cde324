package sentence

import "regexp"

// match is one pattern hit expressed in glyph indices.
// groups[i] is {-1, -1} when group i did not participate.
type match struct {
	src        glyphs
	start, end int
	groups     [][2]int
}

func (m match) span() glyphs {
	return m.src[m.start:m.end]
}

// rewriteFunc returns the replacement for a matched span. It must not
// modify m.src; the result is spliced in place of the span.
type rewriteFunc func(m match) glyphs

// rule is a single protection pass: every non-overlapping hit of pattern,
// scanning left to right, is replaced by its rewrite.
type rule struct {
	name    string
	pattern *regexp.Regexp
	rewrite rewriteFunc
}

func (r rule) apply(gs glyphs) glyphs {
	proj, at := gs.project()
	locs := r.pattern.FindAllStringSubmatchIndex(proj, -1)
	if len(locs) == 0 {
		return gs
	}

	out := make(glyphs, 0, len(gs)+len(locs))
	last := 0
	for _, loc := range locs {
		m := match{
			src:    gs,
			start:  at[loc[0]],
			end:    at[loc[1]],
			groups: make([][2]int, len(loc)/2),
		}
		for g := range m.groups {
			if loc[2*g] < 0 {
				m.groups[g] = [2]int{-1, -1}
				continue
			}
			m.groups[g] = [2]int{at[loc[2*g]], at[loc[2*g+1]]}
		}
		out = append(out, gs[last:m.start]...)
		out = append(out, r.rewrite(m)...)
		last = m.end
	}
	return append(out, gs[last:]...)
}

// protect runs every rule over s in order.
func protect(s string) glyphs {
	gs := newGlyphs(s)
	for _, r := range rules {
		gs = r.apply(gs)
	}
	return gs
}

// shield marks every literal period inside the given group.
func shield(mark Mark, group int) rewriteFunc {
	return func(m match) glyphs {
		out := append(glyphs(nil), m.span()...)
		lo, hi := m.groups[group][0], m.groups[group][1]
		for i := lo; i < hi; i++ {
			g := &out[i-m.start]
			if g.mark == Literal && g.r == '.' {
				g.mark = mark
			}
		}
		return out
	}
}

// separate inserts a space after group 1 so that a terminator glued to
// the next word is followed by whitespace.
func separate(m match) glyphs {
	cut := m.groups[1][1] - m.start
	span := m.span()
	out := make(glyphs, 0, len(span)+1)
	out = append(out, span[:cut]...)
	out = append(out, glyph{r: ' '})
	return append(out, span[cut:]...)
}

// closeWith folds the whole match into the terminator captured by group 1.
// The folded glyph still terminates the sentence and renders as
// prefix + terminator + suffix, dropping any whitespace the match spanned.
func closeWith(mark Mark, prefix, suffix string) rewriteFunc {
	return func(m match) glyphs {
		term := m.src[m.groups[1][0]]
		return glyphs{{
			r:    term.r,
			mark: mark,
			text: prefix + term.String() + suffix,
		}}
	}
}
