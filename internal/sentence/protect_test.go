package sentence

import (
	"reflect"
	"testing"
)

// marksOf returns the marks of every protected glyph, in order.
func marksOf(gs glyphs) []Mark {
	var marks []Mark
	for _, g := range gs {
		if g.mark != Literal {
			marks = append(marks, g.mark)
		}
	}
	return marks
}

func TestProtectMarks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Mark
	}{
		{"composite abbreviation tail", "Smith et al..", []Mark{CompositeAbbreviation}},
		{"suspension points", "wait...", []Mark{SuspensionPoint, SuspensionPoint}},
		{"decimal point", "about 1.5 minutes", []Mark{DecimalPoint}},
		{"bare decimal point", "to be .625", []Mark{BareDecimalPoint}},
		{"acronym", "the U.S.A. today", []Mark{Acronym, Acronym, Acronym}},
		{"initial", "C. Jeung", []Mark{Initial}},
		{"title", "Dr. Who", []Mark{Title}},
		{"paren close", "in parens.)", []Mark{ParenClose}},
		{"quote straight double", `these 'protests'?"`, []Mark{QuoteStraightDouble}},
		{"quote curly double", "were 'done'.”", []Mark{QuoteCurlyDouble}},
		{"quote curly", "are they?”", []Mark{QuoteCurly}},
		{"quote single double", `me 'no.'"`, []Mark{QuoteSingleDouble}},
		{"quote single", "said 'stop.'", []Mark{QuoteSingle}},
		{"quote double", `said "stop."`, []Mark{QuoteDouble}},
		{"paren then quote folds twice", `(really?)"`, []Mark{QuoteDouble}},
		{"plain sentence", "nothing to protect here.", nil},
		{"opening quote after terminator", `left. "Why`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := marksOf(protect(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("protect(%q) marks = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestProtectRendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"shields render unchanged", "Dr. C. Jeung of the U.S.A. paid 1.5 or .5...", "Dr. C. Jeung of the U.S.A. paid 1.5 or .5..."},
		{"glued period gets a space", "ended.Then", "ended. Then"},
		{"glued bang gets a space", "Stop!Go", "Stop! Go"},
		{"glued question gets a space", "Why?Because", "Why? Because"},
		{"no space before closing quote", `said "stop."`, `said "stop."`},
		{"space before paren is dropped", "parens.)", "parens.)"},
		{"space before curly quote is dropped", "they?”", "they?”"},
		{"paren then quote", `(really?)"`, `(really?)"`},
		{"et al tail", "et al.. next", "et al. . next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := protect(tt.input).String(); got != tt.want {
				t.Errorf("protect(%q).String() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProtectLeavesOnlyRealTerminators(t *testing.T) {
	t.Parallel()

	gs := protect("Dr. C. Jeung paid 1.5 for the U.S.A. tour...")
	var terminators int
	for _, g := range gs {
		if g.isTerminator() {
			terminators++
		}
	}
	// Only the last period of the ellipsis is left as a terminator.
	if terminators != 1 {
		t.Errorf("terminators = %d, want 1", terminators)
	}
}

func TestRuleNames(t *testing.T) {
	t.Parallel()

	names := RuleNames()
	if len(names) != len(rules) {
		t.Fatalf("len(RuleNames()) = %d, want %d", len(names), len(rules))
	}

	wantOrder := []string{
		"composite-abbreviations",
		"suspension-points",
		"decimal-numbers",
		"bare-decimals",
		"acronyms",
		"initials",
		"titles",
		"separate",
		"paren-close",
		"quote-straight-double",
		"quote-curly-double",
		"quote-curly",
		"quote-single-double",
		"quote-single",
		"quote-double",
	}
	if !reflect.DeepEqual(names, wantOrder) {
		t.Errorf("RuleNames() = %v, want %v", names, wantOrder)
	}
}
