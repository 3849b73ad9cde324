package sentence

import "regexp"

// rules is the protection pipeline. Order is load-bearing: each rule sees
// the output of the ones before it, and several patterns overlap (initials
// and titles both start with a capital letter). Reordering changes where
// sentences break.
//
// Period shields run first, then separate guarantees a space after every
// remaining terminator that is glued to a word, then the closing rules fold
// a terminator and the paren or quote that follows it into one glyph.
//
// The straight-quote rules require the quote to touch the terminator: a
// straight quote after whitespace opens the next sentence. The paren and
// curly-quote rules allow one whitespace rune, which separate inserts
// between a terminator and a following ')' or '”'.
var rules = []rule{
	{
		name:    "composite-abbreviations",
		pattern: regexp.MustCompile(`et al\.(\.)`),
		rewrite: shield(CompositeAbbreviation, 1),
	},
	{
		name:    "suspension-points",
		pattern: regexp.MustCompile(`(\.\.)\.`),
		rewrite: shield(SuspensionPoint, 1),
	},
	{
		name:    "decimal-numbers",
		pattern: regexp.MustCompile(`[0-9]+(\.)[0-9]+`),
		rewrite: shield(DecimalPoint, 1),
	},
	{
		name:    "bare-decimals",
		pattern: regexp.MustCompile(`\s(\.)[0-9]+`),
		rewrite: shield(BareDecimalPoint, 1),
	},
	{
		name:    "acronyms",
		pattern: regexp.MustCompile(`(?:[A-Za-z]\.){2,}`),
		rewrite: shield(Acronym, 0),
	},
	{
		name:    "initials",
		pattern: regexp.MustCompile(`[A-Z](\.)`),
		rewrite: shield(Initial, 1),
	},
	{
		name:    "titles",
		pattern: regexp.MustCompile(`[A-Z][a-z]{1,3}(\.)`),
		rewrite: shield(Title, 1),
	},
	{
		name:    "separate",
		pattern: regexp.MustCompile(`([^.?!]\.|[!?])[^\s"']`),
		rewrite: separate,
	},
	{
		name:    "paren-close",
		pattern: regexp.MustCompile(`([.?!])\s?\)`),
		rewrite: closeWith(ParenClose, "", ")"),
	},
	{
		name:    "quote-straight-double",
		pattern: regexp.MustCompile(`'([.?!])"`),
		rewrite: closeWith(QuoteStraightDouble, "'", `"`),
	},
	{
		name:    "quote-curly-double",
		pattern: regexp.MustCompile(`'([.?!])\s?”`),
		rewrite: closeWith(QuoteCurlyDouble, "'", "”"),
	},
	{
		name:    "quote-curly",
		pattern: regexp.MustCompile(`([.?!])\s?”`),
		rewrite: closeWith(QuoteCurly, "", "”"),
	},
	{
		name:    "quote-single-double",
		pattern: regexp.MustCompile(`([.?!])'"`),
		rewrite: closeWith(QuoteSingleDouble, "", `'"`),
	},
	{
		name:    "quote-single",
		pattern: regexp.MustCompile(`([.?!])'`),
		rewrite: closeWith(QuoteSingle, "", "'"),
	},
	{
		name:    "quote-double",
		pattern: regexp.MustCompile(`([.?!])"`),
		rewrite: closeWith(QuoteDouble, "", `"`),
	},
}

// RuleNames lists the protection passes in the order they run.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}
