package sentence

// Mark records why a glyph was protected. Literal glyphs carry no mark.
type Mark uint8

const (
	// Literal is an unprotected glyph.
	Literal Mark = iota

	// Period marks. The glyph keeps its '.' rune but is no longer a terminator.
	CompositeAbbreviation // second period of "et al.."
	SuspensionPoint       // leading periods of "..."
	DecimalPoint          // "1.5"
	BareDecimalPoint      // " .625"
	Acronym               // "U.S.A."
	Initial               // "C."
	Title                 // "Dr."

	// Closing marks. The glyph is a terminator whose rendering also
	// carries the closing paren or quote that followed it in the source.
	ParenClose          // .)
	QuoteStraightDouble // '."
	QuoteCurlyDouble    // '.”
	QuoteCurly          // .”
	QuoteSingleDouble   // .'"
	QuoteSingle         // .'
	QuoteDouble         // ."
)

var markNames = [...]string{
	Literal:               "literal",
	CompositeAbbreviation: "composite-abbreviation",
	SuspensionPoint:       "suspension-point",
	DecimalPoint:          "decimal-point",
	BareDecimalPoint:      "bare-decimal-point",
	Acronym:               "acronym",
	Initial:               "initial",
	Title:                 "title",
	ParenClose:            "paren-close",
	QuoteStraightDouble:   "quote-straight-double",
	QuoteCurlyDouble:      "quote-curly-double",
	QuoteCurly:            "quote-curly",
	QuoteSingleDouble:     "quote-single-double",
	QuoteSingle:           "quote-single",
	QuoteDouble:           "quote-double",
}

// String returns a human-readable name for the mark.
func (m Mark) String() string {
	if int(m) < len(markNames) {
		return markNames[m]
	}
	return "unknown"
}

// ShieldsPeriod reports whether the mark turns a period into plain content.
func (m Mark) ShieldsPeriod() bool {
	return m >= CompositeAbbreviation && m <= Title
}

// Closes reports whether the mark folds a closing paren or quote into
// a terminator.
func (m Mark) Closes() bool {
	return m >= ParenClose && m <= QuoteDouble
}
