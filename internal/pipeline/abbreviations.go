package pipeline

import (
	"regexp"
	"slices"
	"strings"
)

// abbreviations maps common lowercase abbreviations to their folded form.
// Folding drops the periods so the cutter never has to guess about them.
var abbreviations = map[string]string{
	"i.e.":  "ie",
	"e.g.":  "eg",
	"etc.":  "etc",
	"mr.":   "mr",
	"mrs.":  "mrs",
	"vs.":   "vs",
	"dr.":   "dr",
	"prof.": "prof",
	"sr.":   "sr",
	"jr.":   "jr",
	"st.":   "st",
	"jan.":  "jan",
	"feb.":  "feb",
	"mar.":  "mar",
	"apr.":  "apr",
	"jun.":  "jun",
	"jul.":  "jul",
	"aug.":  "aug",
	"sept.": "sept",
	"oct.":  "oct",
	"nov.":  "nov",
	"dec.":  "dec",
	"a.m.":  "am",
	"p.m.":  "pm",
	"u.s.":  "us",
	"u.k.":  "uk",
}

// abbreviationPattern matches any key of abbreviations at a word start.
// Without the leading boundary "first." would fold to "first".
var abbreviationPattern = regexp.MustCompile(`\b(?:` + alternation(abbreviations) + `)`)

// FoldAbbreviations replaces lowercase abbreviations with their period-free
// forms. Capitalized forms ("Dr.") are left to the cutter.
func FoldAbbreviations(text string) string {
	return abbreviationPattern.ReplaceAllStringFunc(text, func(m string) string {
		return abbreviations[m]
	})
}

// alternation builds a regex alternation of the quoted keys, longest first
// so that "mrs." wins over "mr." wherever both could start.
func alternation(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(keys, "|")
}
