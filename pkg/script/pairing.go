package script

import "unicode"

// Paired punctuation tables. Openers map to their closers; straight quotes
// open and close with the same glyph and are disambiguated against the
// stack: a straight quote with an unmatched twin already open acts as its
// closer.

var pairOpeners = map[rune]rune{
	'(': ')', '[': ']', '{': '}',
	'“': '”', // curly double quotes
	'‘': '’', // curly single quotes
	'«': '»', // guillemets
	'‹': '›', // single guillemets
	'（': '）', // fullwidth parentheses
	'［': '］', // fullwidth brackets
	'｛': '｝', // fullwidth braces
	'【': '】', // black lenticular brackets
	'「': '」', // corner brackets
	'『': '』', // white corner brackets
	'〈': '〉', // angle brackets
	'《': '》', // double angle brackets
	'〔': '〕', // tortoise shell brackets
}

var pairClosers map[rune]rune

// symmetric glyphs serve as both opener and closer.
var symmetricPairs = map[rune]bool{
	'"':  true,
	'\'': true,
}

func init() {
	pairClosers = make(map[rune]rune, len(pairOpeners))
	for o, c := range pairOpeners {
		pairClosers[c] = o
	}
}

// pairEntry is one unmatched opener on the tracker stack. bufPos is the
// opener's index inside the segment buffer it was appended to, or -1 once
// that buffer has been emitted (a carried-over opener can then no longer
// migrate).
type pairEntry struct {
	glyph  rune
	script Script
	bufPos int
}

func isOpener(r rune) bool { _, ok := pairOpeners[r]; return ok }
func isCloser(r rune) bool { _, ok := pairClosers[r]; return ok }
func isPaired(r rune) bool { return isOpener(r) || isCloser(r) || symmetricPairs[r] }

// openerFor returns the opener glyph a closer matches against. Symmetric
// glyphs match themselves.
func openerFor(r rune) rune {
	if symmetricPairs[r] {
		return r
	}
	return pairClosers[r]
}

// isLoosePunct reports punctuation that is folded like whitespace rather
// than pair-tracked. Symbols (currency signs and the like) are deliberately
// excluded: they classify through the range tables and default to latin.
func isLoosePunct(r rune) bool {
	return unicode.IsPunct(r) && !isPaired(r)
}

// popMatching removes and returns the most recent stack entry whose opener
// matches the given closer, searching top-down. The matched entry need not
// be the top: unbalanced inner pairs are skipped over.
func popMatching(stack []pairEntry, closer rune) ([]pairEntry, pairEntry, bool) {
	opener := openerFor(closer)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].glyph == opener {
			e := stack[i]
			return append(stack[:i], stack[i+1:]...), e, true
		}
	}
	return stack, pairEntry{}, false
}

// hasUnmatched reports whether an unmatched entry for the glyph is open.
// Used to decide whether a symmetric quote closes or opens.
func hasUnmatched(stack []pairEntry, glyph rune) bool {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].glyph == glyph {
			return true
		}
	}
	return false
}
