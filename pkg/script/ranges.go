package script

// Code-point interval tables for the built-in scripts.
// Intervals are inclusive on both ends. Lookup order over scripts is the
// slice order and is part of the classification contract: when ranges
// overlap, the first entry wins.

// RuneRange is an inclusive code-point interval.
type RuneRange struct {
	Lo rune `json:"lo"`
	Hi rune `json:"hi"`
}

// Contains reports whether r falls inside the interval.
func (rr RuneRange) Contains(r rune) bool { return r >= rr.Lo && r <= rr.Hi }

// RangeEntry binds a script to its intervals. A Config holds an ordered
// slice of these; order determines lookup precedence.
type RangeEntry struct {
	Script Script
	Ranges []RuneRange
}

// DefaultScriptRanges returns the built-in classification table. The slice
// is freshly allocated so callers may extend it without affecting other
// configurations. Latin sits last: chiefly documentation, since unmatched
// runes default to latin anyway.
func DefaultScriptRanges() []RangeEntry {
	return []RangeEntry{
		{Korean, []RuneRange{
			{0x1100, 0x11FF}, // Hangul Jamo
			{0x3130, 0x318F}, // Hangul Compatibility Jamo
			{0xA960, 0xA97F}, // Hangul Jamo Extended-A
			{0xAC00, 0xD7A3}, // Hangul Syllables
			{0xD7B0, 0xD7FF}, // Hangul Jamo Extended-B
		}},
		{Japanese, []RuneRange{
			{0x3040, 0x309F}, // Hiragana
			{0x30A0, 0x30FF}, // Katakana
			{0x31F0, 0x31FF}, // Katakana Phonetic Extensions
			{0xFF66, 0xFF9D}, // Halfwidth Katakana
		}},
		{Chinese, []RuneRange{
			{0x3400, 0x4DBF}, // CJK Extension A
			{0x4E00, 0x9FFF}, // CJK Unified Ideographs
			{0xF900, 0xFAFF}, // CJK Compatibility Ideographs
		}},
		{Arabic, []RuneRange{
			{0x0600, 0x06FF},
			{0x0750, 0x077F}, // Arabic Supplement
			{0x08A0, 0x08FF}, // Arabic Extended-A
			{0xFB50, 0xFDFF}, // Presentation Forms-A
			{0xFE70, 0xFEFF}, // Presentation Forms-B
		}},
		{Cyrillic, []RuneRange{
			{0x0400, 0x04FF},
			{0x0500, 0x052F}, // Cyrillic Supplement
		}},
		{Greek, []RuneRange{
			{0x0370, 0x03FF},
			{0x1F00, 0x1FFF}, // Greek Extended
		}},
		{Hebrew, []RuneRange{
			{0x0590, 0x05FF},
			{0xFB1D, 0xFB4F}, // Presentation Forms
		}},
		{Thai, []RuneRange{
			{0x0E00, 0x0E7F},
		}},
		{Devanagari, []RuneRange{
			{0x0900, 0x097F},
			{0xA8E0, 0xA8FF}, // Devanagari Extended
		}},
		{Latin, []RuneRange{
			{0x0041, 0x005A},
			{0x0061, 0x007A},
			{0x00C0, 0x00FF}, // Latin-1 letters
			{0x0100, 0x017F}, // Latin Extended-A
			{0x0180, 0x024F}, // Latin Extended-B
		}},
	}
}
