package script

// Detect classifies a single rune. Lookup order: glyph override, then the
// configured range entries in table order (first match wins), then Latin for
// anything uncovered — digits, generic punctuation, symbols. Pure and total:
// every rune yields a script.
func (s *Segmenter) Detect(r rune) Script {
	if sc, ok := s.cfg.GlyphOverrides[r]; ok {
		return sc
	}
	for _, entry := range s.cfg.ScriptRanges {
		for _, rr := range entry.Ranges {
			if rr.Contains(r) {
				return entry.Script
			}
		}
	}
	return Latin
}

// lang resolves the span language tag for a script, honoring overrides.
func (s *Segmenter) lang(sc Script) string {
	if tag, ok := s.cfg.LanguageOverrides[sc]; ok {
		return tag
	}
	return sc.DefaultLang()
}
