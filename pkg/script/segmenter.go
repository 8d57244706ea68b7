package script

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segmenter splits text into script-tagged segments according to its
// configuration. The configuration is fixed at construction; Segment may be
// called concurrently from multiple goroutines.
type Segmenter struct {
	cfg Config
}

// New builds a Segmenter from the default configuration plus options.
func New(opts ...Option) *Segmenter {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds a Segmenter around an explicit configuration value,
// e.g. one produced by LoadConfig.
func NewWithConfig(cfg Config) *Segmenter {
	return &Segmenter{cfg: cfg}
}

// Config returns a copy of the segmenter's configuration.
func (s *Segmenter) Config() Config { return s.cfg }

// pass is the per-invocation state of the segmentation state machine:
// the accumulating segment buffer, the script of the open segment
// (scriptNone when no segment is open), the last concrete script seen, and
// the pairing tracker stack.
type pass struct {
	s     *Segmenter
	runes []rune

	cur       []rune
	curScript Script
	last      Script
	stack     []pairEntry
	neutral   bool // current buffer is an isolated whitespace run (PreserveWhitespace off)

	out []Segment
}

// Segment splits text into ordered, contiguous script runs. The empty input
// and all-blank input yield no segments; otherwise the concatenation of the
// returned segments' Text equals text exactly.
func (s *Segmenter) Segment(text string) []Segment {
	if text == "" {
		return nil
	}
	p := &pass{s: s, runes: []rune(text)}
	p.run()
	return s.finalize(p.out)
}

func (p *pass) run() {
	preserve := p.s.cfg.PreserveWhitespace
	for i := 0; i < len(p.runes); i++ {
		r := p.runes[i]

		switch {
		case isPaired(r):
			p.flushNeutral()
			if symmetricPairs[r] && hasUnmatched(p.stack, r) {
				p.handleCloser(r, i)
			} else if isOpener(r) || symmetricPairs[r] {
				p.handleOpener(r)
			} else {
				p.handleCloser(r, i)
			}

		case unicode.IsSpace(r) || isLoosePunct(r):
			if preserve {
				if p.curScript == scriptNone {
					p.curScript = p.contextScript()
				}
				p.cur = append(p.cur, r)
			} else {
				if !p.neutral && len(p.cur) > 0 {
					p.emit()
				}
				if p.curScript == scriptNone {
					p.curScript = p.contextScript()
				}
				p.neutral = true
				p.cur = append(p.cur, r)
			}

		default:
			p.flushNeutral()
			sc := p.s.Detect(r)
			p.last = sc
			switch {
			case p.curScript == scriptNone:
				p.curScript = sc
			case sc != p.curScript:
				p.closeForScript(sc)
			}
			p.cur = append(p.cur, r)
		}
	}
	p.emit()
}

// contextScript is the fallback chain shared by whitespace folding and
// punctuation resolution: the open segment's script, else the last concrete
// script seen, else latin.
func (p *pass) contextScript() Script {
	if p.curScript != scriptNone {
		return p.curScript
	}
	if p.last != scriptNone {
		return p.last
	}
	return Latin
}

func (p *pass) flushNeutral() {
	if p.neutral {
		p.emit()
		p.neutral = false
	}
}

// handleOpener resolves an opening glyph to the surrounding context and
// pushes it. The resolution is provisional: if the very next run of text
// turns out to belong to another script, closeForScript migrates the opener
// into that segment and re-resolves it.
func (p *pass) handleOpener(r rune) {
	resolved := p.contextScript()
	if p.curScript == scriptNone {
		p.curScript = resolved
	}
	p.stack = append(p.stack, pairEntry{glyph: r, script: resolved, bufPos: len(p.cur)})
	p.cur = append(p.cur, r)
}

// handleCloser resolves a closing glyph against the stack, splits the
// current segment when the resolution disagrees with it, and applies the
// look-ahead rule: if the next concrete character after position i belongs
// to another script, the segment is force-closed so the closer stays glued
// to the text it closes.
func (p *pass) handleCloser(r rune, i int) {
	var resolved Script
	stack, e, ok := popMatching(p.stack, r)
	if ok {
		p.stack = stack
		resolved = e.script
	} else {
		resolved = p.contextScript()
	}

	if p.curScript != scriptNone && resolved != p.curScript {
		p.closeForScript(resolved)
	}
	if p.curScript == scriptNone {
		p.curScript = resolved
	}
	p.cur = append(p.cur, r)

	// Peek at the next concrete character; a script change there means the
	// boundary belongs exactly after this closer.
	for j := i + 1; j < len(p.runes); j++ {
		next := p.runes[j]
		if unicode.IsSpace(next) || unicode.IsPunct(next) {
			continue
		}
		if p.s.Detect(next) != resolved {
			p.emit()
		}
		break
	}
}

// closeForScript ends the current segment because upcoming text belongs to
// next. A trailing run of still-unmatched openers at the end of the buffer
// migrates into the new segment (an opener attaches forward to the text it
// opens) and its stack entries re-resolve to next.
func (p *pass) closeForScript(next Script) {
	cut := len(p.cur)
	for i := len(p.stack) - 1; i >= 0; i-- {
		if cut > 0 && p.stack[i].bufPos == cut-1 {
			cut--
			continue
		}
		break
	}

	if cut > 0 {
		p.append(Segment{Text: string(p.cur[:cut]), Script: p.curScript, Lang: p.s.lang(p.curScript)})
	}
	carried := append([]rune(nil), p.cur[cut:]...)
	p.cur = append(p.cur[:0], carried...)
	for i := range p.stack {
		if p.stack[i].bufPos >= cut {
			p.stack[i].bufPos -= cut
			p.stack[i].script = next
		} else {
			p.stack[i].bufPos = -1
		}
	}
	p.curScript = next
}

// emit flushes the whole buffer as one segment and resets the machine to
// the "no segment open" state.
func (p *pass) emit() {
	if len(p.cur) > 0 {
		p.append(Segment{Text: string(p.cur), Script: p.curScript, Lang: p.s.lang(p.curScript)})
		p.cur = p.cur[:0]
	}
	for i := range p.stack {
		p.stack[i].bufPos = -1
	}
	p.curScript = scriptNone
	p.neutral = false
}

func (p *pass) append(seg Segment) {
	p.out = append(p.out, seg)
	if p.s.cfg.Debug {
		Logger().Debug("segment",
			"script", seg.Script,
			"lang", seg.Lang,
			"runes", utf8.RuneCountInString(seg.Text))
	}
}

// finalize applies the emission filter. Blank-only output collapses to
// nothing. Segments whose trimmed length falls below MinSegmentLength are
// merged into the previous segment (or the following one when nothing has
// been kept yet) rather than dropped, so no characters are lost; only when
// the entire input is below the threshold does the result become empty.
func (s *Segmenter) finalize(out []Segment) []Segment {
	allBlank := true
	for _, seg := range out {
		if strings.TrimSpace(seg.Text) != "" {
			allBlank = false
			break
		}
	}
	if allBlank {
		return nil
	}
	if s.cfg.MinSegmentLength <= 1 {
		return out
	}

	merged := make([]Segment, 0, len(out))
	pending := ""
	for _, seg := range out {
		trimmed := strings.TrimSpace(seg.Text)
		if trimmed != "" && utf8.RuneCountInString(trimmed) < s.cfg.MinSegmentLength {
			if len(merged) > 0 {
				merged[len(merged)-1].Text += seg.Text
			} else {
				pending += seg.Text
			}
			continue
		}
		if pending != "" {
			seg.Text = pending + seg.Text
			pending = ""
		}
		merged = append(merged, seg)
	}
	if pending != "" {
		if len(merged) == 0 {
			return nil
		}
		merged[len(merged)-1].Text += pending
	}

	// The merge can leave the survivors blank-only (e.g. every concrete run
	// was under the threshold and got glued to whitespace).
	for _, seg := range merged {
		if strings.TrimSpace(seg.Text) != "" &&
			utf8.RuneCountInString(strings.TrimSpace(seg.Text)) >= s.cfg.MinSegmentLength {
			return merged
		}
	}
	return nil
}
