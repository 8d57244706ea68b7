package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParenthesesResolveToEnclosedScript(t *testing.T) {
	segs := New().Segment("(한글)")
	require.Len(t, segs, 1)
	assert.Equal(t, Segment{Text: "(한글)", Script: Korean, Lang: "ko"}, segs[0])
}

func TestOpenerInheritsOpenSegment(t *testing.T) {
	// Latin pair enclosing latin content after korean text stays latin.
	segs := New().Segment("한글 (abc [def] ghi)")
	require.Equal(t, []Segment{
		{Text: "한글 ", Script: Korean, Lang: "ko"},
		{Text: "(abc [def] ghi)", Script: Latin, Lang: "en"},
	}, segs)
}

func TestStraightQuotesPair(t *testing.T) {
	segs := New().Segment(`"한글" ok`)
	require.Len(t, segs, 3)
	assert.Equal(t, Segment{Text: `"한글"`, Script: Korean, Lang: "ko"}, segs[0])
	assert.Equal(t, Segment{Text: "ok", Script: Latin, Lang: "en"}, segs[2])
}

func TestCJKBracketsPair(t *testing.T) {
	segs := New().Segment("abc 「한글」")
	require.Equal(t, []Segment{
		{Text: "abc ", Script: Latin, Lang: "en"},
		{Text: "「한글」", Script: Korean, Lang: "ko"},
	}, segs)
}

func TestApostropheInsideWordIsHarmless(t *testing.T) {
	segs := New().Segment("don't")
	require.Len(t, segs, 1)
	assert.Equal(t, "don't", segs[0].Text)
	assert.Equal(t, Latin, segs[0].Script)
}

func TestPopMatchingSkipsUnrelatedEntries(t *testing.T) {
	stack := []pairEntry{
		{glyph: '(', script: Latin, bufPos: 0},
		{glyph: '[', script: Korean, bufPos: 3},
	}
	rest, e, ok := popMatching(stack, ')')
	require.True(t, ok)
	assert.Equal(t, '(', e.glyph)
	assert.Equal(t, Latin, e.script)
	require.Len(t, rest, 1)
	assert.Equal(t, '[', rest[0].glyph)
}

func TestPopMatchingUnbalanced(t *testing.T) {
	_, _, ok := popMatching(nil, ')')
	require.False(t, ok)
}

func TestPairTablesRoundTrip(t *testing.T) {
	for o, c := range pairOpeners {
		assert.True(t, isOpener(o))
		assert.True(t, isCloser(c))
		assert.Equal(t, o, openerFor(c))
	}
	assert.True(t, isPaired('"'))
	assert.Equal(t, '\'', openerFor('\''))
}
