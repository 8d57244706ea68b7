package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBuiltinRanges(t *testing.T) {
	s := New()
	cases := []struct {
		r    rune
		want Script
	}{
		{'A', Latin},
		{'z', Latin},
		{'é', Latin},
		{'한', Korean},
		{'ᄀ', Korean}, // Hangul Jamo
		{'ひ', Japanese},
		{'カ', Japanese},
		{'中', Chinese},
		{'ب', Arabic},
		{'Д', Cyrillic},
		{'Ω', Greek},
		{'א', Hebrew},
		{'ไ', Thai},
		{'क', Devanagari},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, s.Detect(tc.r), "rune %q", tc.r)
	}
}

func TestDetectDefaultsToLatin(t *testing.T) {
	s := New()
	// Digits, symbols, punctuation and uncovered code points all fall back.
	for _, r := range []rune{'5', '$', '%', '!', '.', ' ', '\n', 0, '☃', '\U0001F600'} {
		assert.Equal(t, Latin, s.Detect(r), "rune %U", r)
	}
}

func TestDetectGlyphOverride(t *testing.T) {
	s := New(WithGlyphOverride('中', Japanese))
	require.Equal(t, Japanese, s.Detect('中'))
	// Other ideographs are untouched.
	require.Equal(t, Chinese, s.Detect('文'))
}

func TestDetectOrderIsDeterministic(t *testing.T) {
	// Korean precedes Latin in the default table, so a conflicting extra
	// range resolves to Korean every time.
	s := New(WithScriptRange(Korean, 'A', 'Z'))
	for i := 0; i < 100; i++ {
		require.Equal(t, Korean, s.Detect('A'))
	}
	require.Equal(t, Latin, s.Detect('a'))
}

func TestDetectCustomScript(t *testing.T) {
	const armenian = Script("armenian")
	s := New(
		WithScriptRange(armenian, 0x0530, 0x058F),
		WithLanguageOverride(armenian, "hy"),
	)
	require.Equal(t, armenian, s.Detect('Ա'))
	require.Equal(t, "hy", s.lang(armenian))
	require.Equal(t, "und", armenian.DefaultLang())
}
