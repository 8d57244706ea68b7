package script

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{}`))
	require.NoError(t, err)
	assert.True(t, cfg.PreserveWhitespace)
	assert.Equal(t, 1, cfg.MinSegmentLength)
	assert.Equal(t, "ml-segment", cfg.Classes.Wrapper)
	assert.True(t, cfg.SkipElements["script"])
	assert.False(t, cfg.AutoWrap)
}

func TestLoadConfigFull(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{
		"preserveWhitespace": false,
		"minSegmentLength": 3,
		"debug": true,
		"autoWrap": true,
		"autoWrapSelector": "#content",
		"autoWrapDelayMs": 250,
		"glyphOverrides": {"々": "japanese"},
		"languageOverrides": {"korean": "KO-kr"},
		"skipElements": ["script", "svg"],
		"cssClasses": {
			"wrapper": "ml",
			"useShortNames": true,
			"scriptSpecific": {"korean": "hangul"}
		}
	}`))
	require.NoError(t, err)
	assert.False(t, cfg.PreserveWhitespace)
	assert.Equal(t, 3, cfg.MinSegmentLength)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.AutoWrap)
	assert.Equal(t, "#content", cfg.AutoWrapSelector)
	assert.Equal(t, 250*time.Millisecond, cfg.AutoWrapDelay)
	assert.Equal(t, Japanese, cfg.GlyphOverrides['々'])
	assert.Equal(t, "ko-KR", cfg.LanguageOverrides[Korean])
	assert.True(t, cfg.SkipElements["svg"])
	assert.False(t, cfg.SkipElements["style"], "file skip list replaces defaults")
	assert.Equal(t, "ml", cfg.Classes.Wrapper)
	assert.True(t, cfg.Classes.UseShortNames)
	assert.Equal(t, "hangul", cfg.Classes.ScriptSpecific[Korean])
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadConfigBadJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{not json`))
	require.Error(t, err)
}

func TestOptionsDoNotShareState(t *testing.T) {
	a := New(WithGlyphOverride('中', Japanese))
	b := New()
	assert.Equal(t, Japanese, a.Detect('中'))
	assert.Equal(t, Chinese, b.Detect('中'))
}
