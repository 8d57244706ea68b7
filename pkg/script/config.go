package script

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"
)

// ClassScheme controls the class attribute of rendered spans.
type ClassScheme struct {
	// Wrapper is applied to every rendered span. Empty disables it.
	Wrapper string
	// UseShortNames selects "ml-ko" over "korean-script" style names.
	UseShortNames bool
	// ScriptSpecific appends an extra class for particular scripts.
	ScriptSpecific map[Script]string
}

// Config is the full engine configuration. It is read-only after
// construction; a Segmenter keeps its own value and shares nothing mutable.
type Config struct {
	// ScriptRanges is the ordered classification table. Order is lookup
	// precedence.
	ScriptRanges []RangeEntry
	// GlyphOverrides force individual characters to a script, taking
	// precedence over ranges.
	GlyphOverrides map[rune]Script
	// LanguageOverrides replace a script's default span language tag.
	LanguageOverrides map[Script]string
	// Classes names the CSS classes on rendered spans.
	Classes ClassScheme
	// SkipElements are element names (lowercase) whose subtrees the tree
	// walker never touches.
	SkipElements map[string]bool
	// PreserveWhitespace folds whitespace and loose punctuation into the
	// surrounding segment. When false such runs become standalone segments.
	PreserveWhitespace bool
	// MinSegmentLength is the minimum trimmed rune count for a segment to
	// stand on its own; shorter runs are merged into a neighbor.
	MinSegmentLength int
	// Debug enables per-segment diagnostics on the package logger.
	Debug bool

	// AutoWrap asks the host to wrap automatically once the document is
	// ready, after AutoWrapDelay, targeting AutoWrapSelector (empty means
	// the whole document).
	AutoWrap         bool
	AutoWrapSelector string
	AutoWrapDelay    time.Duration
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		ScriptRanges:      DefaultScriptRanges(),
		GlyphOverrides:    map[rune]Script{},
		LanguageOverrides: map[Script]string{},
		Classes: ClassScheme{
			Wrapper:        "ml-segment",
			ScriptSpecific: map[Script]string{},
		},
		SkipElements: map[string]bool{
			"script": true, "style": true, "code": true,
			"pre": true, "textarea": true, "noscript": true,
		},
		PreserveWhitespace: true,
		MinSegmentLength:   1,
	}
}

// Option mutates a Config during construction, in the usual functional
// options style.
type Option func(*Config)

// WithGlyphOverride forces r to the given script regardless of range tables.
func WithGlyphOverride(r rune, s Script) Option {
	return func(c *Config) { c.GlyphOverrides[r] = s }
}

// WithLanguageOverride sets the span language tag for a script. The tag is
// canonicalized when it parses as BCP-47; otherwise it is kept verbatim
// (the engine never fails on configuration values).
func WithLanguageOverride(s Script, tag string) Option {
	return func(c *Config) {
		if parsed, err := language.Parse(tag); err == nil {
			tag = parsed.String()
		}
		c.LanguageOverrides[s] = tag
	}
}

// WithScriptRange appends an interval to a script's entry, creating the
// entry (at the end of the lookup order) if the script is new.
func WithScriptRange(s Script, lo, hi rune) Option {
	return func(c *Config) {
		for i := range c.ScriptRanges {
			if c.ScriptRanges[i].Script == s {
				c.ScriptRanges[i].Ranges = append(c.ScriptRanges[i].Ranges, RuneRange{lo, hi})
				return
			}
		}
		c.ScriptRanges = append(c.ScriptRanges, RangeEntry{s, []RuneRange{{lo, hi}}})
	}
}

// WithWrapperClass sets the class shared by every rendered span.
func WithWrapperClass(name string) Option {
	return func(c *Config) { c.Classes.Wrapper = name }
}

// WithShortNames toggles "ml-ko" style class names.
func WithShortNames(short bool) Option {
	return func(c *Config) { c.Classes.UseShortNames = short }
}

// WithScriptClass appends an extra class for spans of one script.
func WithScriptClass(s Script, name string) Option {
	return func(c *Config) { c.Classes.ScriptSpecific[s] = name }
}

// WithSkipElements replaces the skip list with the given element names.
func WithSkipElements(names ...string) Option {
	return func(c *Config) {
		c.SkipElements = make(map[string]bool, len(names))
		for _, n := range names {
			c.SkipElements[n] = true
		}
	}
}

// WithPreserveWhitespace toggles whitespace folding.
func WithPreserveWhitespace(preserve bool) Option {
	return func(c *Config) { c.PreserveWhitespace = preserve }
}

// WithMinSegmentLength sets the emission threshold.
func WithMinSegmentLength(n int) Option {
	return func(c *Config) { c.MinSegmentLength = n }
}

// WithDebug enables diagnostic logging.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}

// WithAutoWrap enables deferred automatic wrapping.
func WithAutoWrap(selector string, delay time.Duration) Option {
	return func(c *Config) {
		c.AutoWrap = true
		c.AutoWrapSelector = selector
		c.AutoWrapDelay = delay
	}
}

// fileConfig is the JSON shape of a configuration file. Every field is
// optional; absent fields keep their defaults.
type fileConfig struct {
	PreserveWhitespace *bool             `json:"preserveWhitespace"`
	MinSegmentLength   *int              `json:"minSegmentLength"`
	Debug              *bool             `json:"debug"`
	AutoWrap           *bool             `json:"autoWrap"`
	AutoWrapSelector   string            `json:"autoWrapSelector"`
	AutoWrapDelayMs    int               `json:"autoWrapDelayMs"`
	GlyphOverrides     map[string]Script `json:"glyphOverrides"`
	LanguageOverrides  map[Script]string `json:"languageOverrides"`
	SkipElements       []string          `json:"skipElements"`
	CSSClasses         *struct {
		Wrapper        string            `json:"wrapper"`
		UseShortNames  bool              `json:"useShortNames"`
		ScriptSpecific map[Script]string `json:"scriptSpecific"`
	} `json:"cssClasses"`
}

// LoadConfig reads a JSON configuration file and applies it over the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config not found at %s: %w", path, err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}

	if fc.PreserveWhitespace != nil {
		cfg.PreserveWhitespace = *fc.PreserveWhitespace
	}
	if fc.MinSegmentLength != nil {
		cfg.MinSegmentLength = *fc.MinSegmentLength
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	if fc.AutoWrap != nil {
		cfg.AutoWrap = *fc.AutoWrap
	}
	if fc.AutoWrapSelector != "" {
		cfg.AutoWrapSelector = fc.AutoWrapSelector
	}
	if fc.AutoWrapDelayMs > 0 {
		cfg.AutoWrapDelay = time.Duration(fc.AutoWrapDelayMs) * time.Millisecond
	}
	for ch, s := range fc.GlyphOverrides {
		for _, r := range ch {
			cfg.GlyphOverrides[r] = s
			break // first rune of the key only
		}
	}
	for s, tag := range fc.LanguageOverrides {
		if parsed, err := language.Parse(tag); err == nil {
			tag = parsed.String()
		}
		cfg.LanguageOverrides[s] = tag
	}
	if fc.SkipElements != nil {
		cfg.SkipElements = make(map[string]bool, len(fc.SkipElements))
		for _, n := range fc.SkipElements {
			cfg.SkipElements[n] = true
		}
	}
	if fc.CSSClasses != nil {
		cfg.Classes.Wrapper = fc.CSSClasses.Wrapper
		cfg.Classes.UseShortNames = fc.CSSClasses.UseShortNames
		if fc.CSSClasses.ScriptSpecific != nil {
			cfg.Classes.ScriptSpecific = fc.CSSClasses.ScriptSpecific
		}
	}
	return cfg, nil
}
