package script

import "golang.org/x/text/language"

// Script identifies a writing system. The built-in set below is what the
// default range tables cover; configurations may introduce additional scripts
// through WithScriptRange, in which case callers should also provide a
// language override (the default tag for an unknown script is "und").
type Script string

const (
	Latin      Script = "latin"
	Korean     Script = "korean"
	Japanese   Script = "japanese"
	Chinese    Script = "chinese"
	Arabic     Script = "arabic"
	Cyrillic   Script = "cyrillic"
	Greek      Script = "greek"
	Hebrew     Script = "hebrew"
	Thai       Script = "thai"
	Devanagari Script = "devanagari"
)

// scriptNone marks "no segment open" in the state machine. It is never
// emitted.
const scriptNone Script = ""

// defaultLanguages maps each built-in script to the language tag carried on
// rendered spans when no override is configured. Script detection is not
// language identification, so these are representative tags only (cyrillic
// text is tagged "ru" whether or not it is Russian).
var defaultLanguages = map[Script]language.Tag{
	Latin:      language.English,
	Korean:     language.Korean,
	Japanese:   language.Japanese,
	Chinese:    language.Chinese,
	Arabic:     language.Arabic,
	Cyrillic:   language.Russian,
	Greek:      language.Greek,
	Hebrew:     language.Hebrew,
	Thai:       language.Thai,
	Devanagari: language.Hindi,
}

func (s Script) String() string { return string(s) }

// DefaultLang returns the BCP-47 tag used for spans of this script when the
// configuration carries no override, or "und" for scripts outside the
// built-in set.
func (s Script) DefaultLang() string {
	if tag, ok := defaultLanguages[s]; ok {
		return tag.String()
	}
	return "und"
}

// LongClass is the verbose CSS class name form, e.g. "korean-script".
func (s Script) LongClass() string { return string(s) + "-script" }

// ShortClass is the compact CSS class name form, e.g. "ml-ko". Scripts
// without a default language tag fall back to the script name itself.
func (s Script) ShortClass() string {
	if tag, ok := defaultLanguages[s]; ok {
		return "ml-" + tag.String()
	}
	return "ml-" + string(s)
}

// Segment is a maximal contiguous run of input text assigned to one script.
// Segments are produced in order and their Text fields concatenate back to
// the original input (blank runs included).
type Segment struct {
	Text   string `json:"text"`
	Script Script `json:"script"`
	Lang   string `json:"lang"`
}
