// Package script segments text into runs by writing system and renders each
// run as a marked-up span for styling/typography purposes.
//
// Classification is a proxy based on Unicode code-point ranges, not language
// identification: every rune is assigned exactly one script (falling back to
// latin for digits, symbols and anything uncovered), then maximal same-script
// runs become segments. Paired punctuation (brackets, quotes, guillemets, CJK
// brackets) is resolved by matching openers to closers so that punctuation
// stays attached to the text it encloses rather than to whatever script its
// own code point happens to live in.
//
// The package holds no global configuration: build a Segmenter with New and
// the functional options, or from a JSON file with LoadConfig.
package script
