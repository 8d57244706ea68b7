package script

import (
	"html"
	"strings"
)

// Renderer serializes segments as inline span markup:
//
//	<span lang="{tag}" data-script="{script}" class="{classes}">{text}</span>
//
// The lang attribute, the data-script attribute, and the class scheme are
// part of the compatibility surface for CSS and scripts targeting the
// output. All text and attribute values are HTML-escaped.
type Renderer struct {
	cfg Config
}

// NewRenderer builds a Renderer for a configuration.
func NewRenderer(cfg Config) *Renderer { return &Renderer{cfg: cfg} }

// DataScriptAttr is the attribute marking already-wrapped output.
const DataScriptAttr = "data-script"

// ClassList builds the class attribute value for a script: the wrapper
// class (when configured), the short or long script class, and any
// script-specific extra class, space-separated.
func (r *Renderer) ClassList(sc Script) string {
	classes := make([]string, 0, 3)
	if r.cfg.Classes.Wrapper != "" {
		classes = append(classes, r.cfg.Classes.Wrapper)
	}
	if r.cfg.Classes.UseShortNames {
		classes = append(classes, sc.ShortClass())
	} else {
		classes = append(classes, sc.LongClass())
	}
	if extra, ok := r.cfg.Classes.ScriptSpecific[sc]; ok && extra != "" {
		classes = append(classes, extra)
	}
	return strings.Join(classes, " ")
}

// Render serializes one segment. Blank segments (whitespace-only after
// trimming) pass through as escaped raw text with no wrapping element.
func (r *Renderer) Render(seg Segment) string {
	if strings.TrimSpace(seg.Text) == "" {
		return html.EscapeString(seg.Text)
	}
	var b strings.Builder
	b.WriteString(`<span lang="`)
	b.WriteString(html.EscapeString(seg.Lang))
	b.WriteString(`" `)
	b.WriteString(DataScriptAttr)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(string(seg.Script)))
	b.WriteString(`" class="`)
	b.WriteString(html.EscapeString(r.ClassList(seg.Script)))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(seg.Text))
	b.WriteString(`</span>`)
	return b.String()
}

// RenderAll serializes a segment sequence in order.
func (r *Renderer) RenderAll(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(r.Render(seg))
	}
	return b.String()
}
