// Package wrap applies script segmentation to parsed HTML documents: it
// walks a tree, finds text-bearing nodes, and replaces each with a sequence
// of span elements tagged by script and language.
//
// The engine itself (pkg/script) never sees selectors or trees; this package
// is the boundary layer that resolves selectors into root nodes and performs
// the DOM surgery. Wrapping is a single synchronous pass and is not
// reentrant: concurrent invocations over overlapping subtrees are undefined.
package wrap

import (
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/script-segmenter/pkg/script"
)

// Wrapper wraps text nodes of a document in script-tagged spans according
// to the segmenter's configuration.
type Wrapper struct {
	seg *script.Segmenter
	ren *script.Renderer
	cfg script.Config
}

// New builds a Wrapper around a segmenter.
func New(seg *script.Segmenter) *Wrapper {
	cfg := seg.Config()
	return &Wrapper{seg: seg, ren: script.NewRenderer(cfg), cfg: cfg}
}

// Wrap resolves the selector against doc and wraps every matched root.
// An empty selector targets the whole document. A selector matching nothing
// processes zero roots; that is not a failure. Returns the number of root
// nodes processed.
func (w *Wrapper) Wrap(doc *html.Node, selector string) int {
	if doc == nil {
		return 0
	}
	roots := []*html.Node{doc}
	if strings.TrimSpace(selector) != "" {
		roots = resolve(doc, selector)
	}
	return w.WrapNodes(roots...)
}

// WrapNodes wraps the given roots directly, bypassing selector resolution.
func (w *Wrapper) WrapNodes(roots ...*html.Node) int {
	count := 0
	for _, root := range roots {
		if root == nil {
			continue
		}
		// Collect first, mutate second: replacing nodes during traversal
		// would invalidate sibling iteration.
		targets := w.collect(root)
		for _, t := range targets {
			w.replace(t)
		}
		if w.cfg.Debug {
			script.Logger().Debug("wrapped root", "textNodes", len(targets))
		}
		count++
	}
	return count
}

// WrapLater schedules a single deferred Wrap, letting other code finish
// mutating the tree first. The returned timer can be stopped to cancel.
// The wrap runs on the timer goroutine; the caller must not mutate the tree
// concurrently.
func (w *Wrapper) WrapLater(doc *html.Node, selector string, delay time.Duration) *time.Timer {
	return time.AfterFunc(delay, func() {
		w.Wrap(doc, selector)
	})
}

// collect gathers the text nodes under root in document order, excluding
// skip-listed elements and subtrees this engine already wrapped (detected by
// the data-script attribute).
func (w *Wrapper) collect(root *html.Node) []*html.Node {
	var targets []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			targets = append(targets, n)
			return
		case html.ElementNode:
			if w.cfg.SkipElements[strings.ToLower(n.Data)] {
				return
			}
			if hasAttr(n, script.DataScriptAttr) {
				return
			}
		case html.CommentNode, html.DoctypeNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return targets
}

// replace swaps a text node for the rendered segment sequence. Text that
// yields no segments (empty or blank-only) is left alone.
func (w *Wrapper) replace(t *html.Node) {
	if t.Parent == nil {
		return
	}
	segs := w.seg.Segment(t.Data)
	if len(segs) == 0 {
		return
	}
	for _, seg := range segs {
		t.Parent.InsertBefore(w.buildNode(seg), t)
	}
	t.Parent.RemoveChild(t)
}

// buildNode renders one segment as a DOM node. Blank segments stay raw text
// nodes; everything else becomes a span carrying the lang / data-script /
// class contract. Escaping happens at serialization time via html.Render.
func (w *Wrapper) buildNode(seg script.Segment) *html.Node {
	if strings.TrimSpace(seg.Text) == "" {
		return &html.Node{Type: html.TextNode, Data: seg.Text}
	}
	span := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr: []html.Attribute{
			{Key: "lang", Val: seg.Lang},
			{Key: script.DataScriptAttr, Val: string(seg.Script)},
			{Key: "class", Val: w.ren.ClassList(seg.Script)},
		},
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: seg.Text})
	return span
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
