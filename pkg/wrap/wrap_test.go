package wrap

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/script-segmenter/pkg/script"
)

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func render(t *testing.T, doc *html.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, html.Render(&b, doc))
	return b.String()
}

func TestWrapMixedText(t *testing.T) {
	doc := parse(t, `<p id="content">Hello 안녕하세요 world</p>`)
	w := New(script.New())

	count := w.Wrap(doc, "#content")
	require.Equal(t, 1, count)

	out := render(t, doc)
	assert.Contains(t, out,
		`<span lang="en" data-script="latin" class="ml-segment latin-script">Hello </span>`)
	assert.Contains(t, out,
		`<span lang="ko" data-script="korean" class="ml-segment korean-script">안녕하세요 </span>`)
	assert.Contains(t, out,
		`<span lang="en" data-script="latin" class="ml-segment latin-script">world</span>`)
}

func TestWrapWholeDocumentByDefault(t *testing.T) {
	doc := parse(t, `<p>한글</p><p>text</p>`)
	w := New(script.New())
	require.Equal(t, 1, w.Wrap(doc, ""))
	out := render(t, doc)
	assert.Contains(t, out, `data-script="korean"`)
	assert.Contains(t, out, `data-script="latin"`)
}

func TestWrapIsIdempotent(t *testing.T) {
	doc := parse(t, `<p>안녕하세요</p>`)
	w := New(script.New())
	w.Wrap(doc, "")
	w.Wrap(doc, "")
	out := render(t, doc)
	assert.Equal(t, 1, strings.Count(out, `data-script="korean"`),
		"already wrapped text must not be wrapped again")
}

func TestWrapSkipsListedElements(t *testing.T) {
	doc := parse(t, `<p>한글</p><code>코드</code><script>var 한 = 1;</script>`)
	w := New(script.New())
	w.Wrap(doc, "")
	out := render(t, doc)
	assert.Contains(t, out, `<code>코드</code>`)
	assert.Contains(t, out, `var 한 = 1;`)
	assert.Equal(t, 1, strings.Count(out, "<span"))
}

func TestWrapNoMatchProcessesNothing(t *testing.T) {
	doc := parse(t, `<p>한글</p>`)
	w := New(script.New())
	require.Equal(t, 0, w.Wrap(doc, ".missing"))
	assert.NotContains(t, render(t, doc), "<span")
}

func TestWrapNilDocument(t *testing.T) {
	require.Equal(t, 0, New(script.New()).Wrap(nil, "p"))
}

func TestWrapLeavesBlankTextNodes(t *testing.T) {
	doc := parse(t, "<div>  \n  <p>한글</p></div>")
	w := New(script.New())
	w.Wrap(doc, "div")
	out := render(t, doc)
	assert.Equal(t, 1, strings.Count(out, "<span"))
}

func TestWrapEscapesInjectedMarkup(t *testing.T) {
	doc := parse(t, `<p>한글</p>`)
	// Simulate content that arrived unescaped in a text node.
	p := resolve(doc, "p")[0]
	p.FirstChild.Data = `<img onerror=x> & 한글`
	w := New(script.New())
	w.Wrap(doc, "p")
	out := render(t, doc)
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;img onerror=x&gt;")
	assert.Contains(t, out, "&amp;")
}

func TestWrapCountsEachRoot(t *testing.T) {
	doc := parse(t, `<p class="x">a 한</p><p class="x">b 글</p><p>c</p>`)
	w := New(script.New())
	require.Equal(t, 2, w.Wrap(doc, ".x"))
}

func TestWrapLater(t *testing.T) {
	doc := parse(t, `<p>안녕하세요</p>`)
	w := New(script.New())
	timer := w.WrapLater(doc, "p", 5*time.Millisecond)
	defer timer.Stop()

	require.Eventually(t, func() bool {
		return strings.Contains(render(t, doc), `data-script="korean"`)
	}, time.Second, 10*time.Millisecond)
}
