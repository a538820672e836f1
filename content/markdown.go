package content

import (
	"bytes"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const defaultWordsPerMinute = 200

// RendererConfig controls markdown rendering behavior.
type RendererConfig struct {
	// WordsPerMinute tunes the reading-time estimate (default 200).
	WordsPerMinute int
	// Sanitize scrubs the rendered HTML with a UGC policy. Off by default:
	// content is author-curated, and raw HTML in posts passes through
	// untouched. Turn this on before ever rendering untrusted input.
	Sanitize bool
}

// Renderer converts markdown bodies into HTML with GFM support (tables,
// strikethrough, task lists) and computes estimated reading time. A Renderer
// is stateless after construction and safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	wpm    int
}

// NewRenderer builds a Renderer from cfg.
func NewRenderer(cfg RendererConfig) *Renderer {
	wpm := cfg.WordsPerMinute
	if wpm <= 0 {
		wpm = defaultWordsPerMinute
	}

	opts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}

	r := &Renderer{wpm: wpm}
	if cfg.Sanitize {
		r.policy = bluemonday.UGCPolicy()
	} else {
		opts = append(opts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	r.md = goldmark.New(opts...)
	return r
}

// Render converts a markdown body to HTML and returns it together with the
// estimated reading time in minutes. Conversion failures degrade to escaped
// plain text instead of failing the post.
func (r *Renderer) Render(body []byte) (string, int) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		buf.Reset()
		buf.WriteString("<pre>")
		buf.WriteString(stdhtml.EscapeString(string(body)))
		buf.WriteString("</pre>")
	}

	out := buf.String()
	if r.policy != nil {
		out = r.policy.Sanitize(out)
	}
	return out, r.ReadingTime(body)
}

// ReadingTime estimates minutes to read the body, ceiling-rounded; an empty
// body reads in zero minutes.
func (r *Renderer) ReadingTime(body []byte) int {
	words := len(strings.Fields(string(body)))
	if words == 0 {
		return 0
	}
	return (words + r.wpm - 1) / r.wpm
}
