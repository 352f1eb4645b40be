// Package richtext renders the markdown used in curated content fixtures
// into the HTML fragments pages embed.
package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with GFM tables, autolinks and syntax highlighting.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				// Fixtures are trusted and may embed inline markup such as <br>.
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts src to an HTML fragment. Blank input yields "".
func (r *Renderer) Render(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Inline renders src and strips a single wrapping paragraph, for short
// fields such as tab bodies that sit inside an existing block element.
func (r *Renderer) Inline(src string) (string, error) {
	out, err := r.Render(src)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") &&
		strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}
