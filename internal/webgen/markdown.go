package webgen

import (
	"bytes"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownConverter turns the Markdown produced by the LaTeX normalizer
// (bold, emphasis, links) into HTML fragments for the built-in theme.
type markdownConverter struct {
	md goldmark.Markdown
}

func newMarkdownConverter() *markdownConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &markdownConverter{md: md}
}

// Convert renders Markdown to an HTML fragment.
func (c *markdownConverter) Convert(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// ConvertInline renders Markdown and unwraps the enclosing paragraph so
// the fragment can sit inside a list item or heading.
func (c *markdownConverter) ConvertInline(content string) (string, error) {
	fragment, err := c.Convert(content)
	if err != nil {
		return "", err
	}

	fragment = strings.TrimSpace(fragment)
	if strings.HasPrefix(fragment, "<p>") && strings.HasSuffix(fragment, "</p>") && strings.Count(fragment, "<p>") == 1 {
		fragment = strings.TrimSuffix(strings.TrimPrefix(fragment, "<p>"), "</p>")
	}
	return fragment, nil
}
