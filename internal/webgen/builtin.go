package webgen

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-cvgen/internal/jsonresume"
)

// ThemeLoader loads a built-in theme template body by name.
type ThemeLoader interface {
	LoadTheme(name string) (string, error)
}

// BuiltinTheme renders a JSON Resume record through an embedded HTML
// template, used when no node toolchain is available or the operator
// picks a built-in theme.
type BuiltinTheme struct {
	loader   ThemeLoader
	markdown *markdownConverter
}

// NewBuiltinTheme creates a BuiltinTheme loading templates through loader.
func NewBuiltinTheme(loader ThemeLoader) *BuiltinTheme {
	return &BuiltinTheme{loader: loader, markdown: newMarkdownConverter()}
}

// themeView is the data handed to theme templates.
type themeView struct {
	Resume *jsonresume.Resume
	Lang   string
}

// Render produces a complete HTML page for the resume. Free-text fields
// hold Markdown (the output of the LaTeX normalizer); the template
// converts them through the markdown/markdownInline helpers.
func (t *BuiltinTheme) Render(themeName string, res *jsonresume.Resume, lang string) (string, error) {
	body, err := t.loader.LoadTheme(themeName)
	if err != nil {
		return "", fmt.Errorf("%w: theme %q: %v", ErrThemeRender, themeName, err)
	}

	funcs := template.FuncMap{
		"markdown": func(s string) (template.HTML, error) {
			fragment, err := t.markdown.Convert(s)
			if err != nil {
				return "", err
			}
			return template.HTML(fragment), nil // #nosec G203 -- goldmark output from own resume data
		},
		"markdownInline": func(s string) (template.HTML, error) {
			fragment, err := t.markdown.ConvertInline(s)
			if err != nil {
				return "", err
			}
			return template.HTML(fragment), nil // #nosec G203 -- goldmark output from own resume data
		},
	}

	tmpl, err := template.New(themeName).Funcs(funcs).Parse(body)
	if err != nil {
		return "", fmt.Errorf("%w: theme %q: %v", ErrThemeRender, themeName, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, themeView{Resume: res, Lang: lang}); err != nil {
		return "", fmt.Errorf("%w: theme %q: %v", ErrThemeRender, themeName, err)
	}

	return buf.String(), nil
}
