package webgen

import (
	_ "embed"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed spa.html.tmpl
var spaTemplate string

// BundleInput carries everything the single-file bundle needs: the
// extracted page content per language, the inlined icon stylesheet, and
// the display name for the page title.
type BundleInput struct {
	Title   string
	FontCSS string
	EN      PageContent
	DE      PageContent
}

// spaView is the pre-escaped data handed to the SPA template.
type spaView struct {
	Title      string
	FontCSS    string
	StyleEN    string
	StyleDE    string
	BodyEN     string
	BodyDE     string
	SwitchToEn string
	SwitchToDe string
}

// Bundle produces the single-file resume: both language versions
// embedded as JS template literals, hash routing between #/en and #/de,
// and browser-language detection on first load. Page content must have
// its backticks escaped since it lands inside template literals.
func Bundle(input BundleInput) (string, error) {
	if input.EN.Body == "" || input.DE.Body == "" {
		return "", fmt.Errorf("%w", ErrBundleInputs)
	}

	tmpl, err := template.New("spa").Parse(spaTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing bundle template: %w", err)
	}

	view := spaView{
		Title:      input.Title,
		FontCSS:    input.FontCSS,
		StyleEN:    escapeBackticks(input.EN.Style),
		StyleDE:    escapeBackticks(input.DE.Style),
		BodyEN:     escapeBackticks(input.EN.Body),
		BodyDE:     escapeBackticks(input.DE.Body),
		SwitchToEn: SwitchLabel("en"),
		SwitchToDe: SwitchLabel("de"),
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering bundle: %w", err)
	}

	return buf.String(), nil
}

// escapeBackticks protects content embedded in JS template literals.
func escapeBackticks(s string) string {
	return strings.ReplaceAll(s, "`", "\\`")
}

// EmbedProfileImage replaces profile.jpg references in body markup with
// a base64 data URI so the bundle carries its own photo. A missing or
// unreadable image leaves the markup unchanged.
func EmbedProfileImage(body, imagePath string) string {
	imgBytes, err := os.ReadFile(imagePath) // #nosec G304 -- path from validated config
	if err != nil {
		return body
	}

	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imgBytes)
	return strings.ReplaceAll(body, `src="profile.jpg"`, `src="`+dataURI+`"`)
}
