// Package webgen produces the HTML deliverables: per-language resume
// pages rendered through a JSON Resume theme (an external node renderer
// or the built-in fallback theme), a root router page, and a single-file
// offline bundle with fonts and images inlined as data URIs.
package webgen

import "errors"

// Sentinel errors for web generation.
var (
	ErrThemeRender    = errors.New("theme rendering failed")
	ErrRenderScript   = errors.New("render script not found")
	ErrNoRenderedHTML = errors.New("renderer produced no HTML output")
	ErrExtractHTML    = errors.New("failed to extract HTML content")
	ErrBundleInputs   = errors.New("bundle requires rendered pages for all languages")
	ErrFontsMissing   = errors.New("fontawesome assets not found")
)
