package webgen

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// woff2Fonts maps the URL references inside FontAwesome's all.min.css to
// the font files they resolve to under the fontawesome asset directory.
var woff2Fonts = map[string]string{
	"../webfonts/fa-brands-400.woff2":  "webfonts/fa-brands-400.woff2",
	"../webfonts/fa-regular-400.woff2": "webfonts/fa-regular-400.woff2",
	"../webfonts/fa-solid-900.woff2":   "webfonts/fa-solid-900.woff2",
}

// ttfRefPattern matches the TrueType fallback sources in FontAwesome's
// @font-face rules. woff2 covers every browser the bundle targets, so
// the ttf references are dropped rather than inlined.
var ttfRefPattern = regexp.MustCompile(`url\(\.\./webfonts/[^)]+\.ttf\)[^,}]*,?`)

// InlineFontAwesome reads FontAwesome's stylesheet from faDir and
// returns it with every woff2 reference replaced by a base64 data URI,
// yielding a fully offline icon stylesheet. Returns ErrFontsMissing when
// the stylesheet is absent; callers degrade to a bundle without icons.
func InlineFontAwesome(faDir string) (string, error) {
	cssPath := filepath.Join(faDir, "all.min.css")
	cssBytes, err := os.ReadFile(cssPath) // #nosec G304 -- path from validated config
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrFontsMissing, cssPath)
	}

	css := string(cssBytes)
	for urlRef, relPath := range woff2Fonts {
		fontBytes, err := os.ReadFile(filepath.Join(faDir, filepath.FromSlash(relPath))) // #nosec G304
		if err != nil {
			continue
		}
		dataURI := "data:font/woff2;base64," + base64.StdEncoding.EncodeToString(fontBytes)
		css = strings.ReplaceAll(css, urlRef, dataURI)
	}

	return ttfRefPattern.ReplaceAllString(css, ""), nil
}
