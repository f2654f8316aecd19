package webgen

import (
	"fmt"
	"os"
	"strings"
)

// switchLabels maps a target language to the switcher button text shown
// on the page linking to it.
var switchLabels = map[string]string{
	"en": "Switch to English \U0001F1EC\U0001F1E7",
	"de": "Switch to German \U0001F1E9\U0001F1EA",
}

// SwitchLabel returns the switcher label for a target language, falling
// back to a generic label for languages without a curated one.
func SwitchLabel(targetLang string) string {
	if label, ok := switchLabels[targetLang]; ok {
		return label
	}
	return "Switch to " + strings.ToUpper(targetLang)
}

const switcherMarkup = `
    <div id="lang-switcher" style="
        position: fixed;
        bottom: 20px;
        right: 20px;
        z-index: 9999;
        font-family: sans-serif;
    ">
        <a href="%s" style="
            display: inline-block;
            padding: 10px 20px;
            background: rgba(255, 255, 255, 0.2);
            backdrop-filter: blur(10px);
            -webkit-backdrop-filter: blur(10px);
            border: 1px solid rgba(255, 255, 255, 0.3);
            border-radius: 50px;
            color: #333;
            text-decoration: none;
            font-weight: bold;
            box-shadow: 0 4px 6px rgba(0,0,0,0.1);
            transition: all 0.3s ease;
        " onmouseover="this.style.background='rgba(255, 255, 255, 0.4)'" onmouseout="this.style.background='rgba(255, 255, 255, 0.2)'">
            %s
        </a>
    </div>
    <style>
        @media print {
            #lang-switcher { display: none !important; }
        }
    </style>
    `

// InjectSwitcher appends a floating language-switch button to a rendered
// page, linking to the sibling language directory with a plain relative
// link. Pages without a </body> tag are left untouched.
func InjectSwitcher(htmlPath, targetLang string) error {
	content, err := os.ReadFile(htmlPath) // #nosec G304 -- path produced by the build pipeline
	if err != nil {
		return fmt.Errorf("reading %s: %w", htmlPath, err)
	}

	page := string(content)
	if !strings.Contains(page, "</body>") {
		return nil
	}

	switcher := fmt.Sprintf(switcherMarkup, "../"+targetLang+"/", SwitchLabel(targetLang))
	page = strings.Replace(page, "</body>", switcher+"</body>", 1)

	if err := os.WriteFile(htmlPath, []byte(page), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	return nil
}

// OtherLang returns the switch target for a two-language site. With
// exactly en and de this mirrors a simple toggle; other sets pick the
// first different language.
func OtherLang(current string, available []string) string {
	for _, lang := range available {
		if lang != current {
			return lang
		}
	}
	return current
}
