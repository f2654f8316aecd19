package webgen

import (
	"fmt"
	"sort"
	"strings"
)

// routerTemplate is the root index.html: a tiny page that forwards the
// visitor to their browser language's directory, with plain links as a
// no-script fallback.
const routerTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Redirecting...</title>
    <script>
        (function() {
            var available = [%s];
            var userLang = (navigator.language || navigator.userLanguage || "en").slice(0, 2);
            var target = available.indexOf(userLang) >= 0 ? userLang : available[0];
            window.location.href = './' + target + '/';
        })();
    </script>
</head>
<body>
    <p>Redirecting to language version...</p>
    <ul>
%s    </ul>
</body>
</html>`

// languageNames gives the link text for known languages; unknown codes
// fall back to the upper-cased code.
var languageNames = map[string]string{
	"en": "English Version",
	"de": "German Version",
}

// RootRouter builds the root index.html content for the available
// language directories. Languages are listed in sorted order so output
// is deterministic regardless of build order.
func RootRouter(availableLangs []string) string {
	langs := append([]string(nil), availableLangs...)
	sort.Strings(langs)

	quoted := make([]string, len(langs))
	var links strings.Builder
	for i, lang := range langs {
		quoted[i] = fmt.Sprintf("%q", lang)

		name, ok := languageNames[lang]
		if !ok {
			name = strings.ToUpper(lang) + " Version"
		}
		fmt.Fprintf(&links, "        <li><a href=\"./%s/\">%s</a></li>\n", lang, name)
	}

	return fmt.Sprintf(routerTemplate, strings.Join(quoted, ", "), links.String())
}
