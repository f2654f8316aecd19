package latex

import (
	"regexp"
	"strings"
)

// maxCommandPasses bounds the per-command substitution loop. Each
// successful pass consumes at least one command occurrence, so well-formed
// input terminates long before this; malformed input hits the no-progress
// fallback on the first stuck pass. The cap is a hard stop either way.
const maxCommandPasses = 100

// hrefPattern matches \href{url}{label}. The label group admits one level
// of brace nesting so style commands inside link labels survive until the
// style pass. Captures: 1=url, 2=label.
var hrefPattern = regexp.MustCompile(`\\href\{([^{}]*)\}\{((?:[^{}]|\{[^{}]*\})*)\}`)

// styleCommands maps inline style commands to their Markdown delimiters,
// in substitution order. \small has no Markdown equivalent; the command is
// stripped and the content kept.
var styleCommands = []struct {
	command string
	pattern *regexp.Regexp
	delim   string
}{
	{`\textbf`, regexp.MustCompile(`\\textbf\{([^}]*)\}`), "**"},
	{`\textit`, regexp.MustCompile(`\\textit\{([^}]*)\}`), "*"},
	{`\emph`, regexp.MustCompile(`\\emph\{([^}]*)\}`), "*"},
	{`\small`, regexp.MustCompile(`\\small\{([^}]*)\}`), ""},
}

// ToMarkdown strips the constrained LaTeX command set from text, producing
// Markdown suitable for JSON/HTML targets: \href{u}{l} becomes [l](u),
// \textbf becomes **bold**, \textit and \emph become *italic*, \small is
// dropped keeping its content, \newline becomes a space, and \& becomes &.
//
// Links are resolved before style commands so styles nested inside link
// labels still get a label to work on. Every command handler terminates on
// malformed input: when a substitution pass makes no progress (unmatched
// braces), the command token alone is stripped and the braces are left in
// place rather than looping.
func ToMarkdown(text string) string {
	text = strings.ReplaceAll(text, `\&`, "&")
	text = strings.ReplaceAll(text, `\newline`, " ")

	text = convertLinks(text)

	for _, sc := range styleCommands {
		text = convertStyle(text, sc.command, sc.pattern, sc.delim)
	}

	return strings.TrimSpace(text)
}

// convertLinks rewrites \href{url}{label} occurrences to [label](url).
func convertLinks(text string) string {
	for pass := 0; pass < maxCommandPasses; pass++ {
		if !strings.Contains(text, `\href{`) {
			return text
		}
		next := hrefPattern.ReplaceAllString(text, "[$2]($1)")
		if next == text {
			// Malformed braces: strip the command token, keep the rest.
			return strings.ReplaceAll(text, `\href`, "")
		}
		text = next
	}
	return text
}

// convertStyle rewrites command{content} occurrences to delim+content+delim.
func convertStyle(text, command string, pattern *regexp.Regexp, delim string) string {
	for pass := 0; pass < maxCommandPasses; pass++ {
		if !strings.Contains(text, command+"{") {
			return text
		}
		next := pattern.ReplaceAllString(text, delim+"$1"+delim)
		if next == text {
			return strings.ReplaceAll(text, command, "")
		}
		text = next
	}
	return text
}
