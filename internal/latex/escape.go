// Package latex provides the text transforms between resume data and the
// two target formats: LaTeX-safe escaping for the document renderer, and
// LaTeX-to-Markdown stripping for the web pipeline.
package latex

import "strings"

// Escape sentinels use Unicode Private Use Area characters. These are
// guaranteed to not conflict with any standard characters, so an
// already-escaped sequence can be parked during the bare-character pass
// and restored afterwards.
const (
	sentinelAmp        = ""
	sentinelHash       = ""
	sentinelDollar     = ""
	sentinelPercent    = ""
	sentinelUnderscore = ""
)

// escapePairs maps each special character to its sentinel. Order across
// the five characters does not matter since sentinels are disjoint.
var escapePairs = []struct {
	char     string
	sentinel string
}{
	{"&", sentinelAmp},
	{"#", sentinelHash},
	{"$", sentinelDollar},
	{"%", sentinelPercent},
	{"_", sentinelUnderscore},
}

// Escape returns text with the LaTeX special characters & # $ % _ escaped.
// Input that already contains escaped sequences passes through unchanged:
// `\&` stays `\&`, never `\\&`. The transform is idempotent.
//
// The sequencing is protect / escape / restore: already-escaped two-byte
// sequences are first substituted with sentinels, the bare characters are
// escaped unconditionally, then each sentinel is replaced with its escaped
// form. Escaping before protecting would corrupt pre-escaped input.
func Escape(text string) string {
	if !strings.ContainsAny(text, "&#$%_") {
		return text
	}

	// Protect already-escaped sequences.
	for _, p := range escapePairs {
		text = strings.ReplaceAll(text, `\`+p.char, p.sentinel)
	}

	// Escape bare characters.
	for _, p := range escapePairs {
		text = strings.ReplaceAll(text, p.char, `\`+p.char)
	}

	// Restore protected sequences to their escaped form.
	for _, p := range escapePairs {
		text = strings.ReplaceAll(text, p.sentinel, `\`+p.char)
	}

	return text
}
