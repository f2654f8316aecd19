// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-cvgen/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForPDFLatex returns hints for a missing or failing pdflatex binary.
func ForPDFLatex() string {
	return format("install a TeX distribution (TeX Live, MiKTeX) or set tools.pdflatex in the config")
}

// ForPandoc returns hints for a missing pandoc binary.
func ForPandoc() string {
	return format("install pandoc or set tools.pandoc in the config; DOCX output needs it")
}

// ForNode returns hints for a missing node binary or renderer script.
func ForNode() string {
	return format("install node and the jsonresume theme package, or use a built-in theme")
}

// ForBrowserConnect returns hints for browser connection errors during
// web PDF export. Detects CI/Docker environments and suggests the
// relevant environment variables.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for slow toolchains, use the --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-cvgen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForDataNotFound returns hints for missing resume data files.
func ForDataNotFound(dataDir string) string {
	return format("expected " + dataDir + "/resume_<lang>.yaml, e.g. " + dataDir + "/resume_en.yaml")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format wraps a single hint in the standard format.
func format(hint string) string {
	return "\n  hint: " + hint
}

// formatHints wraps multiple hints, one line each.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, h := range hints {
		sb.WriteString("\n  hint: ")
		sb.WriteString(h)
	}
	return sb.String()
}
