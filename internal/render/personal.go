package render

import (
	"strings"

	"github.com/alnah/go-cvgen/internal/latex"
	"github.com/alnah/go-cvgen/internal/resume"
)

// personalCommands maps LaTeX macro names to basics accessors, in output
// order. The style file's header macro (\makecvheader) consumes these.
var personalCommands = []struct {
	macro string
	value func(resume.Basics) string
}{
	{"myName", func(b resume.Basics) string { return b.Name }},
	{"myLocation", func(b resume.Basics) string { return b.Location }},
	{"myPhone", func(b resume.Basics) string { return b.Phone }},
	{"myEmail", func(b resume.Basics) string { return b.Email }},
	{"myLinkedIn", func(b resume.Basics) string { return b.LinkedIn.Display }},
	{"myLinkedInUrl", func(b resume.Basics) string { return b.LinkedIn.URL }},
	{"myGithub", func(b resume.Basics) string { return b.GitHub.Display }},
	{"myGithubUrl", func(b resume.Basics) string { return b.GitHub.URL }},
}

// PersonalTeX generates the \newcommand definitions the LaTeX style file
// expects for the document header. Values are escaped here, so callers
// may pass raw or pre-escaped basics interchangeably. The photo path is
// emitted relative to the build directory where pdflatex runs.
func PersonalTeX(basics resume.Basics) string {
	var buf strings.Builder
	buf.WriteString("% Auto-generated from resume data, do not edit manually\n\n")

	for _, cmd := range personalCommands {
		buf.WriteString(`\newcommand{\`)
		buf.WriteString(cmd.macro)
		buf.WriteString(`}{`)
		buf.WriteString(latex.Escape(cmd.value(basics)))
		buf.WriteString("}\n")
	}

	photo := ""
	if basics.Photo != "" {
		photo = "../" + basics.Photo
	}
	buf.WriteString("\n\\newcommand{\\myPhotoPath}{" + photo + "}\n")

	return buf.String()
}
