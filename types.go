package cvgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-cvgen/internal/resume"
	"github.com/alnah/go-cvgen/internal/texcompile"
	"github.com/alnah/go-cvgen/internal/webgen"
)

// Selection picks which deliverables a build produces. The zero value
// means "build everything except the optional extras" (DOCX and the
// browser-exported web PDF stay opt-in).
type Selection struct {
	OnePage bool // 1-page LaTeX PDFs
	TwoPage bool // 2-page LaTeX PDFs
	Web     bool // web resume (HTML pages + offline bundle)
	Docx    bool // additionally convert LaTeX variants to DOCX
	WebPDF  bool // additionally print the offline bundle to PDF
	Theme   string
}

// normalize expands the "nothing selected" zero value into the full
// default build.
func (s Selection) normalize() Selection {
	if !s.OnePage && !s.TwoPage && !s.Web {
		s.OnePage = true
		s.TwoPage = true
		s.Web = true
	}
	return s
}

// Failure records a variant that did not build.
type Failure struct {
	Variant string
	Err     error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %v", f.Variant, f.Err)
}

// Report summarizes a build: which artifacts were produced and which
// variants failed. A failure never aborts the remaining variants.
type Report struct {
	Built    []string
	Failures []Failure
}

func (r *Report) addBuilt(artifact string) {
	r.Built = append(r.Built, artifact)
}

func (r *Report) addFailure(variant string, err error) {
	r.Failures = append(r.Failures, Failure{Variant: variant, Err: err})
}

// variant is one LaTeX build unit: a page-length kind in one language.
type variant struct {
	kind resume.PageVariant
	lang string
}

// name is the operator-facing variant identifier, e.g. "1Page_EN".
func (v variant) name() string {
	return variantDirs[v.kind] + "_" + strings.ToUpper(v.lang)
}

// variantDirs maps page kinds to their output directory names.
var variantDirs = map[resume.PageVariant]string{
	resume.OnePage: "1Page",
	resume.TwoPage: "2Page",
}

// variantTemplates maps page kinds to their LaTeX template names.
var variantTemplates = map[resume.PageVariant]string{
	resume.OnePage: "cv_1page",
	resume.TwoPage: "cv_2page",
}

// Option configures a Service.
type Option func(*Service)

// WithStderr redirects operator progress and warning messages. Defaults
// to os.Stderr; pass io.Discard for quiet builds.
func WithStderr(w io.Writer) Option {
	return func(s *Service) { s.stderr = w }
}

// WithRunner replaces the subprocess runner for pdflatex, pandoc and
// node invocations. Used by tests to avoid spawning real tools.
func WithRunner(r texcompile.CommandRunner) Option {
	return func(s *Service) {
		s.pdflatex.Runner = r
		s.pandoc.Runner = r
		s.nodeTheme.Runner = r
	}
}

// WithPageRenderer replaces the browser renderer used for the optional
// web PDF export.
func WithPageRenderer(r webgen.PageRenderer) Option {
	return func(s *Service) { s.exporter.Renderer = r }
}
