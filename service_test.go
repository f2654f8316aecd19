package cvgen_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	cvgen "github.com/alnah/go-cvgen"
)

// fakeRunner stands in for pdflatex, pandoc and node. It records every
// invocation and writes the artifact each tool would have produced.
type fakeRunner struct {
	mu         sync.Mutex
	calls      [][]string
	failLatex  bool
	failPandoc bool
	nodeHTML   string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (string, string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	switch name {
	case "pdflatex":
		if f.failLatex {
			return "", "! LaTeX Error: something broke", errors.New("exit status 1")
		}
		texName := args[len(args)-1]
		pdfName := strings.TrimSuffix(texName, ".tex") + ".pdf"
		return "", "", os.WriteFile(filepath.Join(dir, pdfName), []byte("%PDF-1.5 fake"), 0o600)
	case "pandoc":
		if f.failPandoc {
			return "", "pandoc: conversion error", errors.New("exit status 1")
		}
		return "", "", os.WriteFile(filepath.Join(dir, args[2]), []byte("fake docx"), 0o600)
	case "node":
		return "", "", os.WriteFile(args[3], []byte(f.nodeHTML), 0o600)
	}
	return "", "", fmt.Errorf("unexpected tool %q", name)
}

func (f *fakeRunner) callsFor(tool string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, c := range f.calls {
		c := c
		if c[0] == tool {
			out = append(out, c)
		}
	}
	return out
}

// fakePageRenderer avoids launching a browser for the web PDF export.
type fakePageRenderer struct {
	gotPath string
}

func (f *fakePageRenderer) RenderFromFile(filePath string) ([]byte, error) {
	f.gotPath = filePath
	return []byte("%PDF-1.5 printed"), nil
}

func resumeYAML(name string) string {
	return `basics:
  name: ` + name + `
  label: Systems Engineer
  email: ada@example.com
  phone: "+49 30 1234"
  location: Berlin, Germany
  photo: assets/profilepc_optimized.jpg
profile: Builds reliable systems.
experience:
  - company: Widgets GmbH
    title: Engineer
    date: 2020-01 – 2023-06
    highlights:
      - Shipped the core pipeline.
skills:
  - category: Languages
    keywords: Go, SQL
`
}

// writeProject lays out a minimal project in a temp dir and makes it
// the working directory for the test.
func writeProject(t *testing.T, langs ...string) {
	t.Helper()
	chdir(t, t.TempDir())

	for _, lang := range langs {
		lang := lang
		writeProjectFile(t, filepath.Join("config", "resume_"+lang+".yaml"), resumeYAML("Ada Example"))
	}
	writeProjectFile(t, filepath.Join("assets", "cv_style.sty"), "% shared style\n")
	writeProjectFile(t, filepath.Join("assets", "profilepc_optimized.jpg"), "not a real jpeg")
}

func writeProjectFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("MkdirAll(%q) error = %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", path, err)
	}
}

func newTestService(t *testing.T, opts ...cvgen.Option) *cvgen.Service {
	t.Helper()
	svc, err := cvgen.New(nil, append([]cvgen.Option{cvgen.WithStderr(io.Discard)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return svc
}

func mustExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected artifact %s: %v", path, err)
	}
}

func TestService_Build_DefaultSelection(t *testing.T) {
	writeProject(t, "en", "de")
	fr := &fakeRunner{}
	svc := newTestService(t, cvgen.WithRunner(fr))

	report, err := svc.Build(context.Background(), cvgen.Selection{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("Build() failures = %v", report.Failures)
	}

	latest := filepath.Join("dist", "latest")
	mustExist(t, filepath.Join(latest, "1Page", "_ada_example_cv.pdf"))
	mustExist(t, filepath.Join(latest, "1Page", "_ada_example_lebenslauf.pdf"))
	mustExist(t, filepath.Join(latest, "2Page", "_ada_example_cv.pdf"))
	mustExist(t, filepath.Join(latest, "2Page", "_ada_example_lebenslauf.pdf"))
	mustExist(t, filepath.Join(latest, "Web", "index.html"))
	mustExist(t, filepath.Join(latest, "Web", "en", "index.html"))
	mustExist(t, filepath.Join(latest, "Web", "de", "index.html"))
	mustExist(t, filepath.Join(latest, "Web", "resume.html"))
	mustExist(t, filepath.Join(latest, "ada_example_resume.html"))

	if got := len(fr.callsFor("pdflatex")); got != 4 {
		t.Errorf("pdflatex invocations = %d, want 4", got)
	}
	if got := len(fr.callsFor("pandoc")); got != 0 {
		t.Errorf("pandoc invocations = %d, want 0 without Docx selection", got)
	}
}

func TestService_Build_WritesPersonalTeX(t *testing.T) {
	writeProject(t, "en")
	svc := newTestService(t, cvgen.WithRunner(&fakeRunner{}))

	if _, err := svc.Build(context.Background(), cvgen.Selection{OnePage: true}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// personal.tex is staged into build/ next to the rendered sources,
	// so the templates resolve it regardless of the data directory.
	data, err := os.ReadFile(filepath.Join("build", "personal.tex"))
	if err != nil {
		t.Fatalf("reading personal.tex: %v", err)
	}
	personal := string(data)
	for _, want := range []string{
		`\newcommand{\myName}{Ada Example}`,
		`\newcommand{\myLocation}{Berlin, Germany}`,
	} {
		if !strings.Contains(personal, want) {
			t.Errorf("personal.tex missing %q", want)
		}
	}

	// The staged style file sits next to the rendered sources too.
	mustExist(t, filepath.Join("build", "cv_style.sty"))
}

func TestService_Build_CompileFailureContinues(t *testing.T) {
	writeProject(t, "en", "de")
	fr := &fakeRunner{failLatex: true}
	svc := newTestService(t, cvgen.WithRunner(fr))

	report, err := svc.Build(context.Background(), cvgen.Selection{})
	if err != nil {
		t.Fatalf("Build() error = %v, want nil with partial failures", err)
	}

	if len(report.Failures) != 4 {
		t.Errorf("failures = %d, want 4 LaTeX variants", len(report.Failures))
	}
	for _, f := range report.Failures {
		f := f
		if !strings.Contains(f.Err.Error(), "LaTeX Error") {
			t.Errorf("failure %s does not carry compiler output: %v", f.Variant, f.Err)
		}
	}

	// The web path is independent of the LaTeX failures.
	mustExist(t, filepath.Join("dist", "latest", "Web", "en", "index.html"))
}

func TestService_Build_Docx(t *testing.T) {
	writeProject(t, "en", "de")
	fr := &fakeRunner{}
	svc := newTestService(t, cvgen.WithRunner(fr))

	report, err := svc.Build(context.Background(), cvgen.Selection{OnePage: true, Docx: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("Build() failures = %v", report.Failures)
	}

	mustExist(t, filepath.Join("dist", "latest", "1Page", "_ada_example_cv.docx"))
	mustExist(t, filepath.Join("dist", "latest", "1Page", "_ada_example_lebenslauf.docx"))

	// The scratch DOCX is swept after deploy.
	if _, err := os.Stat(filepath.Join("build", "cv_1page_en.docx")); !os.IsNotExist(err) {
		t.Errorf("scratch DOCX not removed from build dir (stat err = %v)", err)
	}
}

func TestService_Build_DocxFailureKeepsPDF(t *testing.T) {
	writeProject(t, "en")
	fr := &fakeRunner{failPandoc: true}
	svc := newTestService(t, cvgen.WithRunner(fr))

	report, err := svc.Build(context.Background(), cvgen.Selection{OnePage: true, Docx: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	mustExist(t, filepath.Join("dist", "latest", "1Page", "_ada_example_cv.pdf"))
	if len(report.Failures) != 1 || report.Failures[0].Variant != "1Page_EN_DOCX" {
		t.Errorf("failures = %v, want single 1Page_EN_DOCX entry", report.Failures)
	}
}

func TestService_Build_WebWithoutData(t *testing.T) {
	chdir(t, t.TempDir())
	svc := newTestService(t, cvgen.WithRunner(&fakeRunner{}))

	report, err := svc.Build(context.Background(), cvgen.Selection{Web: true})
	if !errors.Is(err, cvgen.ErrAllVariantsFailed) {
		t.Fatalf("Build() error = %v, want ErrAllVariantsFailed", err)
	}
	if len(report.Failures) != 1 || !errors.Is(report.Failures[0].Err, cvgen.ErrNoLanguages) {
		t.Errorf("failures = %v, want single ErrNoLanguages entry", report.Failures)
	}
}

func TestService_Build_LatexWithoutData(t *testing.T) {
	chdir(t, t.TempDir())
	svc := newTestService(t, cvgen.WithRunner(&fakeRunner{}))

	// A LaTeX selection over an empty data directory must surface a
	// failure rather than report success with nothing produced.
	report, err := svc.Build(context.Background(), cvgen.Selection{OnePage: true, TwoPage: true})
	if !errors.Is(err, cvgen.ErrAllVariantsFailed) {
		t.Fatalf("Build() error = %v, want ErrAllVariantsFailed", err)
	}
	if len(report.Failures) != 1 || !errors.Is(report.Failures[0].Err, cvgen.ErrNoLanguages) {
		t.Errorf("failures = %v, want single ErrNoLanguages entry", report.Failures)
	}
	if len(report.Built) != 0 {
		t.Errorf("built = %v, want none", report.Built)
	}
}

func TestService_Build_NodeTheme(t *testing.T) {
	writeProject(t, "en", "de")
	writeProjectFile(t, filepath.Join("scripts", "render_cv.js"), "// renderer stub\n")

	fr := &fakeRunner{nodeHTML: "<html><head><style>body{color:#222}</style></head>" +
		"<body><h1>Ada Example</h1></body></html>"}
	svc := newTestService(t, cvgen.WithRunner(fr))

	report, err := svc.Build(context.Background(), cvgen.Selection{Web: true, Theme: "stackoverflow"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("Build() failures = %v", report.Failures)
	}

	nodeCalls := fr.callsFor("node")
	if len(nodeCalls) != 2 {
		t.Fatalf("node invocations = %d, want one per language", len(nodeCalls))
	}
	// call = [node, script, themeArg, jsonPath, outputHTML]
	if got := nodeCalls[0][2]; got != "jsonresume-theme-stackoverflow" {
		t.Errorf("theme arg = %q, want npm package name without vendored checkout", got)
	}

	page, err := os.ReadFile(filepath.Join("dist", "latest", "Web", "en", "index.html"))
	if err != nil {
		t.Fatalf("reading rendered page: %v", err)
	}
	if !strings.Contains(string(page), "<h1>Ada Example</h1>") {
		t.Errorf("rendered page does not carry the theme output")
	}
	if !strings.Contains(string(page), `id="lang-switcher"`) {
		t.Errorf("rendered page is missing the language switcher")
	}
}

func TestService_Build_BuiltinThemeFallback(t *testing.T) {
	// No render script on disk: the node path is unavailable and the
	// embedded theme takes over.
	writeProject(t, "en", "de")
	fr := &fakeRunner{}
	svc := newTestService(t, cvgen.WithRunner(fr))

	report, err := svc.Build(context.Background(), cvgen.Selection{Web: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("Build() failures = %v", report.Failures)
	}
	if got := len(fr.callsFor("node")); got != 0 {
		t.Errorf("node invocations = %d, want 0 without a render script", got)
	}

	page, err := os.ReadFile(filepath.Join("dist", "latest", "Web", "en", "index.html"))
	if err != nil {
		t.Fatalf("reading rendered page: %v", err)
	}
	if !strings.Contains(string(page), "Ada Example") {
		t.Errorf("built-in theme output missing resume name")
	}
}

func TestService_Build_BundleSkippedWithoutBothLanguages(t *testing.T) {
	writeProject(t, "fr")
	svc := newTestService(t, cvgen.WithRunner(&fakeRunner{}))

	report, err := svc.Build(context.Background(), cvgen.Selection{OnePage: true, Web: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("Build() failures = %v", report.Failures)
	}

	// Other languages keep a language marker in the deployed name.
	mustExist(t, filepath.Join("dist", "latest", "1Page", "_ada_example_cv_fr.pdf"))
	mustExist(t, filepath.Join("dist", "latest", "Web", "fr", "index.html"))

	if _, err := os.Stat(filepath.Join("dist", "latest", "Web", "resume.html")); !os.IsNotExist(err) {
		t.Errorf("bundle built without both en and de pages (stat err = %v)", err)
	}
}

func TestService_Build_WebPDF(t *testing.T) {
	writeProject(t, "en", "de")
	renderer := &fakePageRenderer{}
	svc := newTestService(t, cvgen.WithRunner(&fakeRunner{}), cvgen.WithPageRenderer(renderer))

	report, err := svc.Build(context.Background(), cvgen.Selection{Web: true, WebPDF: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(report.Failures) != 0 {
		t.Fatalf("Build() failures = %v", report.Failures)
	}

	mustExist(t, filepath.Join("dist", "latest", "ada_example_resume.pdf"))
	if !filepath.IsAbs(renderer.gotPath) {
		t.Errorf("renderer got relative path %q, want absolute for file:// loading", renderer.gotPath)
	}
}

func TestService_Build_CancelledContext(t *testing.T) {
	writeProject(t, "en")
	svc := newTestService(t, cvgen.WithRunner(&fakeRunner{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Build(ctx, cvgen.Selection{OnePage: true}); !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring the previous directory on cleanup (testing.T.Chdir requires
// Go 1.24, which is newer than the toolchain building this module).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
