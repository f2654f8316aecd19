package cvgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cvgen/internal/assets"
	"github.com/alnah/go-cvgen/internal/config"
	"github.com/alnah/go-cvgen/internal/fileutil"
	"github.com/alnah/go-cvgen/internal/jsonresume"
	"github.com/alnah/go-cvgen/internal/render"
	"github.com/alnah/go-cvgen/internal/resume"
	"github.com/alnah/go-cvgen/internal/texcompile"
	"github.com/alnah/go-cvgen/internal/webgen"
)

// Filenames the build pipeline knows about.
const (
	buildDirName    = "build"
	latestDirName   = "latest"
	webDirName      = "Web"
	profileImage    = "profilepc_optimized.jpg"
	profileDeployed = "profile.jpg"
	styleFileName   = "cv_style.sty"
	personalTexName = "personal.tex"
	bundleFileName  = "resume.html"
	fontawesomeDir  = "fontawesome"
)

// Service orchestrates the full resume build: LaTeX variants to PDF and
// DOCX, and the web resume with its offline bundle.
type Service struct {
	cfg      *config.Config
	loader   *resume.Loader
	resolver *assets.Resolver
	renderer *render.Renderer
	pdflatex *texcompile.PDFLatex
	pandoc   *texcompile.Pandoc

	nodeTheme *webgen.NodeTheme
	builtin   *webgen.BuiltinTheme
	exporter  *webgen.PDFExporter

	stderr io.Writer
}

// New creates a Service from the given configuration. A nil cfg uses
// the conventional project layout (config/, assets/, dist/).
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	resolver, err := assets.NewResolver(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}

	pdflatex := texcompile.NewPDFLatex()
	pdflatex.Binary = cfg.Tools.PDFLatex

	pandoc := texcompile.NewPandoc()
	pandoc.Binary = cfg.Tools.Pandoc

	s := &Service{
		cfg:      cfg,
		loader:   resume.NewLoader(cfg.Data.Dir),
		resolver: resolver,
		renderer: render.NewRenderer(resolver),
		pdflatex: pdflatex,
		pandoc:   pandoc,
		nodeTheme: &webgen.NodeTheme{
			Runner:       &texcompile.ExecRunner{},
			Binary:       cfg.Tools.Node,
			RenderScript: cfg.Web.RenderScript,
			VendorDir:    cfg.Web.VendorDir,
			ProjectRoot:  ".",
		},
		builtin:  webgen.NewBuiltinTheme(resolver),
		exporter: webgen.NewPDFExporter(),
		stderr:   os.Stderr,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Build produces the selected deliverables. Per-variant failures are
// collected in the report and never abort the remaining variants; Build
// returns an error only for environment-level problems (unwritable
// output tree, or every selected variant failing).
func (s *Service) Build(ctx context.Context, sel Selection) (*Report, error) {
	sel = sel.normalize()
	s.loader.Reset()

	report := &Report{}
	latestDir := filepath.Join(s.cfg.Output.Dir, latestDirName)
	if err := fileutil.EnsureDir(latestDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputDirectory, err)
	}

	slug := s.slugName()

	variants := s.latexVariants(sel)
	if len(variants) == 0 && (sel.OnePage || sel.TwoPage) {
		// A LaTeX selection with no data files would otherwise finish
		// silently with nothing produced.
		s.logf("  ! No resume data found in %s\n", s.cfg.Data.Dir)
		report.addFailure("LaTeX", ErrNoLanguages)
	}
	if len(variants) > 0 {
		if err := s.prepareLatexBuild(); err != nil {
			// Without a build dir no LaTeX variant can proceed.
			for _, v := range variants {
				report.addFailure(v.name(), err)
			}
			variants = nil
		}
	}

	for _, v := range variants {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		s.buildVariant(ctx, v, sel, latestDir, slug, report)
	}

	if sel.Web {
		s.buildWeb(ctx, sel, latestDir, slug, report)
	}

	if len(report.Built) == 0 && len(report.Failures) > 0 {
		return report, ErrAllVariantsFailed
	}
	return report, nil
}

// latexVariants expands the selection into per-language build units.
func (s *Service) latexVariants(sel Selection) []variant {
	var kinds []resume.PageVariant
	if sel.OnePage {
		kinds = append(kinds, resume.OnePage)
	}
	if sel.TwoPage {
		kinds = append(kinds, resume.TwoPage)
	}
	if len(kinds) == 0 {
		return nil
	}

	langs, err := s.loader.Languages()
	if err != nil || len(langs) == 0 {
		return nil
	}

	variants := make([]variant, 0, len(kinds)*len(langs))
	for _, kind := range kinds {
		for _, lang := range langs {
			variants = append(variants, variant{kind: kind, lang: lang})
		}
	}
	return variants
}

// prepareLatexBuild creates the scratch directory, regenerates
// personal.tex from the canonical language data, and stages the LaTeX
// style file next to the rendered sources. Both files land in the
// build directory so the templates can \input and \usepackage them
// without knowing where the resume data lives.
func (s *Service) prepareLatexBuild() error {
	if err := fileutil.EnsureDir(buildDirName); err != nil {
		return err
	}

	doc := s.canonicalDocument()
	personalPath := filepath.Join(buildDirName, personalTexName)
	if err := os.WriteFile(personalPath, []byte(render.PersonalTeX(doc.Basics)), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", personalPath, err)
	}
	s.logf("  > Generated %s from resume data\n", personalPath)

	stylePath := filepath.Join(s.cfg.Assets.Dir, styleFileName)
	if fileutil.FileExists(stylePath) {
		if err := fileutil.CopyFile(stylePath, filepath.Join(buildDirName, styleFileName)); err != nil {
			return err
		}
	}
	return nil
}

// canonicalDocument loads the English data, falling back to the first
// available language, then to an empty document. Used for build-wide
// values (personal.tex, slug, bundle title) that should not vary per
// language.
func (s *Service) canonicalDocument() *resume.Document {
	doc, err := s.loader.Load("en")
	if err == nil && !doc.Empty() {
		return doc
	}

	langs, _ := s.loader.Languages()
	for _, lang := range langs {
		if other, err := s.loader.Load(lang); err == nil && !other.Empty() {
			return other
		}
	}
	return doc
}

func (s *Service) slugName() string {
	return resume.SlugName(s.canonicalDocument().Basics.Name)
}

// buildVariant renders, compiles and deploys one LaTeX variant. Every
// failure is recorded and the build moves on.
func (s *Service) buildVariant(ctx context.Context, v variant, sel Selection, latestDir, slug string, report *Report) {
	s.logf("\n--- Building Variant: %s ---\n", v.name())

	doc, err := s.loader.Load(v.lang)
	if err != nil {
		// Keep going with the empty substitute so a missing language
		// produces an empty variant instead of aborting the build.
		s.logf("  ! %s: %v (continuing with empty data)\n", v.name(), err)
	}
	filtered := resume.FilterForVariant(doc, v.kind)

	texSource, err := s.renderer.Render(variantTemplates[v.kind], filtered)
	if err != nil {
		s.logf("  ! Template rendering failed for %s: %v\n", v.name(), err)
		report.addFailure(v.name(), err)
		return
	}

	texName := fmt.Sprintf("cv_%s_%s.tex", v.kind, v.lang)
	texPath := filepath.Join(buildDirName, texName)
	if err := os.WriteFile(texPath, []byte(texSource), 0o600); err != nil {
		report.addFailure(v.name(), err)
		return
	}
	s.logf("  > Rendered template: %s\n", texPath)

	pdfPath, err := s.pdflatex.Compile(ctx, texPath)
	if err != nil {
		s.logf("  ! PDF compilation failed for %s: %v\n", v.name(), err)
		report.addFailure(v.name(), err)
		return
	}

	typeDir := filepath.Join(latestDir, variantDirs[v.kind])
	if err := fileutil.EnsureDir(typeDir); err != nil {
		report.addFailure(v.name(), err)
		return
	}

	deployName := deployedName(slug, v.lang, ".pdf")
	deployPath := filepath.Join(typeDir, deployName)
	if err := fileutil.CopyFile(pdfPath, deployPath); err != nil {
		report.addFailure(v.name(), err)
		return
	}
	s.logf("Deployed Latest: %s/%s\n", variantDirs[v.kind], deployName)
	report.addBuilt(deployPath)

	if sel.Docx {
		s.buildDocx(ctx, v, texPath, typeDir, slug, report)
	}
}

// buildDocx converts an already-rendered variant source to DOCX. A DOCX
// failure never fails the PDF that was just deployed.
func (s *Service) buildDocx(ctx context.Context, v variant, texPath, typeDir, slug string, report *Report) {
	docxPath, err := s.pandoc.ToDocx(ctx, texPath)
	if err != nil {
		s.logf("  ! DOCX conversion failed for %s: %v\n", v.name(), err)
		report.addFailure(v.name()+"_DOCX", err)
		return
	}
	defer func() { _ = os.Remove(docxPath) }()

	deployName := deployedName(slug, v.lang, ".docx")
	deployPath := filepath.Join(typeDir, deployName)
	if err := fileutil.CopyFile(docxPath, deployPath); err != nil {
		report.addFailure(v.name()+"_DOCX", err)
		return
	}
	s.logf("Generated DOCX: %s/%s\n", filepath.Base(typeDir), deployName)
	report.addBuilt(deployPath)
}

// deployedName builds the human-facing artifact name: the German CV is
// a Lebenslauf, everything else a cv, with non-English non-German
// languages keeping a language marker.
func deployedName(slug, lang, ext string) string {
	switch lang {
	case "en":
		return "_" + slug + "_cv" + ext
	case "de":
		return "_" + slug + "_lebenslauf" + ext
	default:
		return "_" + slug + "_cv_" + lang + ext
	}
}

// buildWeb renders the per-language HTML pages, the root router, and
// the offline single-file bundle.
func (s *Service) buildWeb(ctx context.Context, sel Selection, latestDir, slug string, report *Report) {
	langs, err := s.loader.Languages()
	if err != nil || len(langs) == 0 {
		s.logf("  ! No resume data found in %s\n", s.cfg.Data.Dir)
		report.addFailure("Web", ErrNoLanguages)
		return
	}

	webDir := filepath.Join(latestDir, webDirName)
	if err := fileutil.EnsureDir(webDir); err != nil {
		report.addFailure("Web", err)
		return
	}

	profileSrc := filepath.Join(s.cfg.Assets.Dir, profileImage)
	if fileutil.FileExists(profileSrc) {
		_ = fileutil.CopyFile(profileSrc, filepath.Join(webDir, profileDeployed))
	}

	s.logf("\n--- Building Web Resumes (%d variants) ---\n", len(langs))

	var built []string
	for _, lang := range langs {
		if err := ctx.Err(); err != nil {
			return
		}
		if s.buildWebLanguage(ctx, sel, webDir, profileSrc, lang, report) {
			built = append(built, lang)
		}
	}

	if len(built) == 0 {
		report.addFailure("Web", ErrNoLanguages)
		return
	}

	routerPath := filepath.Join(webDir, "index.html")
	if err := os.WriteFile(routerPath, []byte(webgen.RootRouter(built)), 0o600); err != nil {
		report.addFailure("Web", err)
		return
	}
	s.logf("  > Generated Root Router (Auto-Language Detection)\n")
	report.addBuilt(routerPath)

	s.bundleWeb(sel, webDir, latestDir, slug, report)
}

// buildWebLanguage renders one language's page and injects the language
// switcher. Reports whether the page was built.
func (s *Service) buildWebLanguage(ctx context.Context, sel Selection, webDir, profileSrc, lang string, report *Report) bool {
	doc, err := s.loader.Load(lang)
	if err != nil {
		s.logf("  ! Failed to load resume data for %q: %v\n", lang, err)
		report.addFailure("Web_"+strings.ToUpper(lang), err)
		return false
	}

	res := jsonresume.FromDocument(doc, lang)
	theme := s.pickTheme(sel, res)

	langDir := filepath.Join(webDir, lang)
	if err := fileutil.EnsureDir(langDir); err != nil {
		report.addFailure("Web_"+strings.ToUpper(lang), err)
		return false
	}
	if fileutil.FileExists(profileSrc) {
		_ = fileutil.CopyFile(profileSrc, filepath.Join(langDir, profileDeployed))
	}

	outputHTML := filepath.Join(langDir, "index.html")
	s.logf("  > Building %s web resume using theme %q...\n", lang, theme)

	if err := s.renderTheme(ctx, res, theme, lang, outputHTML); err != nil {
		s.logf("    Failed to build web resume for %q: %v\n", lang, err)
		report.addFailure("Web_"+strings.ToUpper(lang), err)
		return false
	}

	langs, _ := s.loader.Languages()
	if target := webgen.OtherLang(lang, langs); target != lang {
		if err := webgen.InjectSwitcher(outputHTML, target); err != nil {
			s.logf("    Failed to inject switcher: %v\n", err)
		}
	}

	s.logf("    Success: Web/%s/index.html\n", lang)
	report.addBuilt(outputHTML)
	return true
}

// renderTheme picks the rendering backend for a theme: a theme shipped
// as a built-in template renders in-process; anything else goes through
// the node renderer, falling back to the built-in default theme when
// the node toolchain is missing.
func (s *Service) renderTheme(ctx context.Context, res *jsonresume.Resume, theme, lang, outputHTML string) error {
	if _, err := s.resolver.LoadTheme(theme); err == nil {
		page, err := s.builtin.Render(theme, res, lang)
		if err != nil {
			return err
		}
		return os.WriteFile(outputHTML, []byte(page), 0o600)
	}

	err := s.nodeTheme.Render(ctx, res, theme, outputHTML)
	if err != nil && errors.Is(err, webgen.ErrRenderScript) {
		s.logf("    node renderer unavailable, using built-in theme\n")
		page, berr := s.builtin.Render(defaultBuiltinTheme, res, lang)
		if berr != nil {
			return err
		}
		return os.WriteFile(outputHTML, []byte(page), 0o600)
	}
	return err
}

// defaultBuiltinTheme is the embedded fallback theme.
const defaultBuiltinTheme = "basic"

// pickTheme resolves the rendered theme: CLI override first, then the
// config, then the data's meta hint, then the default.
func (s *Service) pickTheme(sel Selection, res *jsonresume.Resume) string {
	if sel.Theme != "" {
		return sel.Theme
	}
	if s.cfg.Web.Theme != "" {
		return s.cfg.Web.Theme
	}
	if res.Meta.Theme != "" {
		return res.Meta.Theme
	}
	return jsonresume.DefaultTheme
}

// bundleWeb produces the single-file offline resume and promotes it
// next to the variant directories. Requires both en and de pages; other
// language sets skip the bundle.
func (s *Service) bundleWeb(sel Selection, webDir, latestDir, slug string, report *Report) {
	enPath := filepath.Join(webDir, "en", "index.html")
	dePath := filepath.Join(webDir, "de", "index.html")
	if !fileutil.FileExists(enPath) || !fileutil.FileExists(dePath) {
		s.logf("  ! Skipping SPA Bundle: en/index.html or de/index.html missing.\n")
		return
	}

	enContent, err := s.extractPage(enPath)
	if err != nil {
		report.addFailure("Web_Bundle", err)
		return
	}
	deContent, err := s.extractPage(dePath)
	if err != nil {
		report.addFailure("Web_Bundle", err)
		return
	}

	profileSrc := filepath.Join(s.cfg.Assets.Dir, profileImage)
	enContent.Body = webgen.EmbedProfileImage(enContent.Body, profileSrc)
	deContent.Body = webgen.EmbedProfileImage(deContent.Body, profileSrc)

	fontCSS, err := webgen.InlineFontAwesome(filepath.Join(s.cfg.Assets.Dir, fontawesomeDir))
	if err != nil {
		s.logf("  ! Warning: %v (bundle ships without icon fonts)\n", err)
	}

	bundleHTML, err := webgen.Bundle(webgen.BundleInput{
		Title:   s.canonicalDocument().Basics.Name,
		FontCSS: fontCSS,
		EN:      enContent,
		DE:      deContent,
	})
	if err != nil {
		report.addFailure("Web_Bundle", err)
		return
	}

	bundlePath := filepath.Join(webDir, bundleFileName)
	if err := os.WriteFile(bundlePath, []byte(bundleHTML), 0o600); err != nil {
		report.addFailure("Web_Bundle", err)
		return
	}
	s.logf("  > Generated Single-File SPA: Web/%s\n", bundleFileName)
	report.addBuilt(bundlePath)

	promotedPath := filepath.Join(latestDir, slug+"_resume.html")
	if err := fileutil.CopyFile(bundlePath, promotedPath); err != nil {
		s.logf("  ! Warning: Failed to promote HTML: %v\n", err)
	} else {
		s.logf("  > Deployed Standalone HTML: %s\n", filepath.Base(promotedPath))
		report.addBuilt(promotedPath)
	}

	if sel.WebPDF {
		s.exportWebPDF(bundlePath, latestDir, slug, report)
	}
}

func (s *Service) extractPage(path string) (webgen.PageContent, error) {
	page, err := os.ReadFile(path) // #nosec G304 -- path produced by this build
	if err != nil {
		return webgen.PageContent{}, err
	}
	return webgen.ExtractContent(string(page))
}

// exportWebPDF prints the offline bundle to PDF through a headless
// browser.
func (s *Service) exportWebPDF(bundlePath, latestDir, slug string, report *Report) {
	absPath, err := filepath.Abs(bundlePath)
	if err != nil {
		report.addFailure("Web_PDF", err)
		return
	}

	outputPath := filepath.Join(latestDir, slug+"_resume.pdf")
	if err := s.exporter.Export(absPath, outputPath); err != nil {
		s.logf("  ! Web PDF export failed: %v\n", err)
		report.addFailure("Web_PDF", err)
		return
	}
	s.logf("  > Exported Web PDF: %s\n", filepath.Base(outputPath))
	report.addBuilt(outputPath)
}

func (s *Service) logf(format string, args ...any) {
	fmt.Fprintf(s.stderr, format, args...)
}
