package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	cvgen "github.com/alnah/go-cvgen"
	"github.com/alnah/go-cvgen/internal/config"
	"github.com/alnah/go-cvgen/internal/hints"
	"github.com/alnah/go-cvgen/internal/resume"
	"github.com/alnah/go-cvgen/internal/texcompile"
	"github.com/alnah/go-cvgen/internal/webgen"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// maxTimeout caps the overall build deadline.
const maxTimeout = 30 * time.Minute

// runBuildCmd parses flags and runs a full build.
func runBuildCmd(args []string, env *Environment) error {
	flags, err := parseBuildFlags(args)
	if err != nil {
		return err
	}
	return runBuild(flags, env)
}

// runBuild loads configuration, applies the CLI selection and executes
// the build, reporting per-variant outcomes on stderr.
func runBuild(flags *buildFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return decorateFor(fmt.Errorf("loading config: %w", err), cfg.Data.Dir)
		}
		cfg = loaded
	}
	mergeFlags(flags, cfg)

	stderr := io.Writer(env.Stderr)
	if flags.quiet {
		stderr = io.Discard
	}

	svc, err := cvgen.New(cfg, cvgen.WithStderr(stderr))
	if err != nil {
		return decorateFor(err, cfg.Data.Dir)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 || d > maxTimeout {
			return fmt.Errorf("%w: %q (want a positive duration up to %s)", ErrInvalidTimeout, flags.timeout, maxTimeout)
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	sel := cvgen.Selection{
		OnePage: flags.onePage,
		TwoPage: flags.twoPage,
		Web:     flags.web,
		Docx:    flags.docx,
		WebPDF:  flags.webPDF,
		Theme:   flags.theme,
	}

	start := time.Now()
	report, err := svc.Build(ctx, sel)
	if err != nil {
		if report != nil {
			printReport(stderr, report, cfg.Data.Dir)
		}
		return decorateFor(err, cfg.Data.Dir)
	}

	printReport(stderr, report, cfg.Data.Dir)
	if flags.verbose {
		fmt.Fprintf(stderr, "Total build time: %s\n", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// mergeFlags applies CLI overrides onto the loaded config. CLI wins.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.dataDir != "" {
		cfg.Data.Dir = flags.dataDir
	}
	if flags.outDir != "" {
		cfg.Output.Dir = flags.outDir
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.theme != "" {
		cfg.Web.Theme = flags.theme
	}
}

// printReport summarizes a finished build.
func printReport(w io.Writer, report *cvgen.Report, dataDir string) {
	fmt.Fprintf(w, "\nBuilt %d artifact(s).\n", len(report.Built))
	if len(report.Failures) == 0 {
		return
	}
	fmt.Fprintf(w, "%d variant(s) failed:\n", len(report.Failures))
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  %s%s\n", f, hintFor(f.Err, dataDir))
	}
}

// decorateFor appends an actionable hint to errors that have one.
func decorateFor(err error, dataDir string) error {
	if hint := hintFor(err, dataDir); hint != "" {
		return fmt.Errorf("%w%s", err, hint)
	}
	return err
}

// hintFor maps known failure modes to their remediation hints.
func hintFor(err error, dataDir string) string {
	switch {
	case errors.Is(err, texcompile.ErrToolNotFound):
		return hints.ForPDFLatex()
	case errors.Is(err, texcompile.ErrConvertFailed):
		return hints.ForPandoc()
	case errors.Is(err, webgen.ErrRenderScript):
		return hints.ForNode()
	case errors.Is(err, webgen.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, resume.ErrDataNotFound), errors.Is(err, cvgen.ErrNoLanguages):
		return hints.ForDataNotFound(dataDir)
	case errors.Is(err, cvgen.ErrOutputDirectory):
		return hints.ForOutputDirectory()
	}
	return ""
}
