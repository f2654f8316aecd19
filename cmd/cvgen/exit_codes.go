package main

import (
	"errors"
	"os"

	cvgen "github.com/alnah/go-cvgen"
	"github.com/alnah/go-cvgen/internal/assets"
	"github.com/alnah/go-cvgen/internal/config"
	"github.com/alnah/go-cvgen/internal/resume"
	"github.com/alnah/go-cvgen/internal/texcompile"
	"github.com/alnah/go-cvgen/internal/webgen"
)

// Exit codes for the cvgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Build succeeded
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitTool    = 4 // External tool (pdflatex, pandoc, node, browser) errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool errors (exit 4)
	if errors.Is(err, texcompile.ErrToolNotFound) ||
		errors.Is(err, texcompile.ErrCompileFailed) ||
		errors.Is(err, texcompile.ErrConvertFailed) ||
		errors.Is(err, texcompile.ErrArtifactMissed) ||
		errors.Is(err, webgen.ErrRenderScript) ||
		errors.Is(err, webgen.ErrNoRenderedHTML) ||
		errors.Is(err, webgen.ErrBrowserConnect) ||
		errors.Is(err, webgen.ErrPageCreate) ||
		errors.Is(err, webgen.ErrPageLoad) ||
		errors.Is(err, webgen.ErrPDFGeneration) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, resume.ErrDataNotFound) ||
		errors.Is(err, cvgen.ErrNoLanguages) ||
		errors.Is(err, cvgen.ErrOutputDirectory) ||
		errors.Is(err, webgen.ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, resume.ErrDataParse) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrThemeNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
