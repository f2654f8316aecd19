package texcompile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cvgen/internal/fileutil"
)

// auxExtensions are the pdflatex byproducts swept after a successful
// compile. The .log survives a failed compile for debugging.
var auxExtensions = []string{".aux", ".log", ".out", ".fls", ".fdb_latexmk", ".synctex.gz"}

const stderrTailBytes = 2048

// PDFLatex compiles LaTeX sources to PDF via the pdflatex binary.
type PDFLatex struct {
	Runner CommandRunner
	Binary string
}

// NewPDFLatex creates a PDFLatex with a real command runner.
func NewPDFLatex() *PDFLatex {
	return &PDFLatex{Runner: &ExecRunner{}, Binary: "pdflatex"}
}

// Compile runs pdflatex on texPath in nonstop mode, writing the PDF next
// to the source. The working directory is the source's directory so that
// relative \input and \usepackage paths resolve. Returns the PDF path.
//
// pdflatex can exit non-zero on recoverable warnings, so a non-zero exit
// is only a failure here; a zero exit without a PDF on disk is equally a
// failure.
func (p *PDFLatex) Compile(ctx context.Context, texPath string) (string, error) {
	texName := filepath.Base(texPath)

	// pdflatex resolves -output-directory against its own working
	// directory, so a relative dir would make it look for dir/dir.
	dir, err := filepath.Abs(filepath.Dir(texPath))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCompileFailed, texName, err)
	}

	stdout, stderr, err := p.Runner.Run(ctx, dir, p.Binary,
		"-interaction=nonstopmode",
		"-output-directory="+dir,
		texName,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s: %v", ErrCompileFailed, texName, tail(firstNonEmpty(stderr, stdout), stderrTailBytes), err)
	}

	pdfPath := strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf"
	if !fileutil.FileExists(pdfPath) {
		return "", fmt.Errorf("%w: %s", ErrArtifactMissed, pdfPath)
	}

	p.sweepAux(texPath)
	return pdfPath, nil
}

// sweepAux removes pdflatex auxiliary files for the given source.
// Best-effort; a leftover .aux never fails a build.
func (p *PDFLatex) sweepAux(texPath string) {
	base := strings.TrimSuffix(texPath, filepath.Ext(texPath))
	for _, ext := range auxExtensions {
		_ = os.Remove(base + ext)
	}
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
