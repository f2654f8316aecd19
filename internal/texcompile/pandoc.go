package texcompile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cvgen/internal/fileutil"
)

// Pandoc converts LaTeX sources to DOCX via the pandoc binary.
type Pandoc struct {
	Runner CommandRunner
	Binary string
}

// NewPandoc creates a Pandoc with a real command runner.
func NewPandoc() *Pandoc {
	return &Pandoc{Runner: &ExecRunner{}, Binary: "pandoc"}
}

// ToDocx converts texPath into a .docx file next to it and returns the
// DOCX path. Pandoc runs in the source's directory so relative includes
// resolve the same way they do for pdflatex.
func (p *Pandoc) ToDocx(ctx context.Context, texPath string) (string, error) {
	dir := filepath.Dir(texPath)
	texName := filepath.Base(texPath)
	docxName := strings.TrimSuffix(texName, filepath.Ext(texName)) + ".docx"

	_, stderr, err := p.Runner.Run(ctx, dir, p.Binary, texName, "-o", docxName)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s: %v", ErrConvertFailed, texName, tail(stderr, stderrTailBytes), err)
	}

	docxPath := filepath.Join(dir, docxName)
	if !fileutil.FileExists(docxPath) {
		return "", fmt.Errorf("%w: %s", ErrArtifactMissed, docxPath)
	}

	return docxPath, nil
}
