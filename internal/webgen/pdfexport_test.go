package webgen_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-cvgen/internal/webgen"
)

type fakePageRenderer struct {
	pdf []byte
	err error

	gotPath string
}

func (f *fakePageRenderer) RenderFromFile(filePath string) ([]byte, error) {
	f.gotPath = filePath
	return f.pdf, f.err
}

func TestPDFExporter_Export(t *testing.T) {
	t.Parallel()

	renderer := &fakePageRenderer{pdf: []byte("%PDF-1.5")}
	exporter := &webgen.PDFExporter{Renderer: renderer}

	outputPath := filepath.Join(t.TempDir(), "resume.pdf")
	if err := exporter.Export("/tmp/resume.html", outputPath); err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}

	if renderer.gotPath != "/tmp/resume.html" {
		t.Errorf("RenderFromFile path = %q", renderer.gotPath)
	}

	got, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != "%PDF-1.5" {
		t.Errorf("written PDF = %q", got)
	}
}

func TestPDFExporter_Export_RendererError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("browser unavailable")
	exporter := &webgen.PDFExporter{Renderer: &fakePageRenderer{err: wantErr}}

	if err := exporter.Export("in.html", "out.pdf"); !errors.Is(err, wantErr) {
		t.Errorf("Export() error = %v, want renderer error", err)
	}
}
