package webgen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-cvgen/internal/process"
)

// Sentinel errors for browser-based PDF export.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrWritePDF       = errors.New("failed to write PDF file")
)

// A4 page dimensions in inches.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.4
	defaultTimeout    = 30 * time.Second
)

// PageRenderer abstracts PDF rendering from an HTML file to enable
// testing without a browser.
type PageRenderer interface {
	RenderFromFile(filePath string) ([]byte, error)
}

// RodRenderer implements PageRenderer using go-rod headless Chrome.
// Rod downloads a Chromium build on first run if none is found.
type RodRenderer struct {
	Timeout time.Duration
}

// RenderFromFile opens a local HTML file in headless Chrome and prints
// it to PDF with A4 geometry and backgrounds enabled.
func (r *RodRenderer) RenderFromFile(filePath string) ([]byte, error) {
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	defer func() {
		l.Kill()
		// Best-effort cleanup; launcher.Kill can leave orphaned
		// renderer children behind on some platforms.
		if pid := l.PID(); pid != 0 {
			process.KillProcessGroup(pid)
		}
	}()

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.Timeout(r.Timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

func floatPtr(v float64) *float64 {
	return &v
}

// PDFExporter prints a rendered resume page to PDF through a browser.
// This is the export path for the web bundle; the LaTeX variants go
// through pdflatex instead.
type PDFExporter struct {
	Renderer PageRenderer
}

// NewPDFExporter creates a PDFExporter with the rod renderer.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{Renderer: &RodRenderer{Timeout: defaultTimeout}}
}

// Export renders htmlPath to a PDF written at outputPath.
func (e *PDFExporter) Export(htmlPath, outputPath string) error {
	pdfBytes, err := e.Renderer.RenderFromFile(htmlPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, pdfBytes, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}
