package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	cvgen "github.com/alnah/go-cvgen"
	"github.com/alnah/go-cvgen/internal/config"
	"github.com/alnah/go-cvgen/internal/resume"
	"github.com/alnah/go-cvgen/internal/texcompile"
	"github.com/alnah/go-cvgen/internal/webgen"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},
		{name: "tool not found", err: texcompile.ErrToolNotFound, want: ExitTool},
		{name: "compile failed", err: texcompile.ErrCompileFailed, want: ExitTool},
		{name: "docx conversion failed", err: texcompile.ErrConvertFailed, want: ExitTool},
		{name: "missing artifact", err: texcompile.ErrArtifactMissed, want: ExitTool},
		{name: "render script missing", err: webgen.ErrRenderScript, want: ExitTool},
		{name: "browser connect", err: webgen.ErrBrowserConnect, want: ExitTool},
		{name: "pdf generation", err: webgen.ErrPDFGeneration, want: ExitTool},
		{name: "data not found", err: resume.ErrDataNotFound, want: ExitIO},
		{name: "no languages", err: cvgen.ErrNoLanguages, want: ExitIO},
		{name: "output directory", err: cvgen.ErrOutputDirectory, want: ExitIO},
		{name: "os not exist", err: os.ErrNotExist, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "data parse", err: resume.ErrDataParse, want: ExitUsage},
		{name: "invalid timeout", err: ErrInvalidTimeout, want: ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("building 1Page_EN: %w", texcompile.ErrCompileFailed)
	if got := exitCodeFor(wrapped); got != ExitTool {
		t.Errorf("exitCodeFor(wrapped) = %d, want %d", got, ExitTool)
	}
}
