// Package texcompile drives the external tools that turn LaTeX sources
// into deliverable documents: pdflatex for PDF and pandoc for DOCX. Both
// tools run through a CommandRunner so tests never spawn subprocesses.
package texcompile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Sentinel errors for external tool invocation.
var (
	ErrToolNotFound   = errors.New("external tool not found")
	ErrCompileFailed  = errors.New("latex compilation failed")
	ErrConvertFailed  = errors.New("docx conversion failed")
	ErrArtifactMissed = errors.New("expected output artifact was not produced")
)

// CommandRunner abstracts command execution to enable testing without
// real subprocesses. dir sets the working directory; empty means inherit.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && errors.Is(err, exec.ErrNotFound) {
		err = fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	return stdout.String(), stderr.String(), err
}

// tail returns the last n bytes of s, for embedding tool output in errors
// without dumping a full pdflatex log.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
