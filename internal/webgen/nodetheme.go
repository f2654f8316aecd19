package webgen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-cvgen/internal/fileutil"
	"github.com/alnah/go-cvgen/internal/jsonresume"
)

// CommandRunner abstracts command execution to enable testing without
// real subprocesses. dir sets the working directory; empty means inherit.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout string, stderr string, err error)
}

// NodeTheme renders a JSON Resume record through an external node
// renderer script driving a jsonresume theme package. A theme vendored
// under VendorDir takes precedence over the npm package of the same
// name.
type NodeTheme struct {
	Runner       CommandRunner
	Binary       string
	RenderScript string // path to the node renderer script
	VendorDir    string // directory holding vendored theme checkouts
	ProjectRoot  string // working directory for the node invocation
}

// ThemeArg resolves the argument passed to the renderer for a theme
// name: the vendored directory when present, otherwise the conventional
// npm package name.
func (n *NodeTheme) ThemeArg(theme string) string {
	if n.VendorDir != "" {
		vendored := filepath.Join(n.VendorDir, theme)
		if info, err := os.Stat(vendored); err == nil && info.IsDir() {
			return vendored
		}
	}
	return "jsonresume-theme-" + theme
}

// Render serializes the resume to a temporary JSON file and invokes the
// node renderer to write outputHTML. The rendered file must exist
// afterwards; renderers that exit zero without writing output are still
// failures.
func (n *NodeTheme) Render(ctx context.Context, res *jsonresume.Resume, theme, outputHTML string) error {
	if !fileutil.FileExists(n.RenderScript) {
		return fmt.Errorf("%w: %s", ErrRenderScript, n.RenderScript)
	}

	payload, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializing resume: %v", ErrThemeRender, err)
	}

	jsonPath, cleanup, err := fileutil.WriteTempFile(string(payload), "json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrThemeRender, err)
	}
	defer cleanup()

	_, stderr, err := n.Runner.Run(ctx, n.ProjectRoot, n.Binary, n.RenderScript, n.ThemeArg(theme), jsonPath, outputHTML)
	if err != nil {
		return fmt.Errorf("%w: theme %q: %s: %v", ErrThemeRender, theme, stderr, err)
	}

	if !fileutil.FileExists(outputHTML) {
		return fmt.Errorf("%w: %s", ErrNoRenderedHTML, outputHTML)
	}

	return nil
}
