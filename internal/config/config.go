// Package config loads the build configuration: where resume data and
// project assets live, which external tools to invoke, and which theme
// renders the web resume.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cvgen/internal/fileutil"
	"github.com/alnah/go-cvgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxPathLength  = 2048
	MaxThemeLength = 100
	MaxToolLength  = 256
)

// Config holds all configuration for a resume build.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Output OutputConfig `yaml:"output"`
	Assets AssetsConfig `yaml:"assets"`
	Web    WebConfig    `yaml:"web"`
	Tools  ToolsConfig  `yaml:"tools"`
}

// DataConfig locates the per-language resume data files.
type DataConfig struct {
	Dir string `yaml:"dir"` // directory holding resume_<lang>.yaml (default: "config")
}

// OutputConfig defines where artifacts land.
type OutputConfig struct {
	Dir string `yaml:"dir"` // root output directory (default: "dist")
}

// AssetsConfig locates project assets and optional template overrides.
type AssetsConfig struct {
	Dir      string `yaml:"dir"`      // profile picture, fontawesome, LaTeX style (default: "assets")
	BasePath string `yaml:"basePath"` // custom templates/themes dir; empty = embedded only
}

// WebConfig defines web resume rendering options.
type WebConfig struct {
	Theme        string `yaml:"theme"`        // theme name; empty = data's meta.theme, then default
	VendorDir    string `yaml:"vendorDir"`    // vendored theme checkouts (default: "theme")
	RenderScript string `yaml:"renderScript"` // node renderer (default: "scripts/render_cv.js")
}

// ToolsConfig names the external binaries.
type ToolsConfig struct {
	PDFLatex string `yaml:"pdflatex"` // default: "pdflatex"
	Pandoc   string `yaml:"pandoc"`   // default: "pandoc"
	Node     string `yaml:"node"`     // default: "node"
}

// Validate checks field lengths and rejects tool names that smuggle in
// shell metacharacters; tools run via exec, but a config shared between
// machines should still be sane.
func (c *Config) Validate() error {
	pathFields := []struct {
		name  string
		value string
	}{
		{"data.dir", c.Data.Dir},
		{"output.dir", c.Output.Dir},
		{"assets.dir", c.Assets.Dir},
		{"assets.basePath", c.Assets.BasePath},
		{"web.vendorDir", c.Web.VendorDir},
		{"web.renderScript", c.Web.RenderScript},
	}
	for _, f := range pathFields {
		if err := validateFieldLength(f.name, f.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("web.theme", c.Web.Theme, MaxThemeLength); err != nil {
		return err
	}

	toolFields := []struct {
		name  string
		value string
	}{
		{"tools.pdflatex", c.Tools.PDFLatex},
		{"tools.pandoc", c.Tools.Pandoc},
		{"tools.node", c.Tools.Node},
	}
	for _, f := range toolFields {
		if err := validateFieldLength(f.name, f.value, MaxToolLength); err != nil {
			return err
		}
		if strings.ContainsAny(f.value, ";|&$`\n") {
			return fmt.Errorf("%s: invalid characters in tool name %q", f.name, f.value)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the conventional project layout.
func DefaultConfig() *Config {
	return &Config{
		Data:   DataConfig{Dir: "config"},
		Output: OutputConfig{Dir: "dist"},
		Assets: AssetsConfig{Dir: "assets"},
		Web: WebConfig{
			VendorDir:    "theme",
			RenderScript: filepath.Join("scripts", "render_cv.js"),
		},
		Tools: ToolsConfig{
			PDFLatex: "pdflatex",
			Pandoc:   "pandoc",
			Node:     "node",
		},
	}
}

// ApplyDefaults fills any zero-valued field from DefaultConfig so a
// partial config file only overrides what it names.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.Data.Dir == "" {
		c.Data.Dir = def.Data.Dir
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Assets.Dir == "" {
		c.Assets.Dir = def.Assets.Dir
	}
	if c.Web.VendorDir == "" {
		c.Web.VendorDir = def.Web.VendorDir
	}
	if c.Web.RenderScript == "" {
		c.Web.RenderScript = def.Web.RenderScript
	}
	if c.Tools.PDFLatex == "" {
		c.Tools.PDFLatex = def.Tools.PDFLatex
	}
	if c.Tools.Pandoc == "" {
		c.Tools.Pandoc = def.Tools.Pandoc
	}
	if c.Tools.Node == "" {
		c.Tools.Node = def.Tools.Node
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-cvgen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-cvgen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
