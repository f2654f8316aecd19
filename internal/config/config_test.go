package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-cvgen/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "build.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
data:
  dir: resume-data
output:
  dir: out
web:
  theme: elegant
tools:
  pdflatex: /usr/local/texlive/bin/pdflatex
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	if cfg.Data.Dir != "resume-data" {
		t.Errorf("Data.Dir = %q", cfg.Data.Dir)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if cfg.Web.Theme != "elegant" {
		t.Errorf("Web.Theme = %q", cfg.Web.Theme)
	}
	if cfg.Tools.PDFLatex != "/usr/local/texlive/bin/pdflatex" {
		t.Errorf("Tools.PDFLatex = %q", cfg.Tools.PDFLatex)
	}

	// Unset fields fall back to defaults.
	if cfg.Assets.Dir != "assets" {
		t.Errorf("Assets.Dir = %q, want default", cfg.Assets.Dir)
	}
	if cfg.Tools.Pandoc != "pandoc" {
		t.Errorf("Tools.Pandoc = %q, want default", cfg.Tools.Pandoc)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig("")
		if !errors.Is(err, config.ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "data: [unterminated")
		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "nonsense: true")
		_, err := config.LoadConfig(path)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()

		if err := config.DefaultConfig().Validate(); err != nil {
			t.Errorf("DefaultConfig().Validate() error = %v", err)
		}
	})

	t.Run("oversized path rejected", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Data.Dir = strings.Repeat("x", config.MaxPathLength+1)
		if err := cfg.Validate(); !errors.Is(err, config.ErrFieldTooLong) {
			t.Errorf("Validate() error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("shell metacharacters in tool rejected", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Tools.Pandoc = "pandoc; rm -rf /"
		if err := cfg.Validate(); err == nil {
			t.Error("Validate() should reject tool names with metacharacters")
		}
	})
}

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Parallel()

	var cfg config.Config
	cfg.ApplyDefaults()

	def := config.DefaultConfig()
	if cfg.Data.Dir != def.Data.Dir || cfg.Output.Dir != def.Output.Dir {
		t.Error("ApplyDefaults() should fill zero-valued fields")
	}
	if cfg.Web.RenderScript != def.Web.RenderScript {
		t.Errorf("Web.RenderScript = %q, want default", cfg.Web.RenderScript)
	}

	// Set fields survive.
	cfg2 := config.Config{Output: config.OutputConfig{Dir: "custom"}}
	cfg2.ApplyDefaults()
	if cfg2.Output.Dir != "custom" {
		t.Errorf("ApplyDefaults() overwrote set field: %q", cfg2.Output.Dir)
	}
}
