package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	if loader == nil {
		t.Fatal("NewEmbeddedLoader() returned nil")
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
		wantContain  string
	}{
		{
			name:         "loads two-page template",
			templateName: "cv_2page",
			wantErr:      nil,
			wantContain:  `\documentclass`,
		},
		{
			name:         "loads one-page template",
			templateName: "cv_1page",
			wantErr:      nil,
			wantContain:  `\documentclass`,
		},
		{
			name:         "returns ErrTemplateNotFound for nonexistent",
			templateName: "nonexistent-template-xyz",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "returns ErrInvalidAssetName for empty name",
			templateName: "",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "returns ErrInvalidAssetName for path traversal",
			templateName: "../secret",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "returns ErrInvalidAssetName for name with dot",
			templateName: "cv.2page",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}

			if tt.wantContain != "" && !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadTemplate(%q) content should contain %q", tt.templateName, tt.wantContain)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTheme(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		themeName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads basic theme",
			themeName:   "basic",
			wantErr:     nil,
			wantContain: "<style>",
		},
		{
			name:      "returns ErrThemeNotFound for nonexistent",
			themeName: "nonexistent-theme-xyz",
			wantErr:   ErrThemeNotFound,
		},
		{
			name:      "returns ErrInvalidAssetName for path traversal",
			themeName: "../../etc/passwd",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTheme(tt.themeName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTheme(%q) error = %v, want %v", tt.themeName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadTheme(%q) unexpected error: %v", tt.themeName, err)
			}

			if tt.wantContain != "" && !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadTheme(%q) content should contain %q", tt.themeName, tt.wantContain)
			}
		})
	}
}
