// Package assets loads LaTeX templates and web theme templates, either
// from the embedded defaults or from an operator-provided directory with
// fallback to embedded.
package assets

// Loader defines the contract for loading build assets.
// Implementations may load from embedded assets or the filesystem.
type Loader interface {
	// LoadTemplate loads a LaTeX template by name (without the .tex.tmpl
	// extension). Returns ErrTemplateNotFound if it doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadTheme loads a built-in web theme template by name (without the
	// .html.tmpl extension). Returns ErrThemeNotFound if it doesn't exist.
	LoadTheme(name string) (string, error)
}
