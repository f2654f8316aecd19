package assets

import "errors"

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls
// back to embedded if the asset is not found in the custom location.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver. If customBasePath is empty, only
// embedded assets are used. Returns error if customBasePath is set but
// invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a LaTeX template, trying the custom loader first.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	return r.loadWithFallback(func(loader Loader) (string, error) {
		return loader.LoadTemplate(name)
	})
}

// LoadTheme loads a web theme template, trying the custom loader first.
func (r *Resolver) LoadTheme(name string) (string, error) {
	return r.loadWithFallback(func(loader Loader) (string, error) {
		return loader.LoadTheme(name)
	})
}

// loadWithFallback implements the custom-first, fallback-to-embedded logic.
func (r *Resolver) loadWithFallback(loadFn func(Loader) (string, error)) (string, error) {
	if r.custom == nil {
		return loadFn(r.embedded)
	}

	content, err := loadFn(r.custom)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors.
	if !isNotFoundError(err) {
		return "", err
	}

	return loadFn(r.embedded)
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) || errors.Is(err, ErrThemeNotFound)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
