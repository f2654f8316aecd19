package assets

import "fmt"

// ValidateAssetName rejects names that could escape the template or
// theme directory once joined into a file path. Template names like
// "cv_2page" and theme names like "stackoverflow" only ever use
// letters, digits, hyphens, and underscores, so anything else is
// refused outright rather than enumerating dangerous characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		if !isAssetNameRune(r) {
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}

func isAssetNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_':
		return true
	}
	return false
}
