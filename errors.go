package cvgen

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNoLanguages indicates no resume data file exists for any
	// language, which halts the web-format path entirely.
	ErrNoLanguages = errors.New("no resume data found for any language")

	// ErrAllVariantsFailed indicates every selected variant failed to
	// build; partial failures only show up in the build report.
	ErrAllVariantsFailed = errors.New("all selected variants failed")

	// ErrOutputDirectory indicates the output tree could not be created.
	ErrOutputDirectory = errors.New("failed to create output directory")
)
