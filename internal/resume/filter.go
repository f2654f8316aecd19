package resume

// PageVariant selects the page-length rendering variant.
type PageVariant string

// Page-length variants.
const (
	OnePage PageVariant = "1page"
	TwoPage PageVariant = "2page"
)

// FilterForVariant returns a copy of doc with entries tagged for the
// other page-length variant removed: the one-page variant drops
// two_page_only entries and vice versa. The input document is left
// untouched so a cached load can serve every variant in the same build.
func FilterForVariant(doc *Document, v PageVariant) *Document {
	drop := func(t Tags) bool { return t.TwoPageOnly }
	if v == TwoPage {
		drop = func(t Tags) bool { return t.OnePageOnly }
	}

	out := *doc
	out.Experience = filterSlice(doc.Experience, func(e Job) bool { return drop(e.Tags) })
	out.Education = filterSlice(doc.Education, func(e EducationEntry) bool { return drop(e.Tags) })
	out.Projects = filterSlice(doc.Projects, func(e ProjectEntry) bool { return drop(e.Tags) })
	out.Certificates = filterSlice(doc.Certificates, func(e CertificateEntry) bool { return drop(e.Tags) })
	out.OtherExperience = filterSlice(doc.OtherExperience, func(e OtherExperienceEntry) bool { return drop(e.Tags) })
	return &out
}

// filterSlice copies s without the entries drop selects. The result is a
// fresh slice; the input backing array is never written.
func filterSlice[T any](s []T, drop func(T) bool) []T {
	if s == nil {
		return nil
	}
	out := make([]T, 0, len(s))
	for _, e := range s {
		if !drop(e) {
			out = append(out, e)
		}
	}
	return out
}
