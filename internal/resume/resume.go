// Package resume defines the language-keyed resume data model and its
// loading, caching, and variant-filtering rules.
package resume

import "strings"

// RangeSeparator splits a date field into start and end halves.
// An en dash with surrounding spaces, as written in the data files.
const RangeSeparator = " – "

// Document is the root record for one language. Loaded once per language
// and never mutated after load; variant filtering produces copies.
type Document struct {
	Basics          Basics                 `yaml:"basics"`
	Profile         string                 `yaml:"profile"`
	Experience      []Job                  `yaml:"experience"`
	Education       []EducationEntry       `yaml:"education"`
	Projects        []ProjectEntry         `yaml:"projects"`
	Certificates    []CertificateEntry     `yaml:"certificates"`
	OtherExperience []OtherExperienceEntry `yaml:"other_experience"`
	Skills          []SkillGroup           `yaml:"skills"`
	SpokenLanguages []SpokenLanguage       `yaml:"spoken_languages"`
}

// Empty reports whether the document carries no content at all.
// An empty document stands in for a missing or unreadable data file.
func (d *Document) Empty() bool {
	return d == nil || (d.Basics == Basics{} &&
		d.Profile == "" &&
		len(d.Experience) == 0 &&
		len(d.Education) == 0 &&
		len(d.Projects) == 0 &&
		len(d.Certificates) == 0 &&
		len(d.OtherExperience) == 0 &&
		len(d.Skills) == 0 &&
		len(d.SpokenLanguages) == 0)
}

// Basics holds the contact header block.
type Basics struct {
	Name     string        `yaml:"name"`
	Label    string        `yaml:"label"`
	Email    string        `yaml:"email"`
	Phone    string        `yaml:"phone"`
	Location string        `yaml:"location"`
	Photo    string        `yaml:"photo"`
	LinkedIn SocialProfile `yaml:"linkedin"`
	GitHub   SocialProfile `yaml:"github"`
}

// SocialProfile is one social network reference.
type SocialProfile struct {
	Display  string `yaml:"display"`
	Username string `yaml:"username"`
	URL      string `yaml:"url"`
}

// Tags controls inclusion of an entry in page-length variants.
type Tags struct {
	OnePageOnly bool `yaml:"one_page_only"`
	TwoPageOnly bool `yaml:"two_page_only"`
}

// Job is one experience entry.
type Job struct {
	Company         string     `yaml:"company"`
	CompanyURL      string     `yaml:"company_url"`
	Title           string     `yaml:"title"`
	Date            string     `yaml:"date"`
	Summary         string     `yaml:"summary"`
	Highlights      Highlights `yaml:"highlights"`
	HighlightsShort Highlights `yaml:"highlights_short"`
	Tags            `yaml:",inline"`
}

// EducationEntry is one education entry. Degree may encode a study type
// and area as "Type: Area".
type EducationEntry struct {
	Institution    string     `yaml:"institution"`
	InstitutionURL string     `yaml:"institution_url"`
	Degree         string     `yaml:"degree"`
	Date           string     `yaml:"date"`
	Coursework     string     `yaml:"coursework"`
	Highlights     Highlights `yaml:"highlights"`
	Tags           `yaml:",inline"`
}

// ProjectEntry is one project entry.
type ProjectEntry struct {
	Name       string     `yaml:"name"`
	Tech       string     `yaml:"tech"`
	URL        string     `yaml:"url"`
	Year       string     `yaml:"year"`
	Highlights Highlights `yaml:"highlights"`
	Tags       `yaml:",inline"`
}

// CertificateEntry is one certificate or award.
type CertificateEntry struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
	Date   string `yaml:"date"`
	URL    string `yaml:"url"`
	Tags   `yaml:",inline"`
}

// OtherExperienceEntry is volunteering or other non-job experience.
type OtherExperienceEntry struct {
	Organization    string     `yaml:"organization"`
	OrganizationURL string     `yaml:"organization_url"`
	Title           string     `yaml:"title"`
	Date            string     `yaml:"date"`
	Highlights      Highlights `yaml:"highlights"`
	Tags            `yaml:",inline"`
}

// SkillGroup is a category with a comma-separated keyword string.
type SkillGroup struct {
	Category string `yaml:"category"`
	Keywords string `yaml:"keywords"`
}

// SpokenLanguage is one spoken language with a fluency level.
type SpokenLanguage struct {
	Language string `yaml:"language"`
	Level    string `yaml:"level"`
}

// Highlights normalizes a YAML field that may be a single string or a
// list of strings into a list.
type Highlights []string

// UnmarshalYAML accepts either a scalar string or a sequence of strings.
func (h *Highlights) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		if single == "" {
			*h = nil
		} else {
			*h = Highlights{single}
		}
		return nil
	}

	var list []string
	if err := unmarshal(&list); err != nil {
		return err
	}
	*h = list
	return nil
}

// DateRange is a date field split on RangeSeparator.
type DateRange struct {
	Start  string
	End    string
	Ranged bool // separator was present in the source
}

// ParseDateRange splits a date string on the en-dash separator.
// A string without the separator yields Start = whole string, Ranged false.
// "A – " yields Start "A", empty End, Ranged true (open-ended range).
func ParseDateRange(date string) DateRange {
	before, after, found := strings.Cut(date, RangeSeparator)
	if !found {
		return DateRange{Start: date}
	}
	return DateRange{Start: before, End: after, Ranged: true}
}

// Join reassembles the range. When both halves are present this reproduces
// the original date string exactly.
func (r DateRange) Join() string {
	if !r.Ranged {
		return r.Start
	}
	return r.Start + RangeSeparator + r.End
}

// SlugName turns a person's name into the filename slug used for the
// deployed artifacts. Empty names fall back to "resume".
func SlugName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "resume"
	}
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// SplitCommaList splits a comma-separated field into trimmed elements.
// Empty or missing input maps to an empty list, never nil, so downstream
// renderers see a present, iterable field.
func SplitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
