package jsonresume

import (
	"strings"

	"github.com/alnah/go-cvgen/internal/latex"
	"github.com/alnah/go-cvgen/internal/resume"
)

// DefaultTheme is the theme requested when the data carries no override.
const DefaultTheme = "stackoverflow"

// defaultCountryCode fills basics.location.countryCode; the data files
// only carry a free-text location string.
const defaultCountryCode = "DE"

// presentMarkers holds the language-specific placeholder for an ongoing
// date range. Unknown languages fall back to English.
var presentMarkers = map[string]string{
	"en": "Present",
	"de": "Heute",
}

// PresentMarker returns the "present" placeholder for a language code.
func PresentMarker(lang string) string {
	if m, ok := presentMarkers[lang]; ok {
		return m
	}
	return presentMarkers["en"]
}

// FromDocument converts a loaded resume document to the JSON Resume
// schema for the web pipeline. Pure function of the document and language
// code: lang only selects the present-date placeholder.
//
// The web output is the always-published superset, so entries tagged
// one_page_only are omitted entirely; everything else is included. All
// free text goes through the LaTeX-to-Markdown transform, and list fields
// are always present (empty, never null) so themes need no null checks.
func FromDocument(doc *resume.Document, lang string) *Resume {
	r := &Resume{
		Basics:    mapBasics(doc),
		Meta:      Meta{Theme: DefaultTheme},
		Work:      []Work{},
		Education: []Education{},
		Skills:    []Skill{},
		Awards:    []Award{},
		Languages: []Language{},
		Projects:  []Project{},
		Volunteer: []Volunteer{},
	}

	marker := PresentMarker(lang)

	for _, job := range doc.Experience {
		if job.OnePageOnly {
			continue
		}
		highlights := job.Highlights
		if len(highlights) == 0 {
			highlights = job.HighlightsShort
		}
		w := Work{
			Name:       latex.ToMarkdown(job.Company),
			Position:   latex.ToMarkdown(job.Title),
			URL:        job.CompanyURL,
			Highlights: cleanAll(highlights),
		}
		w.StartDate, w.EndDate = splitDate(job.Date, marker)
		if job.Summary != "" {
			w.Summary = latex.ToMarkdown(job.Summary)
		}
		r.Work = append(r.Work, w)
	}

	for _, edu := range doc.Education {
		if edu.OnePageOnly {
			continue
		}
		studyType, area := splitDegree(edu.Degree)
		e := Education{
			Institution: latex.ToMarkdown(edu.Institution),
			URL:         edu.InstitutionURL,
			Area:        latex.ToMarkdown(area),
			StudyType:   latex.ToMarkdown(studyType),
		}
		e.StartDate, e.EndDate = splitDate(edu.Date, marker)
		if edu.Coursework != "" {
			e.Courses = cleanAll(resume.SplitCommaList(edu.Coursework))
		}
		if len(edu.Highlights) > 0 {
			e.Highlights = cleanAll(edu.Highlights)
		}
		r.Education = append(r.Education, e)
	}

	for _, proj := range doc.Projects {
		if proj.OnePageOnly {
			continue
		}
		r.Projects = append(r.Projects, Project{
			Name:        latex.ToMarkdown(proj.Name),
			Description: latex.ToMarkdown(proj.Tech),
			URL:         proj.URL,
			StartDate:   proj.Year,
			Highlights:  cleanAll(proj.Highlights),
		})
	}

	for _, cert := range doc.Certificates {
		if cert.OnePageOnly {
			continue
		}
		r.Awards = append(r.Awards, Award{
			Title:   latex.ToMarkdown(cert.Name),
			Date:    cert.Date,
			Awarder: latex.ToMarkdown(cert.Issuer),
			Summary: cert.URL,
		})
	}

	for _, other := range doc.OtherExperience {
		if other.OnePageOnly {
			continue
		}
		v := Volunteer{
			Organization: latex.ToMarkdown(other.Organization),
			Position:     latex.ToMarkdown(other.Title),
			URL:          other.OrganizationURL,
			Summary:      latex.ToMarkdown(strings.Join(other.Highlights, " ")),
			Highlights:   cleanAll(other.Highlights),
		}
		v.StartDate, v.EndDate = splitDate(other.Date, marker)
		r.Volunteer = append(r.Volunteer, v)
	}

	for _, group := range doc.Skills {
		r.Skills = append(r.Skills, Skill{
			Name:     latex.ToMarkdown(group.Category),
			Keywords: cleanAll(resume.SplitCommaList(group.Keywords)),
		})
	}

	for _, spoken := range doc.SpokenLanguages {
		r.Languages = append(r.Languages, Language{
			Language: latex.ToMarkdown(spoken.Language),
			Fluency:  latex.ToMarkdown(spoken.Level),
		})
	}

	return r
}

// mapBasics copies the contact header, splitting the free-text location
// on its first comma to yield the city and surfacing exactly two profile
// slots regardless of what the data carries.
func mapBasics(doc *resume.Document) Basics {
	b := doc.Basics

	city := ""
	if b.Location != "" {
		city = strings.TrimSpace(strings.SplitN(b.Location, ",", 2)[0])
	}

	return Basics{
		Name:    b.Name,
		Label:   b.Label,
		Email:   b.Email,
		Phone:   b.Phone,
		Image:   "profile.jpg",
		Summary: latex.ToMarkdown(doc.Profile),
		URL:     b.LinkedIn.URL,
		Location: Location{
			City:        city,
			CountryCode: defaultCountryCode,
		},
		Profiles: []Profile{
			{Network: "LinkedIn", Username: b.LinkedIn.Username, URL: b.LinkedIn.URL},
			{Network: "GitHub", Username: b.GitHub.Username, URL: b.GitHub.URL},
		},
	}
}

// splitDate maps a date field to startDate/endDate. An open-ended range
// ("2020 – ") ends at the language's present marker; a plain date has no
// end at all.
func splitDate(date, presentMarker string) (start, end string) {
	r := resume.ParseDateRange(date)
	if !r.Ranged {
		return r.Start, ""
	}
	if r.End == "" {
		return r.Start, presentMarker
	}
	return r.Start, r.End
}

// splitDegree splits "Type: Area" on the first ": ". A degree without the
// separator is all area.
func splitDegree(degree string) (studyType, area string) {
	before, after, found := strings.Cut(degree, ": ")
	if !found {
		return "", degree
	}
	return before, after
}

// cleanAll applies the LaTeX-to-Markdown transform to every element,
// returning an empty (never nil) slice.
func cleanAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, latex.ToMarkdown(item))
	}
	return out
}
