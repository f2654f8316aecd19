// Package render assembles LaTeX documents from resume data. Templates
// use << >> delimiters so LaTeX keeps its braces, and every interpolated
// scalar passes through the LaTeX escaper before the template ever sees
// it, with no opt-out.
package render

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/alnah/go-cvgen/internal/latex"
	"github.com/alnah/go-cvgen/internal/resume"
)

// Sentinel errors for template rendering.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrTemplateParse    = errors.New("template parse failed")
	ErrTemplateRender   = errors.New("template rendering failed")
)

// Template delimiters chosen to never collide with LaTeX syntax.
const (
	delimLeft  = "<<"
	delimRight = ">>"
)

// TemplateLoader loads a LaTeX template body by name.
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// Renderer renders resume documents through named LaTeX templates.
type Renderer struct {
	loader TemplateLoader
}

// NewRenderer creates a Renderer loading templates through loader.
func NewRenderer(loader TemplateLoader) *Renderer {
	return &Renderer{loader: loader}
}

// funcs are the helpers available inside templates.
var funcs = template.FuncMap{
	"join": strings.Join,
	"dateRange": func(date string) resume.DateRange {
		return resume.ParseDateRange(date)
	},
	"commaList": resume.SplitCommaList,
}

// Render produces the LaTeX source for a document. The document is
// escaped in full before execution, so the emitted source never contains
// an unescaped control character regardless of where a value is
// interpolated. The caller passes an already variant-filtered document;
// the renderer is variant-agnostic.
func (r *Renderer) Render(templateName string, doc *resume.Document) (string, error) {
	body, err := r.loader.LoadTemplate(templateName)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrTemplateNotFound, templateName, err)
	}

	tmpl, err := template.New(templateName).
		Delims(delimLeft, delimRight).
		Funcs(funcs).
		Option("missingkey=error").
		Parse(body)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrTemplateParse, templateName, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, EscapeDocument(doc)); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrTemplateRender, templateName, err)
	}

	return buf.String(), nil
}

// EscapeDocument returns a copy of doc with every scalar string field
// passed through latex.Escape. The input is not modified.
func EscapeDocument(doc *resume.Document) *resume.Document {
	out := resume.Document{
		Basics:  escapeBasics(doc.Basics),
		Profile: latex.Escape(doc.Profile),
	}

	for _, job := range doc.Experience {
		job.Company = latex.Escape(job.Company)
		job.CompanyURL = latex.Escape(job.CompanyURL)
		job.Title = latex.Escape(job.Title)
		job.Date = latex.Escape(job.Date)
		job.Summary = latex.Escape(job.Summary)
		job.Highlights = escapeAll(job.Highlights)
		job.HighlightsShort = escapeAll(job.HighlightsShort)
		out.Experience = append(out.Experience, job)
	}

	for _, edu := range doc.Education {
		edu.Institution = latex.Escape(edu.Institution)
		edu.InstitutionURL = latex.Escape(edu.InstitutionURL)
		edu.Degree = latex.Escape(edu.Degree)
		edu.Date = latex.Escape(edu.Date)
		edu.Coursework = latex.Escape(edu.Coursework)
		edu.Highlights = escapeAll(edu.Highlights)
		out.Education = append(out.Education, edu)
	}

	for _, proj := range doc.Projects {
		proj.Name = latex.Escape(proj.Name)
		proj.Tech = latex.Escape(proj.Tech)
		proj.URL = latex.Escape(proj.URL)
		proj.Year = latex.Escape(proj.Year)
		proj.Highlights = escapeAll(proj.Highlights)
		out.Projects = append(out.Projects, proj)
	}

	for _, cert := range doc.Certificates {
		cert.Name = latex.Escape(cert.Name)
		cert.Issuer = latex.Escape(cert.Issuer)
		cert.Date = latex.Escape(cert.Date)
		cert.URL = latex.Escape(cert.URL)
		out.Certificates = append(out.Certificates, cert)
	}

	for _, other := range doc.OtherExperience {
		other.Organization = latex.Escape(other.Organization)
		other.OrganizationURL = latex.Escape(other.OrganizationURL)
		other.Title = latex.Escape(other.Title)
		other.Date = latex.Escape(other.Date)
		other.Highlights = escapeAll(other.Highlights)
		out.OtherExperience = append(out.OtherExperience, other)
	}

	for _, group := range doc.Skills {
		group.Category = latex.Escape(group.Category)
		group.Keywords = latex.Escape(group.Keywords)
		out.Skills = append(out.Skills, group)
	}

	for _, spoken := range doc.SpokenLanguages {
		spoken.Language = latex.Escape(spoken.Language)
		spoken.Level = latex.Escape(spoken.Level)
		out.SpokenLanguages = append(out.SpokenLanguages, spoken)
	}

	return &out
}

func escapeBasics(b resume.Basics) resume.Basics {
	b.Name = latex.Escape(b.Name)
	b.Label = latex.Escape(b.Label)
	b.Email = latex.Escape(b.Email)
	b.Phone = latex.Escape(b.Phone)
	b.Location = latex.Escape(b.Location)
	b.Photo = latex.Escape(b.Photo)
	b.LinkedIn = escapeProfile(b.LinkedIn)
	b.GitHub = escapeProfile(b.GitHub)
	return b
}

func escapeProfile(p resume.SocialProfile) resume.SocialProfile {
	p.Display = latex.Escape(p.Display)
	p.Username = latex.Escape(p.Username)
	p.URL = latex.Escape(p.URL)
	return p
}

func escapeAll(items resume.Highlights) resume.Highlights {
	if items == nil {
		return nil
	}
	out := make(resume.Highlights, len(items))
	for i, item := range items {
		out[i] = latex.Escape(item)
	}
	return out
}
