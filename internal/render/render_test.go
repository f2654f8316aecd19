package render_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-cvgen/internal/render"
	"github.com/alnah/go-cvgen/internal/resume"
)

// mapLoader serves templates from a map, standing in for the asset resolver.
type mapLoader map[string]string

func (m mapLoader) LoadTemplate(name string) (string, error) {
	body, ok := m[name]
	if !ok {
		return "", fmt.Errorf("no such template %q", name)
	}
	return body, nil
}

func sampleDocument() *resume.Document {
	return &resume.Document{
		Basics: resume.Basics{
			Name:     "Ada Example",
			Label:    "R&D Engineer",
			Email:    "ada@example.com",
			Location: "Berlin, Germany",
		},
		Profile: "Engineer with 100% focus on systems & tools.",
		Experience: []resume.Job{
			{
				Company:    "Tools & Co",
				Title:      "Engineer",
				Date:       "2020-01 – 2023-06",
				Highlights: resume.Highlights{"Cut costs by 40%", "Built C_1 pipeline"},
			},
		},
		Skills: []resume.SkillGroup{
			{Category: "Languages", Keywords: "Go, Python , SQL"},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	loader := mapLoader{
		"simple": `\section{<< .Basics.Name >>}
<< .Profile >>
<< range .Experience >>\entry{<< .Company >>}{<< .Title >>}<< end >>`,
	}
	renderer := render.NewRenderer(loader)

	got, err := renderer.Render("simple", sampleDocument())
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	wantFragments := []string{
		`\section{Ada Example}`,
		`100\% focus on systems \& tools`,
		`\entry{Tools \& Co}{Engineer}`,
	}
	for _, fragment := range wantFragments {
		fragment := fragment
		if !strings.Contains(got, fragment) {
			t.Errorf("Render() output missing %q\noutput: %s", fragment, got)
		}
	}
}

func TestRenderer_RenderEscapesEverywhere(t *testing.T) {
	t.Parallel()

	loader := mapLoader{
		"t": `<< .Basics.Label >> | << range .Experience >><< range .Highlights >><< . >>;<< end >><< end >>`,
	}
	renderer := render.NewRenderer(loader)

	got, err := renderer.Render("t", sampleDocument())
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	if !strings.Contains(got, `R\&D Engineer`) {
		t.Errorf("label not escaped: %s", got)
	}
	if !strings.Contains(got, `40\%`) {
		t.Errorf("highlight percent not escaped: %s", got)
	}
	if !strings.Contains(got, `C\_1`) {
		t.Errorf("highlight underscore not escaped: %s", got)
	}
}

func TestRenderer_TemplateFuncs(t *testing.T) {
	t.Parallel()

	loader := mapLoader{
		"funcs": `<< range .Experience >><< with dateRange .Date >><< .Start >>/<< .End >><< end >><< end >>
<< range .Skills >><< range commaList .Keywords >>[<< . >>]<< end >><< end >>`,
	}
	renderer := render.NewRenderer(loader)

	got, err := renderer.Render("funcs", sampleDocument())
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	if !strings.Contains(got, "2020-01/2023-06") {
		t.Errorf("dateRange func failed: %s", got)
	}
	if !strings.Contains(got, "[Go][Python][SQL]") {
		t.Errorf("commaList func failed: %s", got)
	}
}

func TestRenderer_RenderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		loader       mapLoader
		templateName string
		wantErr      error
	}{
		{
			name:         "missing template",
			loader:       mapLoader{},
			templateName: "missing",
			wantErr:      render.ErrTemplateNotFound,
		},
		{
			name:         "parse error",
			loader:       mapLoader{"bad": `<< range >>`},
			templateName: "bad",
			wantErr:      render.ErrTemplateParse,
		},
		{
			name:         "unknown field fails render",
			loader:       mapLoader{"field": `<< .NoSuchField >>`},
			templateName: "field",
			wantErr:      render.ErrTemplateRender,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := render.NewRenderer(tt.loader).Render(tt.templateName, sampleDocument())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Render() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEscapeDocument_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	doc := sampleDocument()
	_ = render.EscapeDocument(doc)

	if doc.Basics.Label != "R&D Engineer" {
		t.Errorf("input basics mutated: %q", doc.Basics.Label)
	}
	if doc.Experience[0].Highlights[0] != "Cut costs by 40%" {
		t.Errorf("input highlights mutated: %q", doc.Experience[0].Highlights[0])
	}
}

func TestEscapeDocument_Idempotent(t *testing.T) {
	t.Parallel()

	once := render.EscapeDocument(sampleDocument())
	twice := render.EscapeDocument(once)

	if once.Basics.Label != twice.Basics.Label {
		t.Errorf("escaping not idempotent: %q vs %q", once.Basics.Label, twice.Basics.Label)
	}
	if once.Profile != twice.Profile {
		t.Errorf("escaping not idempotent: %q vs %q", once.Profile, twice.Profile)
	}
}
