// Package jsonresume maps loaded resume documents to the JSON Resume
// schema consumed by the HTML theme renderer. Field names and nesting are
// a contract with the downstream renderer: do not rename or reshape them
// without a matching renderer update.
package jsonresume

// Resume is the root of the JSON Resume document.
type Resume struct {
	Basics    Basics      `json:"basics"`
	Meta      Meta        `json:"meta"`
	Work      []Work      `json:"work"`
	Education []Education `json:"education"`
	Skills    []Skill     `json:"skills"`
	Awards    []Award     `json:"awards"`
	Languages []Language  `json:"languages"`
	Projects  []Project   `json:"projects"`
	Volunteer []Volunteer `json:"volunteer"`
}

// Basics is the contact header.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Image    string    `json:"image"`
	Summary  string    `json:"summary"`
	URL      string    `json:"url"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles"`
}

// Location is the structured location block.
type Location struct {
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	Region      string `json:"region"`
}

// Profile is one social network entry. The profile list has a fixed
// length and order (LinkedIn, GitHub) even when a network is absent;
// themes index into it.
type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// Meta carries renderer hints.
type Meta struct {
	Theme string `json:"theme"`
}

// Work is one employment entry.
type Work struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	URL        string   `json:"url"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights"`
}

// Education is one education entry. Courses render as tags, highlights
// as a bullet list.
type Education struct {
	Institution string   `json:"institution"`
	URL         string   `json:"url"`
	Area        string   `json:"area"`
	StudyType   string   `json:"studyType"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Courses     []string `json:"courses,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Skill is one skill group.
type Skill struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Award is one certificate or award. Summary carries the credential URL.
type Award struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Awarder string `json:"awarder"`
	Summary string `json:"summary"`
}

// Language is one spoken language.
type Language struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency"`
}

// Project is one project entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	StartDate   string   `json:"startDate"`
	Highlights  []string `json:"highlights"`
}

// Volunteer is one non-job experience entry.
type Volunteer struct {
	Organization string   `json:"organization"`
	Position     string   `json:"position"`
	URL          string   `json:"url"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
}
