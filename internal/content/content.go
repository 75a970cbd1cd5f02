// Package content holds the static configuration the About page is built from:
// the organization profile, page toggles, social links and the content sections.
package content

// Content aggregates everything the About page renders.
type Content struct {
	// Locale is the BCP 47 language of the copy, used for the html lang attribute.
	Locale       string       `yaml:"locale" validate:"omitempty,bcp47_language_tag"`
	Organization Organization `yaml:"organization"`
	About        About        `yaml:"about"`
	Social       []SocialLink `yaml:"social" validate:"dive"`
	Sections     []Section    `yaml:"sections" validate:"dive"`
}

// Organization describes the company behind the page.
type Organization struct {
	Name        string   `yaml:"name" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Tagline     string   `yaml:"tagline"`
	Summary     string   `yaml:"summary"`
	Logo        string   `yaml:"logo" validate:"required,startswith=/"`
	Location    string   `yaml:"location"`
	Tags        []string `yaml:"tags" validate:"dive,required"`
}

// About toggles the optional blocks of the page.
type About struct {
	Intro          Intro          `yaml:"intro"`
	TableOfContent TableOfContent `yaml:"tableOfContent"`
	Avatar         Toggle         `yaml:"avatar"`
	Calendar       Calendar       `yaml:"calendar"`
}

// Intro is the lead block of the page. Its title doubles as the anchor ID.
type Intro struct {
	Display bool   `yaml:"display"`
	Title   string `yaml:"title" validate:"required"`
}

// TableOfContent controls the fixed navigation.
type TableOfContent struct {
	Display  bool `yaml:"display"`
	SubItems bool `yaml:"subItems"`
}

// Toggle is a block with nothing to configure beyond visibility.
type Toggle struct {
	Display bool `yaml:"display"`
}

// Calendar is the "Schedule a Demo" call to action.
type Calendar struct {
	Display bool   `yaml:"display"`
	Link    string `yaml:"link" validate:"omitempty,url"`
}

// SocialLink is one external profile. Icon names a glyph from the component set.
type SocialLink struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Icon string `yaml:"icon" json:"icon,omitempty"`
	Link string `yaml:"link" json:"link,omitempty" validate:"omitempty,url"`
}

// Section is a titled group of entries rendered under an h2.
type Section struct {
	Title   string  `yaml:"title" validate:"required"`
	Display bool    `yaml:"display"`
	Entries []Entry `yaml:"entries" validate:"dive"`
}

// Entry is a single {title, description} record inside a section.
type Entry struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// OutlineSection is one row of the table of contents.
type OutlineSection struct {
	Title   string
	Display bool
	Items   []string
}
