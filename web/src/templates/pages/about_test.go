package pages_test

import (
	"strings"
	"testing"

	"github.com/nfrund/vep/internal/content"
	"github.com/nfrund/vep/internal/seo"
	"github.com/nfrund/vep/web/src/templates/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderAbout(t *testing.T, c content.Content) string {
	t.Helper()

	jsonLD, err := seo.JSONLDScript(seo.NewOrganization(c, "vep.example.com"))
	require.NoError(t, err)

	var b strings.Builder
	err = pages.AboutContent(pages.AboutProps{Content: c, StructuredData: jsonLD}).Render(&b)
	require.NoError(t, err)
	return b.String()
}

func TestAboutContent_Default(t *testing.T) {
	html := renderAbout(t, content.Default())

	assert.Contains(t, html, `<script type="application/ld+json">`)
	assert.Contains(t, html, `<h1 class="display-strong-xl`)
	assert.Contains(t, html, "VEP - Virtual Employee Portal")
	assert.Contains(t, html, "Empowering Remote Teams")
	assert.Contains(t, html, "Global Remote Team")
	assert.Contains(t, html, "Schedule a Demo")
	assert.Contains(t, html, `<nav class="toc`)

	assert.Equal(t, 3, strings.Count(html, "<h2 "))
	assert.Equal(t, 9, strings.Count(html, `class="entry `))

	// Sections and entries keep their listed order.
	order := []string{
		`<h2 id="vep-features"`, "Remote Collaboration", "Task Management", "Employee Engagement",
		`<h2 id="our-team"`, "Leadership", "Developers", "Support",
		`<h2 id="technical-stack"`, "Frontend", "Backend", "DevOps",
	}
	body := html[strings.Index(html, `<h2 id="vep-features"`):]
	last := -1
	for _, want := range order {
		idx := strings.Index(body, want)
		require.GreaterOrEqual(t, idx, 0, "missing %q", want)
		assert.Greater(t, idx, last, "%q is out of order", want)
		last = idx
	}
}

func TestAboutContent_HiddenSection(t *testing.T) {
	c := content.Default()
	c.Sections[1].Display = false

	html := renderAbout(t, c)

	assert.Equal(t, 2, strings.Count(html, "<h2 "))
	assert.Equal(t, 6, strings.Count(html, `class="entry `))
	assert.NotContains(t, html, "Our Team")
	assert.NotContains(t, html, "Leadership")
	assert.NotContains(t, html, `href="#our-team"`)
}

func TestAboutContent_SocialButtons(t *testing.T) {
	c := content.Default()
	c.Social = []content.SocialLink{
		{Name: "X", Icon: "x", Link: "https://x.com/a"},
		{Name: "Mail", Icon: "email", Link: "mailto:a@b.com"},
	}

	html := renderAbout(t, c)

	assert.Equal(t, 1, strings.Count(html, `class="btn `))
	assert.Contains(t, html, "<span>X</span>")
	assert.NotContains(t, html, "<span>Mail</span>")
	assert.Contains(t, html, `"sameAs":["https://x.com/a"]`)
}

func TestAboutContent_NoSocial(t *testing.T) {
	c := content.Default()
	c.Social = []content.SocialLink{{Name: "Mail", Link: "mailto:a@b.com"}}

	html := renderAbout(t, c)

	assert.NotContains(t, html, `class="social `)
	assert.Contains(t, html, `"sameAs":[]`)
}

func TestAboutContent_Toggles(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *content.Content)
		notContains []string
		contains    []string
	}{
		{
			name:        "table of contents hidden",
			mutate:      func(c *content.Content) { c.About.TableOfContent.Display = false },
			notContains: []string{"<nav"},
		},
		{
			name:        "table of contents without sub items",
			mutate:      func(c *content.Content) { c.About.TableOfContent.SubItems = false },
			contains:    []string{`href="#vep-features"`},
			notContains: []string{"toc-items", `href="#vep-features-remote-collaboration"`},
		},
		{
			name:        "table of contents with sub items",
			mutate:      func(c *content.Content) {},
			contains:    []string{`href="#introduction"`, `href="#vep-features-remote-collaboration"`, `href="#technical-stack-devops"`},
			notContains: []string{},
		},
		{
			name:        "intro hidden from outline",
			mutate:      func(c *content.Content) { c.About.Intro.Display = false },
			contains:    []string{`<header id="introduction"`},
			notContains: []string{`href="#introduction"`, `class="intro body`},
		},
		{
			name:        "avatar hidden",
			mutate:      func(c *content.Content) { c.About.Avatar.Display = false },
			notContains: []string{"avatar-block", "Global Remote Team"},
		},
		{
			name:        "calendar hidden",
			mutate:      func(c *content.Content) { c.About.Calendar.Display = false },
			notContains: []string{"Schedule a Demo", "cal.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := content.Default()
			tt.mutate(&c)

			html := renderAbout(t, c)

			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, html, unwanted)
			}
		})
	}
}

func TestAboutContent_EntryAnchors(t *testing.T) {
	html := renderAbout(t, content.Default())

	assert.Contains(t, html, `<div id="vep-features-remote-collaboration" class="entry `)
	assert.Contains(t, html, `<div id="technical-stack-devops" class="entry `)
}

func TestAboutContent_UniqueIDs(t *testing.T) {
	c := content.Default()
	c.About.Intro.Title = "Overview"
	c.Sections = []content.Section{
		{Title: "Overview", Display: true, Entries: []content.Entry{{Title: "Overview"}}},
		{Title: "Team", Display: true, Entries: []content.Entry{{Title: "Overview"}, {Title: "Team"}}},
	}

	html := renderAbout(t, c)

	for _, id := range []string{"overview", "overview-2", "overview-overview", "team", "team-overview", "team-team"} {
		assert.Equal(t, 1, strings.Count(html, `id="`+id+`"`), "id %q", id)
		assert.Equal(t, 1, strings.Count(html, `href="#`+id+`"`), "href %q", id)
	}
	assert.Contains(t, html, `<header id="overview" `)
	assert.Contains(t, html, `<h2 id="overview-2" `)
}

func TestAboutContent_PunctuationTitlesHaveNoID(t *testing.T) {
	c := content.Default()
	c.About.Intro.Title = "!!!"
	c.Sections = []content.Section{
		{Title: "???", Display: true, Entries: []content.Entry{{Title: "***", Description: "stars"}}},
	}

	html := renderAbout(t, c)

	assert.NotContains(t, html, `id=""`)
	assert.NotContains(t, html, `href="#"`)
	assert.Contains(t, html, `<header class="intro-header`)
	assert.Contains(t, html, `<h2 class="heading`)
	assert.Contains(t, html, `<span class="toc-link font-medium">???</span>`)
	assert.Contains(t, html, `<span class="toc-item text-sm">***</span>`)
}
