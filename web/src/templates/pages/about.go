package pages

import (
	"fmt"

	"github.com/nfrund/vep/internal/content"
	"github.com/nfrund/vep/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const demoLabel = "Schedule a Demo"

// AboutProps is everything the About page needs to render.
type AboutProps struct {
	Content content.Content
	// StructuredData is the JSON-LD script node emitted at the top of the page.
	StructuredData g.Node
}

// AboutContent is a Gomponents Node representing the main content of the About page.
func AboutContent(p AboutProps) g.Node {
	c := p.Content
	about := c.About
	outline := content.Outline(c)
	ids := newOutlineIDs(outline)

	return h.Div(
		h.Class("about mx-auto flex max-w-5xl flex-col"),
		p.StructuredData,
		g.If(about.TableOfContent.Display, tableOfContents(outline, ids, about.TableOfContent.SubItems)),
		h.Div(
			h.Class("flex w-full flex-col justify-center md:flex-row"),
			g.If(about.Avatar.Display, avatarBlock(c.Organization)),
			h.Div(
				h.Class("block-align flex max-w-2xl flex-[9] flex-col"),
				introHeader(c, ids.rows[0]),
				g.If(about.Intro.Display, h.Div(
					h.Class("intro body-default-l mb-10 flex w-full flex-col gap-4"),
					g.Text(c.Organization.Summary),
				)),
				sections(c.Sections, ids),
			),
		),
	)
}

// tableOfContents renders the fixed side navigation. Hidden outline rows are
// skipped; items are listed only when withItems is set.
func tableOfContents(outline []content.OutlineSection, ids outlineIDs, withItems bool) g.Node {
	var rows g.Group
	for i, s := range outline {
		if !s.Display {
			continue
		}
		var items g.Group
		for j, item := range s.Items {
			items = append(items, h.Li(tocLink(ids.items[i][j], "toc-item text-sm", item)))
		}
		rows = append(rows, h.Div(
			h.Class("toc-section flex flex-col gap-2"),
			tocLink(ids.rows[i], "toc-link font-medium", s.Title),
			g.If(withItems && len(items) > 0, h.Ul(
				h.Class("toc-items flex flex-col gap-1 pl-4"),
				items,
			)),
		))
	}
	return h.Nav(
		h.Class("toc fixed left-0 top-1/2 hidden -translate-y-1/2 flex-col gap-8 pl-6 md:flex"),
		g.Attr("aria-label", "Table of contents"),
		rows,
	)
}

// outlineIDs holds the element ID of every outline row and item, indexed
// like the outline. IDs are unique across the page; "" means no ID.
type outlineIDs struct {
	rows  []string
	items [][]string
}

// newOutlineIDs slugs every title in document order. A slug already taken
// gets the first free numeric suffix: "team", then "team-2".
func newOutlineIDs(outline []content.OutlineSection) outlineIDs {
	used := make(map[string]bool)
	unique := func(id string) string {
		if id == "" {
			return ""
		}
		base := id
		for n := 2; used[id]; n++ {
			id = fmt.Sprintf("%s-%d", base, n)
		}
		used[id] = true
		return id
	}

	ids := outlineIDs{
		rows:  make([]string, len(outline)),
		items: make([][]string, len(outline)),
	}
	for i, s := range outline {
		ids.rows[i] = unique(components.Anchor(s.Title))
		ids.items[i] = make([]string, len(s.Items))
		for j, item := range s.Items {
			ids.items[i][j] = unique(components.EntryAnchor(s.Title, item))
		}
	}
	return ids
}

// tocLink points at anchor, or renders plain text when there is nothing to
// point at.
func tocLink(anchor, class, text string) g.Node {
	if anchor == "" {
		return h.Span(h.Class(class), g.Text(text))
	}
	return h.A(h.Href("#"+anchor), h.Class(class), g.Text(text))
}

func avatarBlock(org content.Organization) g.Node {
	return h.Aside(
		h.Class("avatar-block flex min-w-40 flex-[3] flex-col items-center gap-4 px-8 pb-10"),
		components.Avatar(org.Logo, org.Name),
		g.If(org.Location != "", h.Div(
			h.Class("location flex items-center gap-2"),
			components.Icon("globe"),
			g.Text(org.Location),
		)),
		g.If(len(org.Tags) > 0, h.Div(
			h.Class("tags flex flex-wrap gap-2"),
			g.Map(org.Tags, components.Tag),
		)),
	)
}

func introHeader(c content.Content, id string) g.Node {
	social := content.WebSocial(c.Social)

	return h.Header(
		components.ID(id),
		h.Class("intro-header mb-8 flex min-h-40 w-full flex-col justify-center"),
		g.If(c.About.Calendar.Display, calendarPill(c.About.Calendar.Link)),
		components.DisplayTitle(c.Organization.Name),
		g.If(c.Organization.Tagline != "", components.Lead(c.Organization.Tagline)),
		g.If(len(social) > 0, h.Div(
			h.Class("social flex flex-wrap gap-2 pb-2 pt-5"),
			g.Map(social, func(l content.SocialLink) g.Node {
				return components.Button(l.Link, l.Icon, l.Name)
			}),
		)),
	)
}

func calendarPill(link string) g.Node {
	return h.Div(
		h.Class("calendar mb-4 flex w-fit items-center gap-2 rounded-full border p-1"),
		h.Span(h.Class("pl-3"), components.Icon("calendar")),
		h.Span(h.Class("px-2"), g.Text(demoLabel)),
		h.Span(
			// External scheduling pages must load normally, not through hx-boost.
			hx.Boost("false"),
			components.IconButton(link, "chevronRight", demoLabel),
		),
	)
}

// sections renders the displayed sections. Section i is outline row i+1.
func sections(all []content.Section, ids outlineIDs) g.Node {
	var nodes g.Group
	for i, s := range all {
		if s.Display {
			nodes = append(nodes, section(s, ids.rows[i+1], ids.items[i+1]))
		}
	}
	return nodes
}

func section(s content.Section, id string, entryIDs []string) g.Node {
	entries := make(g.Group, 0, len(s.Entries))
	for i, e := range s.Entries {
		entries = append(entries, components.TitledBlock(entryIDs[i], e.Title, e.Description))
	}
	return g.Group{
		components.Heading(id, s.Title),
		h.Div(
			h.Class("section-entries mb-10 flex w-full flex-col gap-6"),
			entries,
		),
	}
}
