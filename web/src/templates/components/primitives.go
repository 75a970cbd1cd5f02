// Package components is the small UI kit the pages are assembled from:
// typography, tags, buttons, avatars and icons.
package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Heading renders an h2 section heading anchored at id. An empty id is omitted.
func Heading(id, text string) g.Node {
	return h.H2(
		ID(id),
		h.Class("heading display-strong-s text-2xl font-bold mb-4"),
		g.Text(text),
	)
}

// DisplayTitle renders the page's h1.
func DisplayTitle(text string) g.Node {
	return h.H1(
		h.Class("display-strong-xl text-5xl font-extrabold"),
		g.Text(text),
	)
}

// Lead renders muted display text under a title.
func Lead(text string) g.Node {
	return h.P(
		h.Class("display-default-xs text-xl text-gray-500"),
		g.Text(text),
	)
}

// TitledBlock renders a strong title above a muted description.
func TitledBlock(id, title, description string) g.Node {
	return h.Div(
		ID(id),
		h.Class("entry flex flex-col gap-1"),
		h.P(h.Class("heading-strong-l text-lg font-semibold"), g.Text(title)),
		h.P(h.Class("body-default-m text-gray-500"), g.Text(description)),
	)
}

// Tag renders a pill label.
func Tag(label string) g.Node {
	return h.Span(
		h.Class("tag tag-l rounded-full border px-3 py-1 text-sm"),
		g.Text(label),
	)
}

// Avatar renders a round image.
func Avatar(src, alt string) g.Node {
	return h.Img(
		h.Src(src),
		h.Alt(alt),
		h.Class("avatar avatar-xl h-40 w-40 rounded-full object-cover"),
		h.Width("160"),
		h.Height("160"),
	)
}

// Button renders a secondary link button with an optional prefix icon.
func Button(href, icon, label string) g.Node {
	return h.A(
		h.Href(href),
		h.Class("btn btn-secondary btn-s inline-flex items-center gap-2 rounded-md border px-3 py-1 text-sm"),
		g.If(HasIcon(icon), Icon(icon)),
		h.Span(g.Text(label)),
	)
}

// IconButton renders a round link holding only an icon.
func IconButton(href, icon, label string) g.Node {
	return h.A(
		h.Href(href),
		h.Class("icon-btn inline-flex h-8 w-8 items-center justify-center rounded-full border"),
		g.Attr("aria-label", label),
		g.Attr("data-border", "rounded"),
		Icon(icon),
	)
}
