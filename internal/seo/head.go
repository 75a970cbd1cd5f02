package seo

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HeadNodes renders the canonical link and the Open Graph and Twitter tags.
// The <title> and description meta are written by the document layout.
func HeadNodes(m Metadata) []g.Node {
	nodes := []g.Node{
		h.Link(h.Rel("canonical"), h.Href(m.Canonical)),
		property("og:title", m.OpenGraph.Title),
		property("og:description", m.OpenGraph.Description),
		property("og:type", m.OpenGraph.Type),
		property("og:url", m.OpenGraph.URL),
	}
	for _, img := range m.OpenGraph.Images {
		nodes = append(nodes,
			property("og:image", img.URL),
			property("og:image:alt", img.Alt),
		)
	}

	nodes = append(nodes,
		named("twitter:card", m.Twitter.Card),
		named("twitter:title", m.Twitter.Title),
		named("twitter:description", m.Twitter.Description),
	)
	for _, img := range m.Twitter.Images {
		nodes = append(nodes, named("twitter:image", img))
	}
	return nodes
}

func property(key, value string) g.Node {
	return h.Meta(g.Attr("property", key), h.Content(value))
}

func named(key, value string) g.Node {
	return h.Meta(h.Name(key), h.Content(value))
}
