package components

import (
	g "maragu.dev/gomponents"
)

// iconPaths holds 24x24 stroke outlines keyed by icon name.
var iconPaths = map[string][]string{
	"globe": {
		"M12 2a10 10 0 1 0 0 20a10 10 0 1 0 0-20z",
		"M2 12h20",
		"M12 2a15.3 15.3 0 0 1 4 10a15.3 15.3 0 0 1-4 10a15.3 15.3 0 0 1-4-10a15.3 15.3 0 0 1 4-10z",
	},
	"calendar": {
		"M5 4h14a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z",
		"M16 2v4", "M8 2v4", "M3 10h18",
	},
	"chevronRight": {"M9 18l6-6-6-6"},
	"github": {
		"M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.4 5.4 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4",
		"M9 18c-4.51 2-5-2-7-2",
	},
	"linkedin": {
		"M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-4 0v7h-4v-7a6 6 0 0 1 6-6z",
		"M2 9h4v12H2z",
		"M4 2a2 2 0 1 0 0 4a2 2 0 1 0 0-4z",
	},
	"x": {"M4 4l16 16", "M20 4L4 20"},
	"email": {
		"M4 4h16a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z",
		"M22 6l-10 7L2 6",
	},
}

// HasIcon reports whether name is part of the icon set.
func HasIcon(name string) bool {
	_, ok := iconPaths[name]
	return ok
}

// Icon renders the named glyph as inline SVG. Unknown names render nothing.
func Icon(name string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}

	children := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("width", "20"),
		g.Attr("height", "20"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("class", "icon icon-"+name),
	}
	for _, d := range paths {
		children = append(children, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg", children...)
}
