package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/vep/internal/seo"
	"github.com/nfrund/vep/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Page is what the Base layout needs besides the body.
type Page struct {
	Meta     seo.Metadata
	Language string
	Flashes  view.FlashData
}

// Base wraps body in the HTML5 document: head metadata, stylesheet, htmx and
// the flash message area.
func Base(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := append(seo.HeadNodes(p.Meta),
			h.Link(h.Rel("icon"), h.Href("/static/images/vep-logo.svg")),
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/about.css")),
			h.Script(h.Src(htmxSrc), h.Defer()),
		)

		doc := c.HTML5(c.HTML5Props{
			Title:       CalculateTitle(p.Meta.Title),
			Description: p.Meta.Description,
			Language:    NormalizeLanguage(p.Language),
			Head:        head,
			Body: []g.Node{
				hx.Boost("true"),
				h.Class("min-h-screen bg-white text-gray-900"),
				flashMessages(p.Flashes),
				h.Main(
					h.Class("container mx-auto px-4 py-12"),
					view.AdaptTemplToGomponentCtx(ctx, body),
				),
			},
		})
		return doc.Render(w)
	})
}

func flashMessages(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return h.Div(
		h.ID("flash-messages"),
		h.Class("flash-messages"),
		g.Map(f.Success, func(msg string) g.Node {
			return h.Div(h.Class("flash flash-success"), g.Attr("role", "status"), g.Text(msg))
		}),
		g.Map(f.Error, func(msg string) g.Node {
			return h.Div(h.Class("flash flash-error"), g.Attr("role", "alert"), g.Text(msg))
		}),
	)
}
