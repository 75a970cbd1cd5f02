package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/vep/internal/middleware"
	"github.com/nfrund/vep/internal/rendering"
	g "maragu.dev/gomponents"
)

const (
	ogWidth       = 1200
	ogHeight      = 630
	ogLineRunes   = 26
	ogMaxLines    = 4
	ogLineHeight  = 84
	ogCacheHeader = "public, max-age=86400"
	mimeSVG       = "image/svg+xml"
)

// OGImageHandler renders the social preview image referenced by the page metadata.
type OGImageHandler struct {
	content  ContentSource
	renderer rendering.Renderer
}

// NewOGImageHandler creates a new OGImageHandler.
func NewOGImageHandler(src ContentSource, renderer rendering.Renderer) *OGImageHandler {
	return &OGImageHandler{content: src, renderer: renderer}
}

// OGImageGet renders a 1200x630 SVG card showing the requested title.
func (h *OGImageHandler) OGImageGet(c echo.Context) error {
	var req OGImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_request", Message: "invalid query"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid_title", Message: "title must be at most 200 characters"})
	}

	current := h.content.Current()
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = current.Organization.Name
	}

	body, err := h.renderer.RenderComponent(c.Request().Context(), OGImage(title, current.Organization.Name))
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to render preview image", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render image").SetInternal(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, ogCacheHeader)
	return c.Blob(http.StatusOK, mimeSVG, body)
}

// OGImage builds the SVG document for a preview card.
func OGImage(title, footer string) g.Node {
	lines := wrapTitle(title, ogLineRunes, ogMaxLines)
	top := (ogHeight - len(lines)*ogLineHeight) / 2

	tspans := make([]g.Node, 0, len(lines))
	for i, line := range lines {
		tspans = append(tspans, g.El("tspan",
			g.Attr("x", "80"),
			g.Attr("y", strconv.Itoa(top+(i+1)*ogLineHeight-20)),
			g.Text(line),
		))
	}

	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", strconv.Itoa(ogWidth)),
		g.Attr("height", strconv.Itoa(ogHeight)),
		g.Attr("viewBox", "0 0 "+strconv.Itoa(ogWidth)+" "+strconv.Itoa(ogHeight)),
		g.El("rect", g.Attr("width", "100%"), g.Attr("height", "100%"), g.Attr("fill", "#0b1120")),
		g.El("rect", g.Attr("x", "0"), g.Attr("y", "0"), g.Attr("width", "16"), g.Attr("height", "100%"), g.Attr("fill", "#6366f1")),
		g.El("text",
			g.Attr("font-family", "Inter, Helvetica, Arial, sans-serif"),
			g.Attr("font-size", "68"),
			g.Attr("font-weight", "700"),
			g.Attr("fill", "#f8fafc"),
			g.Group(tspans),
		),
		g.If(footer != "", g.El("text",
			g.Attr("x", "80"),
			g.Attr("y", strconv.Itoa(ogHeight-60)),
			g.Attr("font-family", "Inter, Helvetica, Arial, sans-serif"),
			g.Attr("font-size", "30"),
			g.Attr("fill", "#94a3b8"),
			g.Text(footer),
		)),
	)
}

// wrapTitle splits title into at most maxLines lines of about width runes,
// breaking on spaces. Words longer than width are split. A title that does not
// fit ends with an ellipsis.
func wrapTitle(title string, width, maxLines int) []string {
	var lines []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
	}

	for _, word := range strings.Fields(title) {
		for utf8.RuneCountInString(word) > width {
			flush()
			r := []rune(word)
			lines = append(lines, string(r[:width]))
			word = string(r[width:])
		}
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(word) > width {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	flush()

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := []rune(lines[maxLines-1])
		if len(last) >= width {
			last = last[:width-1]
		}
		lines[maxLines-1] = strings.TrimRight(string(last), " ") + "…"
	}
	return lines
}
