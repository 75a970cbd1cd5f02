package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// --- GOMPONENTS -> TEMPL ---

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy the templ.Component interface,
// so gomponents page content can be handed to a templ layout.
type GomponentToTemplAdapter struct {
	Node g.Node
}

// Render implements templ.Component. The context is not needed by gomponents.
func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	if a.Node == nil {
		return nil
	}
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents Node into a templ.Component.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// --- TEMPL -> GOMPONENTS ---

// TemplToGomponentAdapter wraps a templ.Component so it can sit inside a gomponents tree.
// gomponents' Render carries no context, so the adapter holds the one to render with.
type TemplToGomponentAdapter struct {
	Ctx       context.Context
	Component templ.Component
}

// Render implements gomponents.Node.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents Node rendered
// with context.Background().
func AdaptTemplToGomponent(component templ.Component) g.Node {
	return &TemplToGomponentAdapter{Component: component}
}

// AdaptTemplToGomponentCtx is AdaptTemplToGomponent for callers that have a
// request context to pass through.
func AdaptTemplToGomponentCtx(ctx context.Context, component templ.Component) g.Node {
	return &TemplToGomponentAdapter{Ctx: ctx, Component: component}
}
