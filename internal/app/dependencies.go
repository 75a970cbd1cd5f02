package app

import (
	"github.com/nfrund/vep/internal/config"
	"github.com/nfrund/vep/internal/content"
	"github.com/nfrund/vep/internal/modules/about"
	"github.com/nfrund/vep/internal/pubsub"
	"github.com/nfrund/vep/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// It is resolved from the injector and passed to NewModules.
type Dependencies struct {
	Config     config.Provider
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Content    *content.Store
	Cache      *rendering.PageCache
}

// aboutDeps creates the dependency struct for the about module.
func aboutDeps(deps Dependencies) about.Dependencies {
	return about.Dependencies{
		Content:    deps.Content,
		Cache:      deps.Cache,
		Renderer:   deps.Renderer,
		Subscriber: deps.Subscriber,
		BaseURL:    deps.Config.GetAppBaseURL(),
	}
}
