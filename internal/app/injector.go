package app

import (
	"context"
	"fmt"

	"github.com/nfrund/vep/internal/config"
	"github.com/nfrund/vep/internal/content"
	"github.com/nfrund/vep/internal/pubsub"
	"github.com/nfrund/vep/internal/rendering"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// NewInjector wires the core services. Services are built lazily on first
// Resolve. fs is where the content file is read from.
func NewInjector(cfg config.Provider, fs afero.Fs) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, fs)

	do.Provide(injector, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(), nil
	})
	do.Provide(injector, func(i do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(injector, func(i do.Injector) (*rendering.PageCache, error) {
		return rendering.NewPageCache(), nil
	})
	do.Provide(injector, func(i do.Injector) (*content.Store, error) {
		cfg := do.MustInvoke[config.Provider](i)
		bus := do.MustInvoke[*pubsub.WatermillBridge](i)
		return content.NewStore(do.MustInvoke[afero.Fs](i), cfg.GetContentPath(), bus)
	})

	return injector
}

// Resolve builds the module dependencies from the injector.
func Resolve(injector do.Injector) (Dependencies, error) {
	cfg, err := do.Invoke[config.Provider](injector)
	if err != nil {
		return Dependencies{}, err
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](injector)
	if err != nil {
		return Dependencies{}, err
	}
	renderer, err := do.Invoke[rendering.Renderer](injector)
	if err != nil {
		return Dependencies{}, err
	}
	cache, err := do.Invoke[*rendering.PageCache](injector)
	if err != nil {
		return Dependencies{}, err
	}
	store, err := do.Invoke[*content.Store](injector)
	if err != nil {
		return Dependencies{}, fmt.Errorf("load content: %w", err)
	}

	return Dependencies{
		Config:     cfg,
		Publisher:  bus,
		Subscriber: bus,
		Renderer:   renderer,
		Content:    store,
		Cache:      cache,
	}, nil
}

// Shutdown closes the services held by the injector.
func Shutdown(ctx context.Context, injector do.Injector) error {
	if bus, err := do.Invoke[*pubsub.WatermillBridge](injector); err == nil {
		if err := bus.Close(); err != nil {
			return err
		}
	}
	if report := injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		return report
	}
	return nil
}
