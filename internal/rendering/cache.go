package rendering

import (
	"context"
	"sync"
)

// PageCache memoizes rendered pages until Invalidate is called. Pages here
// are a pure function of the loaded content, so entries never expire on
// their own.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string][]byte
	gen   uint64
}

// NewPageCache creates an empty cache.
func NewPageCache() *PageCache {
	return &PageCache{pages: make(map[string][]byte)}
}

// GetOrRender returns the cached page for key, rendering and storing it on a miss.
// A render that races with Invalidate is returned but not stored.
func (pc *PageCache) GetOrRender(ctx context.Context, key string, render func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	pc.mu.RLock()
	page, ok := pc.pages[key]
	gen := pc.gen
	pc.mu.RUnlock()
	if ok {
		return page, nil
	}

	page, err := render(ctx)
	if err != nil {
		return nil, err
	}

	pc.mu.Lock()
	if pc.gen == gen {
		pc.pages[key] = page
	}
	pc.mu.Unlock()
	return page, nil
}

// Invalidate drops every cached page.
func (pc *PageCache) Invalidate() {
	pc.mu.Lock()
	pc.pages = make(map[string][]byte)
	pc.gen++
	pc.mu.Unlock()
}

// Len reports the number of cached pages.
func (pc *PageCache) Len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.pages)
}
