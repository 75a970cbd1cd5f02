package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nfrund/vep/internal/pubsub"
	"github.com/spf13/afero"
)

// Reloaded is published after the store swaps in freshly loaded content.
type Reloaded struct {
	Path       string    `json:"path"`
	ReloadedAt time.Time `json:"reloaded_at"`
}

// ReloadedEvent is the topic every successful Reload publishes on.
var ReloadedEvent = pubsub.NewEvent[Reloaded]("content.reloaded")

const defaultDebounce = 250 * time.Millisecond

// Store serves the current Content and can follow a content file on disk.
// It is safe for concurrent use.
type Store struct {
	fs        afero.Fs
	path      string
	publisher pubsub.Publisher
	debounce  time.Duration
	current   atomic.Pointer[Content]
}

// Option configures a Store.
type Option func(*Store)

// WithDebounce sets how long the watcher waits after the last file event
// before reloading.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// NewStore creates a store backed by the YAML file at path. An empty path
// serves Default() forever. publisher may be nil.
func NewStore(fs afero.Fs, path string, publisher pubsub.Publisher, opts ...Option) (*Store, error) {
	s := &Store{
		fs:        fs,
		path:      path,
		publisher: publisher,
		debounce:  defaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}

	c := Default()
	if path != "" {
		loaded, err := Load(fs, path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	s.current.Store(&c)
	return s, nil
}

// Path returns the backing file, or "" for the built-in content.
func (s *Store) Path() string {
	return s.path
}

// Current returns the content in effect.
func (s *Store) Current() Content {
	return *s.current.Load()
}

// Reload re-reads the content file. On failure the previous content stays
// in effect and the error is returned.
func (s *Store) Reload(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	c, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.current.Store(&c)
	slog.Info("Content reloaded", "path", s.path)

	if s.publisher == nil {
		return nil
	}
	evt := Reloaded{Path: s.path, ReloadedAt: time.Now().UTC()}
	if err := pubsub.Publish(ctx, s.publisher, ReloadedEvent, evt); err != nil {
		return fmt.Errorf("publish %s: %w", ReloadedEvent.Name(), err)
	}
	return nil
}

// Watch reloads the content whenever its file changes. It blocks until ctx
// is cancelled. The directory is watched rather than the file so that
// editors which save by rename are picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	slog.Debug("Watching content file", "path", s.path)

	target := filepath.Base(s.path)
	// Armed only by file events.
	timer := time.NewTimer(s.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Content watcher stopped", "path", s.path)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				slog.Debug("Content file event", "event", event.Op.String(), "path", event.Name)
				timer.Reset(s.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Content watcher error", "error", err)

		case <-timer.C:
			if err := s.Reload(ctx); err != nil {
				slog.Error("Failed to reload content, keeping previous version", "path", s.path, "error", err)
			}
		}
	}
}
