package storage

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store defines the interface for a file storage backend that static exports are written to.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}

// AferoStore is a Store rooted in an afero filesystem. Use afero.NewOsFs for
// disk output and afero.NewMemMapFs in tests.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// Save writes the content of the reader to path, creating parent directories as needed.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, reader)
}

// Open opens a file for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

// Delete removes a file.
func (s *AferoStore) Delete(ctx context.Context, path string) error {
	return s.fs.Remove(path)
}

// CopyFS copies every regular file under root in src into dst, keeping
// relative paths below prefix. It returns the number of files copied.
func CopyFS(ctx context.Context, dst Store, src fs.FS, root, prefix string) (int, error) {
	copied := 0
	err := fs.WalkDir(src, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := src.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := dst.Save(ctx, path.Join(prefix, p), f); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}
