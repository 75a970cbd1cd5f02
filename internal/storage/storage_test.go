package storage

import (
	"bytes"
	"context"
	"io"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Unit(t *testing.T) {
	// 1. Setup: Create an in-memory filesystem for the test.
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	// Test data
	filePath := "about/index.html"
	fileContent := "<!doctype html><html></html>"

	// 2. Test Save
	t.Run("Save", func(t *testing.T) {
		bytesWritten, err := store.Save(ctx, filePath, bytes.NewReader([]byte(fileContent)))

		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), bytesWritten)

		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.True(t, exists, "file should exist after saving")

		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	// 3. Test Open
	t.Run("Open", func(t *testing.T) {
		file, err := store.Open(ctx, filePath)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	// 4. Test Delete
	t.Run("Delete", func(t *testing.T) {
		err := store.Delete(ctx, filePath)
		require.NoError(t, err)

		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.False(t, exists, "file should not exist after deleting")
	})

	// 5. Test edge cases
	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "path/to/nothing.txt")
		assert.Error(t, err, "opening a non-existent file should return an error")
	})

	t.Run("Save with cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Save(cancelled, "late.txt", bytes.NewReader(nil))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCopyFS(t *testing.T) {
	src := fstest.MapFS{
		"static/css/about.css":          {Data: []byte("body{}")},
		"static/images/vep-logo.svg":    {Data: []byte("<svg/>")},
		"static/images/nested/mark.svg": {Data: []byte("<svg/>")},
	}
	memFs := afero.NewMemMapFs()

	n, err := CopyFS(context.Background(), NewAferoStore(memFs), src, "static", "out")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := afero.ReadFile(memFs, "out/static/css/about.css")
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))

	exists, err := afero.Exists(memFs, "out/static/images/nested/mark.svg")
	require.NoError(t, err)
	assert.True(t, exists)
}
