package registry

import (
	"testing"

	"github.com/nfrund/vep/internal/config"
	"github.com/nfrund/vep/internal/content"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_SetGet(t *testing.T) {
	cfg := &config.Config{AppBaseURL: "vep.example.com"}
	reg := New(cfg)
	assert.Same(t, cfg, reg.Config())

	_, ok := Get(reg, ContentStoreKey)
	assert.False(t, ok)

	store, err := content.NewStore(afero.NewMemMapFs(), "", nil)
	require.NoError(t, err)
	Set(reg, ContentStoreKey, store)

	got, ok := Get(reg, ContentStoreKey)
	assert.True(t, ok)
	assert.Same(t, store, got)
	assert.Same(t, store, MustGet(reg, ContentStoreKey))
}

func TestRegistry_TypeMismatch(t *testing.T) {
	reg := New(nil)
	Set(reg, Key[string]("shared.name"), "vep")

	_, ok := Get(reg, Key[int]("shared.name"))
	assert.False(t, ok)
}

func TestRegistry_MustGetPanics(t *testing.T) {
	reg := New(nil)
	assert.Panics(t, func() { MustGet(reg, ContentStoreKey) })
}
