package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndRemove(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root)

	path, err := store.Save(context.Background(), "pets", "photo.png", strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "pets/photo.png", path)

	content, err := os.ReadFile(filepath.Join(root, "pets", "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake-image-bytes", string(content))

	require.NoError(t, store.Remove(context.Background(), path))
	_, err = os.Stat(filepath.Join(root, "pets", "photo.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_RemoveMissingFileIsNoError(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	assert.NoError(t, store.Remove(context.Background(), "pets/missing.png"))
}

func TestLocalStorage_SaveCreatesNestedDirectories(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root)

	path, err := store.Save(context.Background(), "pedido_especializado/recetas", "receta.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pedido_especializado/recetas/receta.pdf", path)
}
