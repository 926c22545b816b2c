package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	url, err := store.Save("recibo.jpg", "image/jpeg", strings.NewReader("fake jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/recibo.jpg", url)

	data, err := os.ReadFile(filepath.Join(store.Dir, "recibo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "fake jpeg bytes", string(data))

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(store.Dir, "recibo.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreStripsPathTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save("../../etc/passwd", "application/pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/passwd", url)

	_, err = os.Stat(filepath.Join(store.Dir, "passwd"))
	assert.NoError(t, err)
}

func TestLocalStoreRemoveMissingFileErrors(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, store.Remove("/uploads/nope.png"))
}
