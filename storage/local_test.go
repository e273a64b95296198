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

func TestLocalStoreAndDelete(t *testing.T) {
	store := NewLocal(t.TempDir())
	ctx := context.Background()

	path, err := store.Store(ctx, ".png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "projects/"), "path %q should live under projects/", path)
	assert.True(t, strings.HasSuffix(path, ".png"))

	full := filepath.Join(store.baseDir, filepath.FromSlash(path))
	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, store.Delete(ctx, path))
	_, err = os.Stat(full)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalDeleteMissingFileIsNotAnError(t *testing.T) {
	store := NewLocal(t.TempDir())
	assert.NoError(t, store.Delete(context.Background(), "projects/never-existed.png"))
}

func TestLocalDeleteRejectsEscapingPaths(t *testing.T) {
	store := NewLocal(t.TempDir())
	assert.Error(t, store.Delete(context.Background(), "../outside.png"))
	assert.Error(t, store.Delete(context.Background(), "/etc/passwd"))
}

func TestLocalStoreGeneratesUniquePaths(t *testing.T) {
	store := NewLocal(t.TempDir())
	ctx := context.Background()

	first, err := store.Store(ctx, ".jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Store(ctx, ".jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
