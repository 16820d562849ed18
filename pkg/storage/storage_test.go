package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageArchive(t *testing.T, content string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "build-abc123.zip")
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))
	return src
}

func TestSaveMovesArchiveIntoSlot(t *testing.T) {
	store := NewStore(t.TempDir())
	src := stageArchive(t, "zip-bytes")

	dst, err := store.Save("user-1", "proj-1", src)
	require.NoError(t, err)
	assert.Equal(t, ArchiveName, filepath.Base(dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "zip-bytes", string(data))

	// Source is consumed.
	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveOverwritesPreviousBuild(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Save("user-1", "proj-1", stageArchive(t, "first"))
	require.NoError(t, err)
	dst, err := store.Save("user-1", "proj-1", stageArchive(t, "second"))
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestPath(t *testing.T) {
	store := NewStore(t.TempDir())

	_, ok := store.Path("user-1", "proj-1")
	assert.False(t, ok)

	saved, err := store.Save("user-1", "proj-1", stageArchive(t, "zip"))
	require.NoError(t, err)

	p, ok := store.Path("user-1", "proj-1")
	assert.True(t, ok)
	assert.Equal(t, saved, p)
}

func TestPathIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "user-1", "proj-1", ArchiveName), 0o755))

	_, ok := store.Path("user-1", "proj-1")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Save("user-1", "proj-1", stageArchive(t, "zip"))
	require.NoError(t, err)

	require.NoError(t, store.Delete("user-1", "proj-1"))
	_, ok := store.Path("user-1", "proj-1")
	assert.False(t, ok)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete("user-1", "proj-1"))
}

func TestUsersAreIsolated(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Save("user-a", "proj-1", stageArchive(t, "a"))
	require.NoError(t, err)
	_, err = store.Save("user-b", "proj-1", stageArchive(t, "b"))
	require.NoError(t, err)

	require.NoError(t, store.Delete("user-a", "proj-1"))

	_, ok := store.Path("user-b", "proj-1")
	assert.True(t, ok)
}
