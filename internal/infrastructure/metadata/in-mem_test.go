package metadata

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortsync/shortsync/internal/infrastructure/storage"
)

func TestInMemStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewInMemStore(nil)

	val, err := store.Get(ctx, 7, KeyLongURL)
	require.NoError(t, err)
	assert.Empty(t, val, "unset key reads as empty")

	require.NoError(t, store.Set(ctx, 7, KeyLongURL, "https://blog.example.org/hello/"))

	val, err = store.Get(ctx, 7, KeyLongURL)
	require.NoError(t, err)
	assert.Equal(t, "https://blog.example.org/hello/", val)

	// Keys are scoped per post
	val, err = store.Get(ctx, 8, KeyLongURL)
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestInMemStoreSetMany(t *testing.T) {
	ctx := context.Background()
	store := NewInMemStore(nil)

	err := store.SetMany(ctx, 42, map[string]string{
		KeyLongURL:   "https://blog.example.org/hello/",
		KeyShortURL:  "https://s.example/a1",
		KeyShortCode: "a1",
	})
	require.NoError(t, err)

	for key, want := range map[string]string{
		KeyLongURL:   "https://blog.example.org/hello/",
		KeyShortURL:  "https://s.example/a1",
		KeyShortCode: "a1",
	} {
		val, err := store.Get(ctx, 42, key)
		require.NoError(t, err)
		assert.Equal(t, want, val)
	}
}

func TestInMemStoreBackupRestore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "metadata.json")

	backup, err := storage.NewFileStorage(path)
	require.NoError(t, err)

	store := NewInMemStore(backup)
	require.NoError(t, store.Set(ctx, 7, KeyShortCode, "a1"))
	require.NoError(t, store.Backup(ctx))
	require.NoError(t, store.Close(ctx))

	backup2, err := storage.NewFileStorage(path)
	require.NoError(t, err)

	restored := NewInMemStore(backup2)
	require.NoError(t, restored.Restore(ctx))

	val, err := restored.Get(ctx, 7, KeyShortCode)
	require.NoError(t, err)
	assert.Equal(t, "a1", val)
}

func TestInMemStoreRestoreEmptyBackup(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "metadata.json")

	backup, err := storage.NewFileStorage(path)
	require.NoError(t, err)

	store := NewInMemStore(backup)
	require.NoError(t, store.Restore(ctx), "fresh backup file restores to empty")
}
