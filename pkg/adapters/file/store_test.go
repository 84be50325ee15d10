package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/knobs/pkg/adapters/file"
	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunValueStoreContract(t, store)
}

func TestFileStore_DefaultPath(t *testing.T) {
	store := file.New("")
	assert.Equal(t, filepath.Join(".knobs", "snapshots"), store.BasePath)
}

func TestFileStore_RejectsUnsafeKeys(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"", "../escape", `a\b`, ".."} {
		assert.Error(t, store.Save(ctx, key, domain.NewSnapshot()), key)
		_, err := store.Load(ctx, key)
		assert.Error(t, err, key)
	}
}

func TestFileStore_ListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "prod", domain.NewSnapshot()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prod-123.tmp"), []byte("{}"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0755))

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"prod"}, keys)
}

func TestFileStore_ListMissingDirectory(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "absent"))
	keys, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFileStore_ListKeepsTmpPrefixedKeys(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	snap := domain.NewSnapshot()
	snap.Strings["mode"] = "accurate"
	require.NoError(t, store.Save(ctx, "tmp-staging", snap))

	loaded, err := store.Load(ctx, "tmp-staging")
	require.NoError(t, err)
	assert.Equal(t, "accurate", loaded.Strings["mode"])

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tmp-staging"}, keys)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	require.NoError(t, store.Save(context.Background(), "prod", domain.NewSnapshot()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prod.json", entries[0].Name())
}
