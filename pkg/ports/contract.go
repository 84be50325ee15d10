package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/knobs/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunValueStoreContract runs a suite of tests to verify that a ValueStore
// implementation adheres to the defined interface contract.
func RunValueStoreContract(t *testing.T, store ValueStore) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := domain.NewSnapshot()
		snap.Bools["verbose"] = true
		snap.Numerics["threshold"] = 0.8
		snap.Strings["mode"] = "accurate"

		err := store.Save(ctx, key, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, true, loaded.Bools["verbose"])
		assert.Equal(t, 0.8, loaded.Numerics["threshold"])
		assert.Equal(t, "accurate", loaded.Strings["mode"])
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		first := domain.NewSnapshot()
		first.Numerics["threshold"] = 0.1
		require.NoError(t, store.Save(ctx, key, first))

		second := domain.NewSnapshot()
		second.Numerics["threshold"] = 0.2
		require.NoError(t, store.Save(ctx, key, second))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 0.2, loaded.Numerics["threshold"])
	})

	t.Run("Load Is Isolated", func(t *testing.T) {
		snap := domain.NewSnapshot()
		snap.Strings["mode"] = "fast"
		require.NoError(t, store.Save(ctx, key, snap))

		snap.Strings["mode"] = "mutated"
		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "fast", loaded.Strings["mode"])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, key, domain.NewSnapshot()))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")

		assert.NoError(t, store.Delete(ctx, key), "Deleting a missing key is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := key + "-1"
		id2 := key + "-2"
		_ = store.Save(ctx, id1, domain.NewSnapshot())
		_ = store.Save(ctx, id2, domain.NewSnapshot())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		keys, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, id1)
		assert.Contains(t, keys, id2)
	})
}
