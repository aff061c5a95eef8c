package localstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/midway"
	"github.com/dmitrymomot/midway/localstore"
)

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	t.Parallel()

	store := localstore.NewMemoryStore()
	ctx := context.Background()

	locals := map[string]any{
		"user": "alice",
		"cart": map[string]any{"items": []any{"a", "b"}},
	}
	require.NoError(t, store.Save(ctx, "req-1", locals))

	loaded, err := store.Load(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded["user"])
	assert.Equal(t, map[string]any{"items": []any{"a", "b"}}, loaded["cart"])

	// Loaded snapshot is a fresh map, not an alias of the saved one.
	loaded["user"] = "mallory"
	again, err := store.Load(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", again["user"])

	require.NoError(t, store.Delete(ctx, "req-1"))
	_, err = store.Load(ctx, "req-1")
	assert.ErrorIs(t, err, localstore.ErrNotFound)
}

func TestMemoryStore_RejectsNonSerializableLocals(t *testing.T) {
	t.Parallel()

	store := localstore.NewMemoryStore()

	err := store.Save(context.Background(), "req-1", map[string]any{
		"callback": func() {},
	})
	require.Error(t, err)

	var serr *midway.SerializationError
	assert.ErrorAs(t, err, &serr)

	// Nothing was persisted for the failed save.
	_, err = store.Load(context.Background(), "req-1")
	assert.ErrorIs(t, err, localstore.ErrNotFound)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	store := localstore.NewMemoryStore(localstore.WithMemoryTTL(10 * time.Millisecond))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "req-1", map[string]any{"a": 1}))

	_, err := store.Load(ctx, "req-1")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = store.Load(ctx, "req-1")
	assert.ErrorIs(t, err, localstore.ErrNotFound)
}

func TestMemoryStore_MissingKey(t *testing.T) {
	t.Parallel()

	store := localstore.NewMemoryStore()

	_, err := store.Load(context.Background(), "absent")
	assert.ErrorIs(t, err, localstore.ErrNotFound)

	assert.NoError(t, store.Delete(context.Background(), "absent"))
}

func TestConnect_Validation(t *testing.T) {
	t.Parallel()

	t.Run("empty_url", func(t *testing.T) {
		t.Parallel()

		_, err := localstore.Connect(context.Background(), localstore.Config{})
		assert.ErrorIs(t, err, localstore.ErrEmptyConnectionURL)
	})

	t.Run("malformed_url", func(t *testing.T) {
		t.Parallel()

		_, err := localstore.Connect(context.Background(), localstore.Config{
			ConnectionURL: "not-a-redis-url",
		})
		assert.ErrorIs(t, err, localstore.ErrConnectionFailed)
	})
}
