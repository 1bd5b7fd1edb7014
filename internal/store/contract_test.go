package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runKVContract exercises the behavior every KV backend shares.
func runKVContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing key returns ErrNotFound", func(t *testing.T) {
		_, err := kv.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, LikesKey("c1"), []byte(`[{"id":"r1"}]`)))

		got, err := kv.Get(ctx, LikesKey("c1"))
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"r1"}]`, string(got))
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, "k", []byte(`{"v":1}`)))
		require.NoError(t, kv.Put(ctx, "k", []byte(`{"v":2}`)))

		got, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.JSONEq(t, `{"v":2}`, string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, LikesKey("a"), []byte(`["a"]`)))
		require.NoError(t, kv.Put(ctx, LikesKey("b"), []byte(`["b"]`)))

		got, err := kv.Get(ctx, LikesKey("a"))
		require.NoError(t, err)
		assert.JSONEq(t, `["a"]`, string(got))
	})

	t.Run("delete removes key", func(t *testing.T) {
		require.NoError(t, kv.Put(ctx, "gone", []byte(`true`)))
		require.NoError(t, kv.Delete(ctx, "gone"))

		_, err := kv.Get(ctx, "gone")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing key is not an error", func(t *testing.T) {
		assert.NoError(t, kv.Delete(ctx, "never-there"))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, kv.Ping(ctx))
	})
}
