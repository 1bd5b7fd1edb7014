//go:build integration

package circuitbreaker_test

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/store"
	"github.com/guttosm/recipe-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreakerWithMongoDB_Integration(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)

	kv, err := store.NewMongoStore(mongoContainer.URI, "test_recipe_service")
	require.NoError(t, err)
	defer func() {
		_ = kv.Close(ctx)
	}()

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             "test-likes-store",
		IsFailure:        store.IsFailure,
	})
	guarded := store.NewKVWithCircuitBreaker(kv, cb)

	t.Run("healthy store keeps the circuit closed", func(t *testing.T) {
		require.NoError(t, guarded.Put(ctx, "likes:c1", []byte(`[]`)))
		_, err := guarded.Get(ctx, "likes:missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	})

	t.Run("stopped store opens the circuit", func(t *testing.T) {
		require.NoError(t, mongoContainer.Cleanup(ctx))

		opCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		for i := 0; i < 2; i++ {
			_, err := guarded.Get(opCtx, "likes:c1")
			require.Error(t, err)
		}

		assert.Equal(t, circuitbreaker.StateOpen, cb.State())
		_, err := guarded.Get(ctx, "likes:c1")
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	})
}
