// Package store provides flat key-value persistence for liked recipes.
package store

import (
	"context"
	"errors"

	"github.com/guttosm/recipe-service/internal/metrics"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// likesKeyPrefix namespaces the likes entry of each client.
const likesKeyPrefix = "likes:"

// KV is a flat key-value store holding opaque JSON documents.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// LikesKey returns the key under which a client's likes are stored.
func LikesKey(clientID string) string {
	return likesKeyPrefix + clientID
}

// record publishes the outcome of a store operation.
func record(backend, operation string, err error) {
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.RecordKVOperation(backend, operation, result)
}
