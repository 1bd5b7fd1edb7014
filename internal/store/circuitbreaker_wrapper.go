package store

import (
	"context"
	"errors"

	"github.com/guttosm/recipe-service/internal/circuitbreaker"
)

// KVWithCircuitBreaker wraps a KV with circuit breaker protection.
type KVWithCircuitBreaker struct {
	kv             KV
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewKVWithCircuitBreaker creates a new KV wrapper with circuit breaker.
func NewKVWithCircuitBreaker(kv KV, cb *circuitbreaker.CircuitBreaker) *KVWithCircuitBreaker {
	return &KVWithCircuitBreaker{
		kv:             kv,
		circuitBreaker: cb,
	}
}

// IsFailure reports whether err should count against a store breaker.
// A missing key is a normal answer, not a failure.
func IsFailure(err error) bool {
	return !errors.Is(err, ErrNotFound) && !errors.Is(err, context.Canceled)
}

// Get returns the value with circuit breaker protection.
func (s *KVWithCircuitBreaker) Get(ctx context.Context, key string) ([]byte, error) {
	var result []byte
	err := s.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = s.kv.Get(ctx, key)
		return cbErr
	})
	return result, err
}

// Put stores the value with circuit breaker protection.
func (s *KVWithCircuitBreaker) Put(ctx context.Context, key string, value []byte) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.kv.Put(ctx, key, value)
	})
}

// Delete removes the key with circuit breaker protection.
func (s *KVWithCircuitBreaker) Delete(ctx context.Context, key string) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.kv.Delete(ctx, key)
	})
}

// Ping checks the underlying store directly so readiness reflects the
// backend even while the circuit is open.
func (s *KVWithCircuitBreaker) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

// Close closes the underlying store.
func (s *KVWithCircuitBreaker) Close(ctx context.Context) error {
	return s.kv.Close(ctx)
}
