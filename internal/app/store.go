// Package app provides likes store initialization.
package app

import (
	"fmt"

	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/store"
	"github.com/rs/zerolog/log"
)

// StoreComponents holds the likes store and its circuit breaker.
type StoreComponents struct {
	Backend        string
	KV             store.KV
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeStore opens the configured likes backend. Remote backends are
// wrapped with a circuit breaker; local ones are returned as is.
func InitializeStore(cfg config.StoreConfig) (*StoreComponents, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = config.StoreFile
	}

	var (
		kv  store.KV
		err error
	)
	switch backend {
	case config.StoreMemory:
		kv = store.NewMemoryStore()
	case config.StoreFile:
		kv = store.NewFileStore(cfg.FilePath)
	case config.StoreMongo:
		kv, err = store.NewMongoStore(cfg.MongoURI, cfg.MongoDatabase)
	case config.StorePostgres:
		kv, err = store.NewPostgresStore(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown likes store backend %q", backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s likes store: %w", backend, err)
	}

	components := &StoreComponents{Backend: backend, KV: kv}
	if backend == config.StoreMongo || backend == config.StorePostgres {
		cb := circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: cfg.CircuitBreakerFailureThreshold,
			SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
			Timeout:          cfg.CircuitBreakerTimeout,
			Name:             backend + "-likes",
			IsFailure:        store.IsFailure,
		})
		components.KV = store.NewKVWithCircuitBreaker(kv, cb)
		components.CircuitBreaker = cb
	}

	log.Info().Str("backend", backend).Msg("Likes store ready")
	return components, nil
}
