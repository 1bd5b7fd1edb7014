package session

import (
	"context"
	"fmt"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// LikesLoader reads the persisted likes of a client.
type LikesLoader interface {
	Load(ctx context.Context, clientID string) (*model.Likes, error)
}

// Manager hands out sessions, restoring persisted likes for new ones.
type Manager struct {
	store    *Store
	likes    LikesLoader
	creating singleflight.Group
}

// NewManager creates a manager over store.
func NewManager(store *Store, likes LikesLoader) *Manager {
	return &Manager{store: store, likes: likes}
}

// Acquire returns the live session for clientID or builds a new one.
func (m *Manager) Acquire(ctx context.Context, clientID string) (*Session, error) {
	if sess, ok := m.store.Get(clientID); ok {
		return sess, nil
	}

	// Concurrent first requests for one client share a single likes load.
	// Different clients never wait on each other.
	v, err, _ := m.creating.Do(clientID, func() (interface{}, error) {
		if sess, ok := m.store.Get(clientID); ok {
			return sess, nil
		}

		likes, err := m.likes.Load(ctx, clientID)
		if err != nil {
			return nil, fmt.Errorf("failed to restore likes: %w", err)
		}

		sess := New(clientID, likes)
		m.store.Put(sess)

		log.Debug().
			Str("client_id", clientID).
			Int("likes", len(sess.Likes())).
			Msg("session created")

		return sess, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// Forget drops the live session for clientID. Persisted likes are kept.
func (m *Manager) Forget(clientID string) {
	m.store.Delete(clientID)
}

// Stats returns the session store counters.
func (m *Manager) Stats() Stats {
	return m.store.Stats()
}
