package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/metrics"
	"github.com/guttosm/recipe-service/internal/session"
	"github.com/guttosm/recipe-service/internal/store"
	"github.com/rs/zerolog/log"
)

// ToggleResult is the outcome of a like toggle.
type ToggleResult struct {
	Liked bool
	Like  model.Like
	Count int
}

// LikesService manages liked recipes. Every change rewrites the client's
// whole collection in the key-value store before it becomes visible.
type LikesService interface {
	// Load reads the persisted likes of a client. A client without saved
	// likes gets an empty collection.
	Load(ctx context.Context, clientID string) (*model.Likes, error)
	// Toggle likes or unlikes the session's current recipe.
	Toggle(ctx context.Context, sess *session.Session) (ToggleResult, error)
	// Delete unlikes a recipe by id.
	Delete(ctx context.Context, sess *session.Session, id string) error
}

// LikesServiceImpl implements LikesService.
type LikesServiceImpl struct {
	kv store.KV
}

// NewLikesService creates a new likes service.
func NewLikesService(kv store.KV) LikesService {
	return &LikesServiceImpl{kv: kv}
}

// Load reads the likes stored for clientID.
func (s *LikesServiceImpl) Load(ctx context.Context, clientID string) (*model.Likes, error) {
	data, err := s.kv.Get(ctx, store.LikesKey(clientID))
	if errors.Is(err, store.ErrNotFound) {
		return model.NewLikes(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read likes: %w", ErrStorage, err)
	}

	var items []model.Like
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt entry is replaced on the next write.
		log.Warn().
			Err(err).
			Str("client_id", clientID).
			Msg("ignoring unreadable likes")
		return model.NewLikes(nil), nil
	}
	return model.NewLikes(items), nil
}

// Toggle flips the liked state of the current recipe.
func (s *LikesServiceImpl) Toggle(ctx context.Context, sess *session.Session) (ToggleResult, error) {
	recipe, err := sess.Recipe()
	if err != nil {
		return ToggleResult{}, err
	}

	var result ToggleResult
	err = sess.UpdateLikes(func(l *model.Likes) error {
		like := model.LikeFromRecipe(recipe)
		if l.IsLiked(recipe.ID) {
			if err := l.Delete(recipe.ID); err != nil {
				return err
			}
			result = ToggleResult{Liked: false, Like: like}
		} else {
			l.Add(like)
			result = ToggleResult{Liked: true, Like: like}
		}
		result.Count = l.Count()
		return s.save(ctx, sess.ClientID(), l)
	})
	if err != nil {
		return ToggleResult{}, err
	}

	if result.Liked {
		metrics.RecordLike("like")
	} else {
		metrics.RecordLike("unlike")
	}
	return result, nil
}

// Delete unlikes the recipe with id.
func (s *LikesServiceImpl) Delete(ctx context.Context, sess *session.Session, id string) error {
	err := sess.UpdateLikes(func(l *model.Likes) error {
		if err := l.Delete(id); err != nil {
			return err
		}
		return s.save(ctx, sess.ClientID(), l)
	})
	if err != nil {
		return err
	}
	metrics.RecordLike("unlike")
	return nil
}

func (s *LikesServiceImpl) save(ctx context.Context, clientID string, likes *model.Likes) error {
	data, err := json.Marshal(likes.All())
	if err != nil {
		return fmt.Errorf("failed to encode likes: %w", err)
	}
	if err := s.kv.Put(ctx, store.LikesKey(clientID), data); err != nil {
		return fmt.Errorf("%w: failed to persist likes: %w", ErrStorage, err)
	}
	return nil
}
