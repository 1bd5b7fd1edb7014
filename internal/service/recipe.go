package service

import (
	"context"
	"fmt"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/forkify"
	"github.com/guttosm/recipe-service/internal/metrics"
	"github.com/guttosm/recipe-service/internal/session"
	"github.com/rs/zerolog/log"
)

// RecipeService loads recipes and manages the current recipe of a session.
type RecipeService interface {
	// Load fetches a recipe and parses its ingredients.
	Load(ctx context.Context, id string) (*model.Recipe, error)
	// Show loads a recipe and makes it the session's current recipe.
	Show(ctx context.Context, sess *session.Session, id string) (*model.Recipe, error)
	// Current returns the session's current recipe.
	Current(sess *session.Session) (*model.Recipe, error)
	// UpdateServings steps the current recipe's servings up or down.
	UpdateServings(sess *session.Session, direction model.ServingsDirection) (*model.Recipe, error)
	// SetServings rescales the current recipe to an explicit serving count.
	SetServings(sess *session.Session, servings int) (*model.Recipe, error)
}

// RecipeServiceImpl implements RecipeService.
type RecipeServiceImpl struct {
	source forkify.Source
	parser IngredientParser
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(source forkify.Source, parser IngredientParser) RecipeService {
	if parser == nil {
		parser = NewIngredientParser()
	}
	return &RecipeServiceImpl{
		source: source,
		parser: parser,
	}
}

// Load fetches the raw recipe, parses every ingredient line once and derives
// the estimated time and default servings.
func (s *RecipeServiceImpl) Load(ctx context.Context, id string) (*model.Recipe, error) {
	if id == "" {
		return nil, ErrEmptyRecipeID
	}

	raw, err := s.source.GetRecipe(ctx, id)
	if err != nil {
		log.Warn().
			Err(err).
			Str("recipe_id", id).
			Msg("recipe fetch failed")
		return nil, fmt.Errorf("failed to load recipe %s: %w", id, err)
	}

	ingredients := s.parser.ParseAll(raw.Ingredients)
	return model.NewRecipe(raw.ID, raw.Title, raw.Publisher, raw.SourceURL, raw.ImageURL, ingredients), nil
}

// Show loads id and commits it to the session unless a newer load started
// while this one was in flight.
func (s *RecipeServiceImpl) Show(ctx context.Context, sess *session.Session, id string) (*model.Recipe, error) {
	gen := sess.BeginRecipe()

	recipe, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := sess.CommitRecipe(gen, recipe); err != nil {
		log.Info().
			Str("client_id", sess.ClientID()).
			Str("recipe_id", id).
			Uint64("generation", gen).
			Msg("discarding superseded recipe")
		return nil, err
	}
	return recipe, nil
}

// Current returns the session's current recipe.
func (s *RecipeServiceImpl) Current(sess *session.Session) (*model.Recipe, error) {
	return sess.Recipe()
}

// UpdateServings steps the current recipe's servings.
func (s *RecipeServiceImpl) UpdateServings(sess *session.Session, direction model.ServingsDirection) (*model.Recipe, error) {
	recipe, err := sess.UpdateRecipe(func(r *model.Recipe) error {
		return r.UpdateServings(direction)
	})
	metrics.RecordServingsUpdate("step", resultLabel(err))
	return recipe, err
}

// SetServings rescales the current recipe to servings.
func (s *RecipeServiceImpl) SetServings(sess *session.Session, servings int) (*model.Recipe, error) {
	recipe, err := sess.UpdateRecipe(func(r *model.Recipe) error {
		return r.SetServings(servings)
	})
	metrics.RecordServingsUpdate("set", resultLabel(err))
	return recipe, err
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
