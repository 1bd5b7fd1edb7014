// Package session owns the per-client state of the recipe service: the
// current search, the current recipe, the shopping list and the liked recipes.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/metrics"
)

var (
	// ErrStaleResult is returned when a result arrives after a newer request
	// of the same kind was started.
	ErrStaleResult = errors.New("result superseded by a newer request")
	// ErrNoActiveRecipe is returned by recipe operations before any recipe was loaded.
	ErrNoActiveRecipe = errors.New("no recipe loaded")
)

// Session is the state of one client. All methods are safe for concurrent use.
//
// Searches and recipe loads are guarded by generation numbers: Begin* hands
// out a generation, and the matching Commit* only applies the result when no
// newer Begin* happened in between.
type Session struct {
	mu        sync.Mutex
	clientID  string
	createdAt time.Time

	query   string
	results []model.RecipeSummary
	recipe  *model.Recipe
	list    *model.ShoppingList
	likes   *model.Likes

	searchGen uint64
	recipeGen uint64
}

// New creates a session for clientID with previously persisted likes.
func New(clientID string, likes *model.Likes) *Session {
	if likes == nil {
		likes = model.NewLikes(nil)
	}
	return &Session{
		clientID:  clientID,
		createdAt: time.Now(),
		list:      model.NewShoppingList(),
		likes:     likes,
	}
}

// ClientID returns the owning client id.
func (s *Session) ClientID() string {
	return s.clientID
}

// CreatedAt returns when the session was created.
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// BeginSearch starts a search and returns its generation.
func (s *Session) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchGen++
	return s.searchGen
}

// CommitSearch stores the results of the search started with gen.
func (s *Session) CommitSearch(gen uint64, query string, results []model.RecipeSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.searchGen {
		metrics.RecordStaleResult("search")
		return ErrStaleResult
	}
	s.query = query
	s.results = append([]model.RecipeSummary(nil), results...)
	return nil
}

// ResultsPage returns one page of the stored search results.
func (s *Session) ResultsPage(page, perPage int) model.ResultsPage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.Paginate(s.query, s.results, page, perPage)
}

// BeginRecipe starts a recipe load and returns its generation.
func (s *Session) BeginRecipe() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipeGen++
	return s.recipeGen
}

// CommitRecipe makes r the current recipe if the load started with gen is
// still the latest. The previous recipe is discarded.
func (s *Session) CommitRecipe(gen uint64, r *model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.recipeGen {
		metrics.RecordStaleResult("recipe")
		return ErrStaleResult
	}
	s.recipe = r.Clone()
	return nil
}

// Recipe returns a copy of the current recipe.
func (s *Session) Recipe() (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recipe == nil {
		return nil, ErrNoActiveRecipe
	}
	return s.recipe.Clone(), nil
}

// UpdateRecipe applies fn to the current recipe and returns a copy of the
// result. The recipe is left untouched when fn fails.
func (s *Session) UpdateRecipe(fn func(r *model.Recipe) error) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recipe == nil {
		return nil, ErrNoActiveRecipe
	}
	next := s.recipe.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	s.recipe = next
	return next.Clone(), nil
}

// UpdateList applies fn to the shopping list under the session lock.
func (s *Session) UpdateList(fn func(l *model.ShoppingList) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.list)
}

// ListItems returns a copy of the shopping list.
func (s *Session) ListItems() []model.ListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Items()
}

// Likes returns a copy of the liked recipes.
func (s *Session) Likes() []model.Like {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes.All()
}

// IsLiked reports whether the recipe id is liked.
func (s *Session) IsLiked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.likes.IsLiked(id)
}

// UpdateLikes applies fn to a copy of the likes and keeps the copy only when
// fn succeeds. fn runs under the session lock so persistence inside it is
// serialized per client.
func (s *Session) UpdateLikes(fn func(l *model.Likes) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := model.NewLikes(s.likes.All())
	if err := fn(next); err != nil {
		return err
	}
	s.likes = next
	return nil
}

// Snapshot is a read-only summary of a session.
type Snapshot struct {
	ClientID   string
	CreatedAt  time.Time
	Query      string
	Results    int
	RecipeID   string
	ListItems  int
	LikesCount int
}

// Snapshot returns a summary of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ClientID:   s.clientID,
		CreatedAt:  s.createdAt,
		Query:      s.query,
		Results:    len(s.results),
		ListItems:  s.list.Len(),
		LikesCount: s.likes.Count(),
	}
	if s.recipe != nil {
		snap.RecipeID = s.recipe.ID
	}
	return snap
}
