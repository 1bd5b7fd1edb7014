// Package app provides service initialization.
package app

import (
	"github.com/guttosm/recipe-service/config"
	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/forkify"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/guttosm/recipe-service/internal/session"
	"github.com/guttosm/recipe-service/internal/store"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Source               forkify.Source
	SourceCircuitBreaker *circuitbreaker.CircuitBreaker
	Tokens               service.TokenService
	Parser               service.IngredientParser
	Recipes              service.RecipeService
	Search               service.SearchService
	List                 service.ShoppingListService
	Likes                service.LikesService
}

// InitializeServices initializes business logic services over the recipe
// API client and the likes store.
func InitializeServices(cfg config.Config, kv store.KV) *ServiceComponents {
	sourceCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Upstream.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Upstream.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Upstream.CircuitBreakerTimeout,
		Name:             "recipe-api",
		IsFailure:        forkify.IsFailure,
	})
	client := forkify.NewClient(cfg.Upstream.BaseURL, forkify.WithTimeout(cfg.Upstream.Timeout))
	source := forkify.NewSourceWithCircuitBreaker(client, sourceCB)

	parser := service.NewIngredientParser()

	return &ServiceComponents{
		Source:               source,
		SourceCircuitBreaker: sourceCB,
		Tokens:               service.NewTokenService(cfg.Session.SecretKey, cfg.Session.TokenTTL),
		Parser:               parser,
		Recipes:              service.NewRecipeService(source, parser),
		Search:               service.NewSearchService(source, cfg.Session.ResultsPerPage),
		List:                 service.NewShoppingListService(),
		Likes:                service.NewLikesService(kv),
	}
}

// SessionComponents holds the live session store and its manager.
type SessionComponents struct {
	Store   *session.Store
	Manager *session.Manager
}

// InitializeSessions creates the session store. Likes are restored through
// likes the first time a client is seen.
func InitializeSessions(cfg config.SessionConfig, likes session.LikesLoader) *SessionComponents {
	st := session.NewStore(cfg.Capacity, cfg.TTL, 16)
	return &SessionComponents{
		Store:   st,
		Manager: session.NewManager(st, likes),
	}
}
