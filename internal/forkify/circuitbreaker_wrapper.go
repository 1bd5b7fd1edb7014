package forkify

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/domain/model"
)

// SourceWithCircuitBreaker wraps a Source with circuit breaker protection.
type SourceWithCircuitBreaker struct {
	source         Source
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSourceWithCircuitBreaker creates a new Source wrapper with circuit breaker.
func NewSourceWithCircuitBreaker(source Source, cb *circuitbreaker.CircuitBreaker) *SourceWithCircuitBreaker {
	return &SourceWithCircuitBreaker{
		source:         source,
		circuitBreaker: cb,
	}
}

// IsFailure reports whether err should count against the recipe API breaker.
// Client errors such as an unknown recipe id are answers, not outages.
func IsFailure(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var ne *NetworkError
	if errors.As(err, &ne) && ne.StatusCode >= http.StatusBadRequest && ne.StatusCode < http.StatusInternalServerError {
		return ne.StatusCode == http.StatusTooManyRequests
	}
	return true
}

// GetRecipe fetches a recipe with circuit breaker protection.
func (s *SourceWithCircuitBreaker) GetRecipe(ctx context.Context, id string) (*RawRecipe, error) {
	var result *RawRecipe
	err := s.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = s.source.GetRecipe(ctx, id)
		return cbErr
	})
	return result, err
}

// Search runs a search with circuit breaker protection.
func (s *SourceWithCircuitBreaker) Search(ctx context.Context, query string) ([]model.RecipeSummary, error) {
	var result []model.RecipeSummary
	err := s.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = s.source.Search(ctx, query)
		return cbErr
	})
	return result, err
}
