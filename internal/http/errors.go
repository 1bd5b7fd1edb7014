package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/recipe-service/internal/circuitbreaker"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/forkify"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/guttosm/recipe-service/internal/session"
)

// errorStatus maps a service error to an HTTP status and message key.
func errorStatus(err error) (int, string) {
	var validationErr *dto.ValidationError
	var networkErr *forkify.NetworkError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequest
	case errors.Is(err, service.ErrEmptyQuery):
		return http.StatusBadRequest, i18n.ErrKeyEmptyQuery
	case errors.Is(err, service.ErrEmptyRecipeID):
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequest
	case errors.Is(err, model.ErrInvalidServings):
		return http.StatusBadRequest, i18n.ErrKeyInvalidServings
	case errors.Is(err, model.ErrInvalidDirection):
		return http.StatusBadRequest, i18n.ErrKeyInvalidDirection
	case errors.Is(err, model.ErrInvalidCount):
		return http.StatusBadRequest, i18n.ErrKeyInvalidCount
	case errors.Is(err, model.ErrCountOutOfRange):
		return http.StatusBadRequest, i18n.ErrKeyCountOutOfRange
	case errors.Is(err, session.ErrNoActiveRecipe):
		return http.StatusNotFound, i18n.ErrKeyNoActiveRecipe
	case errors.Is(err, model.ErrListItemNotFound):
		return http.StatusNotFound, i18n.ErrKeyListItemNotFound
	case errors.Is(err, model.ErrLikeNotFound):
		return http.StatusNotFound, i18n.ErrKeyLikeNotFound
	case errors.Is(err, session.ErrStaleResult):
		return http.StatusConflict, i18n.ErrKeyStaleResult
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	case errors.Is(err, service.ErrStorage):
		return http.StatusServiceUnavailable, i18n.ErrKeyStorageFailure
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	case errors.As(err, &networkErr):
		if networkErr.StatusCode == http.StatusNotFound || networkErr.StatusCode == http.StatusBadRequest {
			return http.StatusNotFound, i18n.ErrKeyRecipeNotFound
		}
		return http.StatusBadGateway, i18n.ErrKeyUpstreamFailure
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// ServiceError sends the error response matching err.
func (b *ResponseBuilder) ServiceError(err error) {
	status, key := errorStatus(err)
	b.Error(status, key, err)
}
