// Package i18n provides internationalization support for the recipe service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired session token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a session token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"

	ErrKeyEmptyQuery       = "error.empty_query"
	ErrKeyInvalidPage      = "error.invalid_page"
	ErrKeyNoActiveRecipe   = "error.no_active_recipe"
	ErrKeyRecipeNotFound   = "error.recipe_not_found"
	ErrKeyListItemNotFound = "error.list_item_not_found"
	ErrKeyLikeNotFound     = "error.like_not_found"
	ErrKeyInvalidServings  = "error.invalid_servings"
	ErrKeyInvalidDirection = "error.invalid_direction"
	ErrKeyInvalidCount     = "error.invalid_count"
	ErrKeyCountOutOfRange  = "error.count_out_of_range"
	ErrKeyStaleResult      = "error.stale_result"
	// ErrKeyUpstreamFailure indicates the recipe API failed or returned unusable data.
	ErrKeyUpstreamFailure = "error.upstream_failure"
	// ErrKeyServiceUnavailable indicates an open circuit breaker.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyStorageFailure indicates the likes store could not be read or written.
	ErrKeyStorageFailure = "error.storage_failure"
)
