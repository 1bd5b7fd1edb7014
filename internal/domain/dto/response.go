package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUpstream indicates the recipe API failed.
	ErrCodeUpstream = "upstream_error"
	// ErrCodeUnavailable indicates a dependency is temporarily unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"servings: must be a positive integer"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway:
		return ErrCodeUpstream
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// SessionResponse is returned when a session is created.
//
// @Description New client session
type SessionResponse struct {
	ClientID  string    `json:"client_id" example:"6f1c2a8e-1b7e-4a53-9a0e-2e0f5b1d7c11"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expires_at" example:"2026-02-27T10:00:00Z"`
} // @name SessionResponse

// SessionSummaryResponse describes the state held for a client.
//
// @Description Summary of the current session
type SessionSummaryResponse struct {
	ClientID   string    `json:"client_id"`
	CreatedAt  time.Time `json:"created_at"`
	Query      string    `json:"query,omitempty" example:"pizza"`
	Results    int       `json:"results" example:"28"`
	RecipeID   string    `json:"recipe_id,omitempty" example:"47746"`
	ListItems  int       `json:"list_items" example:"3"`
	LikesCount int       `json:"likes_count" example:"2"`
} // @name SessionSummaryResponse

// RecipeResponse is a recipe together with its liked state.
//
// @Description Recipe with liked flag
type RecipeResponse struct {
	*model.Recipe
	Liked bool `json:"liked" example:"false"`
} // @name RecipeResponse

// ListResponse is the shopping list.
//
// @Description Shopping list items
type ListResponse struct {
	Items []model.ListItem `json:"items"`
} // @name ListResponse

// LikesResponse lists the liked recipes.
//
// @Description Liked recipes
type LikesResponse struct {
	Likes []model.Like `json:"likes"`
	Count int          `json:"count" example:"2"`
} // @name LikesResponse

// ToggleLikeResponse reports the result of a like toggle.
//
// @Description Result of toggling a like
type ToggleLikeResponse struct {
	Liked bool       `json:"liked" example:"true"`
	Like  model.Like `json:"like"`
	// Count is the number of liked recipes after the toggle.
	Count int `json:"count" example:"1"`
} // @name ToggleLikeResponse

// IngredientsResponse carries parsed or scaled ingredients.
//
// @Description Structured ingredients
type IngredientsResponse struct {
	Ingredients []model.Ingredient `json:"ingredients"`
} // @name IngredientsResponse
