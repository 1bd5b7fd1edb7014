// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "github.com/guttosm/recipe-service/internal/domain/model"

// MaxParseLines bounds a single parse or scale request.
const MaxParseLines = 500

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrServingsChoice is returned when a servings request sets both or neither field.
	ErrServingsChoice = &ValidationError{
		Field:   "direction",
		Message: "exactly one of direction or servings is required",
	}
	// ErrInvalidDirection is returned for a direction other than inc or dec.
	ErrInvalidDirection = &ValidationError{
		Field:   "direction",
		Message: "must be inc or dec",
	}
	// ErrInvalidServings is returned for a serving count below one.
	ErrInvalidServings = &ValidationError{
		Field:   "servings",
		Message: "must be a positive integer",
	}
	// ErrInvalidCount is returned for a negative quantity.
	ErrInvalidCount = &ValidationError{
		Field:   "count",
		Message: "must not be negative",
	}
	// ErrMissingCount is returned when a count update has no count.
	ErrMissingCount = &ValidationError{
		Field:   "count",
		Message: "is required",
	}
	// ErrMissingIngredient is returned when a list item has no ingredient text.
	ErrMissingIngredient = &ValidationError{
		Field:   "ingredient",
		Message: "is required",
	}
	// ErrTooManyLines is returned when a batch exceeds MaxParseLines.
	ErrTooManyLines = &ValidationError{
		Field:   "lines",
		Message: "too many entries",
	}
	// ErrScaleFrom is returned for a from value below one.
	ErrScaleFrom = &ValidationError{
		Field:   "from",
		Message: "must be a positive integer",
	}
	// ErrScaleTo is returned for a to value below one.
	ErrScaleTo = &ValidationError{
		Field:   "to",
		Message: "must be a positive integer",
	}
)

// ServingsRequest changes the servings of the current recipe, either one
// step at a time or to an explicit count.
//
// @Description Step servings up or down, or set them explicitly
// @Example {"direction": "inc"}
// @Example {"servings": 6}
type ServingsRequest struct {
	// Direction is "inc" or "dec".
	Direction string `json:"direction,omitempty" example:"inc" enums:"inc,dec"`
	// Servings is an explicit target serving count.
	Servings *int `json:"servings,omitempty" example:"6" minimum:"1"`
} // @name ServingsRequest

// Validate performs custom validation on the request.
func (r *ServingsRequest) Validate() error {
	hasDirection := r.Direction != ""
	hasServings := r.Servings != nil
	if hasDirection == hasServings {
		return ErrServingsChoice
	}
	if hasServings && *r.Servings < 1 {
		return ErrInvalidServings
	}
	if hasDirection {
		switch model.ServingsDirection(r.Direction) {
		case model.ServingsIncrease, model.ServingsDecrease:
		default:
			return ErrInvalidDirection
		}
	}
	return nil
}

// AddListItemRequest adds a single item to the shopping list.
//
// @Description Shopping list item to add
// @Example {"count": 2, "unit": "cup", "ingredient": "flour"}
type AddListItemRequest struct {
	// Count defaults to 1 when omitted.
	Count      *float64 `json:"count,omitempty" example:"2" minimum:"0"`
	Unit       string   `json:"unit" example:"cup"`
	Ingredient string   `json:"ingredient" binding:"required" example:"flour"`
} // @name AddListItemRequest

// Validate performs custom validation on the request.
func (r *AddListItemRequest) Validate() error {
	if r.Ingredient == "" {
		return ErrMissingIngredient
	}
	if r.Count != nil && *r.Count < 0 {
		return ErrInvalidCount
	}
	return nil
}

// CountOrDefault returns the requested count, or 1 when none was given.
func (r *AddListItemRequest) CountOrDefault() float64 {
	if r.Count == nil {
		return 1
	}
	return *r.Count
}

// UpdateListItemRequest changes the count of a shopping list item.
//
// @Description New count for a shopping list item
// @Example {"count": 3.5}
type UpdateListItemRequest struct {
	Count *float64 `json:"count" binding:"required" example:"3.5" minimum:"0"`
} // @name UpdateListItemRequest

// Validate performs custom validation on the request.
func (r *UpdateListItemRequest) Validate() error {
	if r.Count == nil {
		return ErrMissingCount
	}
	if *r.Count < 0 {
		return ErrInvalidCount
	}
	return nil
}

// ParseIngredientsRequest carries free-text ingredient lines.
//
// @Description Ingredient lines to parse
// @Example {"lines": ["2 cups flour", "1-1/2 tablespoons olive oil"]}
type ParseIngredientsRequest struct {
	Lines []string `json:"lines" binding:"required"`
} // @name ParseIngredientsRequest

// Validate performs custom validation on the request.
func (r *ParseIngredientsRequest) Validate() error {
	if len(r.Lines) > MaxParseLines {
		return ErrTooManyLines
	}
	return nil
}

// ScaleIngredientsRequest rescales parsed ingredients between serving counts.
//
// @Description Parsed ingredients with the current and target servings
// @Example {"ingredients": [{"count": 2, "unit": "cup", "ingredient": "flour"}], "from": 4, "to": 6}
type ScaleIngredientsRequest struct {
	Ingredients []model.Ingredient `json:"ingredients" binding:"required"`
	From        int                `json:"from" example:"4" minimum:"1"`
	To          int                `json:"to" example:"6" minimum:"1"`
} // @name ScaleIngredientsRequest

// Validate performs custom validation on the request.
func (r *ScaleIngredientsRequest) Validate() error {
	if len(r.Ingredients) > MaxParseLines {
		return &ValidationError{Field: "ingredients", Message: ErrTooManyLines.Message}
	}
	if r.From < 1 {
		return ErrScaleFrom
	}
	if r.To < 1 {
		return ErrScaleTo
	}
	for _, ing := range r.Ingredients {
		if ing.Count < 0 {
			return ErrInvalidCount
		}
	}
	return nil
}
