// Package model defines the core domain entities for the recipe service.
package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidServings is returned when a serving count below one is requested.
	ErrInvalidServings = errors.New("servings must be a positive integer")
	// ErrCountOutOfRange is returned when a scaled count is not a finite number.
	ErrCountOutOfRange = errors.New("scaled count is out of range")
)

// Ingredient is a single parsed ingredient line.
//
// @Description Parsed ingredient with quantity, canonical unit and name
// @Example {"count": 1.5, "unit": "cup", "ingredient": "sugar"}
type Ingredient struct {
	// Count is the quantity, 1 when no quantity could be recognized
	Count float64 `json:"count" example:"1.5"`
	// Unit is a canonical short unit or empty
	Unit string `json:"unit" example:"cup"`
	// Ingredient is the remaining lower-cased text
	Ingredient string `json:"ingredient" example:"sugar"`
}

// String renders the ingredient the way a shopping list line reads.
func (i Ingredient) String() string {
	parts := make([]string, 0, 3)
	parts = append(parts, formatCount(i.Count))
	if i.Unit != "" {
		parts = append(parts, i.Unit)
	}
	if i.Ingredient != "" {
		parts = append(parts, i.Ingredient)
	}
	return strings.Join(parts, " ")
}

// ScaleIngredients returns a copy of ingredients with every count multiplied
// by newServings/oldServings. The input slice is not modified. Negative
// counts and results that overflow a float64 are rejected.
func ScaleIngredients(ingredients []Ingredient, oldServings, newServings int) ([]Ingredient, error) {
	if oldServings < 1 || newServings < 1 {
		return nil, ErrInvalidServings
	}

	factor := float64(newServings) / float64(oldServings)
	scaled := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		if ing.Count < 0 {
			return nil, ErrInvalidCount
		}
		ing.Count *= factor
		if math.IsInf(ing.Count, 0) || math.IsNaN(ing.Count) {
			return nil, ErrCountOutOfRange
		}
		scaled[i] = ing
	}
	return scaled, nil
}

// formatCount renders a count rounded to two decimals without trailing zeros.
func formatCount(count float64) string {
	return strconv.FormatFloat(math.Round(count*100)/100, 'f', -1, 64)
}
