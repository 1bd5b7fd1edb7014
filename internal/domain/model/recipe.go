package model

import (
	"errors"
	"math"
)

const (
	// DefaultServings is the serving count every freshly loaded recipe starts with.
	DefaultServings = 4
	// ingredientsPerPeriod is how many ingredients fit into one cooking period.
	ingredientsPerPeriod = 30
	// minutesPerPeriod is the length of one cooking period.
	minutesPerPeriod = 15
)

// ErrInvalidDirection is returned for a servings update other than inc or dec.
var ErrInvalidDirection = errors.New("servings direction must be inc or dec")

// ServingsDirection selects an increment or decrement of the serving count.
type ServingsDirection string

const (
	// ServingsIncrease adds one serving.
	ServingsIncrease ServingsDirection = "inc"
	// ServingsDecrease removes one serving, never going below one.
	ServingsDecrease ServingsDirection = "dec"
)

// Recipe is a fully loaded recipe with parsed ingredients.
//
// @Description Recipe with parsed ingredients, servings and estimated time
type Recipe struct {
	ID               string       `json:"id" example:"47746"`
	Title            string       `json:"title" example:"Best Pizza Dough Ever"`
	Author           string       `json:"author" example:"101 Cookbooks"`
	SourceURL        string       `json:"source_url" example:"http://www.101cookbooks.com/archives/001199.html"`
	ImageURL         string       `json:"image_url" example:"http://forkify-api.herokuapp.com/images/best_pizza_dough_recipe1b20.jpg"`
	Ingredients      []Ingredient `json:"ingredients"`
	Servings         int          `json:"servings" example:"4"`
	EstimatedMinutes int          `json:"estimated_minutes" example:"15"`
}

// EstimateMinutes returns the preparation time for a number of ingredients,
// one period of 15 minutes per started block of 30 ingredients.
func EstimateMinutes(ingredientCount int) int {
	if ingredientCount <= 0 {
		return 0
	}
	periods := int(math.Ceil(float64(ingredientCount) / ingredientsPerPeriod))
	return periods * minutesPerPeriod
}

// NewRecipe builds a recipe from already parsed ingredients and derives
// its estimated time and default servings.
func NewRecipe(id, title, author, sourceURL, imageURL string, ingredients []Ingredient) *Recipe {
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	return &Recipe{
		ID:               id,
		Title:            title,
		Author:           author,
		SourceURL:        sourceURL,
		ImageURL:         imageURL,
		Ingredients:      ingredients,
		Servings:         DefaultServings,
		EstimatedMinutes: EstimateMinutes(len(ingredients)),
	}
}

// UpdateServings moves the serving count one step and rescales every ingredient.
// Decreasing at one serving is a no-op.
func (r *Recipe) UpdateServings(direction ServingsDirection) error {
	switch direction {
	case ServingsIncrease:
		return r.SetServings(r.Servings + 1)
	case ServingsDecrease:
		if r.Servings <= 1 {
			return nil
		}
		return r.SetServings(r.Servings - 1)
	default:
		return ErrInvalidDirection
	}
}

// SetServings rescales the recipe to the given serving count.
func (r *Recipe) SetServings(servings int) error {
	scaled, err := ScaleIngredients(r.Ingredients, r.Servings, servings)
	if err != nil {
		return err
	}
	r.Ingredients = scaled
	r.Servings = servings
	return nil
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	return &cp
}

// Summary returns the search-list view of the recipe.
func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:       r.ID,
		Title:    r.Title,
		Author:   r.Author,
		ImageURL: r.ImageURL,
	}
}
