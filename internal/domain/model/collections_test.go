package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	results := make([]RecipeSummary, 28)
	for i := range results {
		results[i] = RecipeSummary{ID: string(rune('a' + i%26))}
	}

	tests := []struct {
		name         string
		results      []RecipeSummary
		page         int
		perPage      int
		expectPage   int
		expectLen    int
		expectPages  int
		expectPrev   bool
		expectNext   bool
		expectFirstI int
	}{
		{name: "first page", results: results, page: 1, perPage: 10, expectPage: 1, expectLen: 10, expectPages: 3, expectNext: true},
		{name: "middle page", results: results, page: 2, perPage: 10, expectPage: 2, expectLen: 10, expectPages: 3, expectPrev: true, expectNext: true, expectFirstI: 10},
		{name: "last partial page", results: results, page: 3, perPage: 10, expectPage: 3, expectLen: 8, expectPages: 3, expectPrev: true, expectFirstI: 20},
		{name: "page beyond end is clamped", results: results, page: 9, perPage: 10, expectPage: 3, expectLen: 8, expectPages: 3, expectPrev: true, expectFirstI: 20},
		{name: "page below one is clamped", results: results, page: 0, perPage: 10, expectPage: 1, expectLen: 10, expectPages: 3, expectNext: true},
		{name: "default page size", results: results, page: 1, perPage: 0, expectPage: 1, expectLen: 10, expectPages: 3, expectNext: true},
		{name: "no results", results: nil, page: 2, perPage: 10, expectPage: 1, expectLen: 0, expectPages: 0},
		{name: "max page on empty results", results: nil, page: math.MaxInt, perPage: 10, expectPage: 1, expectLen: 0, expectPages: 0},
		{name: "max page on results", results: results, page: math.MaxInt, perPage: 10, expectPage: 3, expectLen: 8, expectPages: 3, expectPrev: true, expectFirstI: 20},
		{name: "min page on results", results: results, page: math.MinInt, perPage: 10, expectPage: 1, expectLen: 10, expectPages: 3, expectNext: true},
		{name: "huge page size", results: results, page: 1, perPage: math.MaxInt, expectPage: 1, expectLen: 28, expectPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate("pizza", tt.results, tt.page, tt.perPage)
			assert.Equal(t, "pizza", p.Query)
			assert.Equal(t, tt.expectPage, p.Page)
			assert.Len(t, p.Results, tt.expectLen)
			assert.NotNil(t, p.Results)
			assert.Equal(t, tt.expectPages, p.TotalPages)
			assert.Equal(t, tt.expectPrev, p.HasPrev)
			assert.Equal(t, tt.expectNext, p.HasNext)
			assert.Equal(t, len(tt.results), p.Total)
			if tt.expectLen > 0 {
				assert.Equal(t, tt.results[tt.expectFirstI], p.Results[0])
			}
		})
	}
}

func TestShoppingList(t *testing.T) {
	list := NewShoppingList()

	flour := list.AddItem(2, "cup", "flour")
	salt := list.AddItem(0.5, "tsp", "salt")
	assert.NotEmpty(t, flour.ID)
	assert.NotEqual(t, flour.ID, salt.ID)
	assert.Equal(t, 2, list.Len())

	updated, err := list.UpdateCount(salt.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, updated.Count)
	assert.Equal(t, 1.0, list.Items()[1].Count)

	_, err = list.UpdateCount(salt.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = list.UpdateCount("missing", 3)
	assert.ErrorIs(t, err, ErrListItemNotFound)

	require.NoError(t, list.DeleteItem(flour.ID))
	assert.ErrorIs(t, list.DeleteItem(flour.ID), ErrListItemNotFound)
	assert.Equal(t, []ListItem{{ID: salt.ID, Count: 1, Unit: "tsp", Ingredient: "salt"}}, list.Items())
}

func TestShoppingList_AddIngredients(t *testing.T) {
	list := NewShoppingList()
	added := list.AddIngredients(sampleIngredients())

	require.Len(t, added, 4)
	items := list.Items()
	for i, ing := range sampleIngredients() {
		assert.Equal(t, ing.Count, items[i].Count)
		assert.Equal(t, ing.Unit, items[i].Unit)
		assert.Equal(t, ing.Ingredient, items[i].Ingredient)
	}

	items[0].Count = 42
	assert.Equal(t, 2.0, list.Items()[0].Count, "Items must return a copy")
}

func TestLikes(t *testing.T) {
	likes := NewLikes([]Like{
		{ID: "1", Title: "Pizza"},
		{ID: "1", Title: "Duplicate"},
		{ID: "2", Title: "Pasta"},
	})

	assert.Equal(t, 2, likes.Count())
	assert.True(t, likes.IsLiked("1"))
	assert.Equal(t, "Pizza", likes.All()[0].Title)

	likes.Add(Like{ID: "3", Title: "Soup"})
	likes.Add(Like{ID: "1", Title: "Pizza v2"})
	assert.Equal(t, 3, likes.Count())
	assert.Equal(t, "Pizza v2", likes.All()[0].Title)

	require.NoError(t, likes.Delete("2"))
	assert.False(t, likes.IsLiked("2"))
	assert.ErrorIs(t, likes.Delete("2"), ErrLikeNotFound)
	assert.Equal(t, []string{"1", "3"}, []string{likes.All()[0].ID, likes.All()[1].ID})
}

func TestLikeFromRecipe(t *testing.T) {
	r := NewRecipe("47746", "Pizza", "101 Cookbooks", "http://src", "http://img", nil)
	assert.Equal(t, Like{ID: "47746", Title: "Pizza", Author: "101 Cookbooks", Image: "http://img"}, LikeFromRecipe(r))
	assert.Equal(t, RecipeSummary{ID: "47746", Title: "Pizza", Author: "101 Cookbooks", ImageURL: "http://img"}, r.Summary())
}
