package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrListItemNotFound is returned when a shopping list item id is unknown.
	ErrListItemNotFound = errors.New("shopping list item not found")
	// ErrInvalidCount is returned when a negative item count is requested.
	ErrInvalidCount = errors.New("count must not be negative")
)

// ListItem is one entry of the shopping list.
//
// @Description Shopping list entry
type ListItem struct {
	ID         string  `json:"id" example:"3f1c2a4e-8d3b-4a55-9d62-0b7f7d2c1e11"`
	Count      float64 `json:"count" example:"2"`
	Unit       string  `json:"unit" example:"cup"`
	Ingredient string  `json:"ingredient" example:"flour"`
}

// ShoppingList is an ordered collection of list items. It is not safe for
// concurrent use; the owning session serializes access.
type ShoppingList struct {
	items []ListItem
}

// NewShoppingList creates an empty shopping list.
func NewShoppingList() *ShoppingList {
	return &ShoppingList{items: []ListItem{}}
}

// AddItem appends an item with a fresh id and returns it.
func (l *ShoppingList) AddItem(count float64, unit, ingredient string) ListItem {
	item := ListItem{
		ID:         uuid.New().String(),
		Count:      count,
		Unit:       unit,
		Ingredient: ingredient,
	}
	l.items = append(l.items, item)
	return item
}

// AddIngredients appends one item per ingredient, preserving order.
func (l *ShoppingList) AddIngredients(ingredients []Ingredient) []ListItem {
	added := make([]ListItem, 0, len(ingredients))
	for _, ing := range ingredients {
		added = append(added, l.AddItem(ing.Count, ing.Unit, ing.Ingredient))
	}
	return added
}

// DeleteItem removes the item with the given id.
func (l *ShoppingList) DeleteItem(id string) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return ErrListItemNotFound
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return nil
}

// UpdateCount sets the count of the item with the given id.
func (l *ShoppingList) UpdateCount(id string, count float64) (ListItem, error) {
	if count < 0 {
		return ListItem{}, ErrInvalidCount
	}
	idx := l.indexOf(id)
	if idx < 0 {
		return ListItem{}, ErrListItemNotFound
	}
	l.items[idx].Count = count
	return l.items[idx], nil
}

// Items returns a copy of the list items in insertion order.
func (l *ShoppingList) Items() []ListItem {
	items := make([]ListItem, len(l.items))
	copy(items, l.items)
	return items
}

// Len returns the number of items.
func (l *ShoppingList) Len() int {
	return len(l.items)
}

func (l *ShoppingList) indexOf(id string) int {
	for i, item := range l.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
