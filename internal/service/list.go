package service

import (
	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/session"
)

// ShoppingListService manages a session's shopping list.
type ShoppingListService interface {
	Items(sess *session.Session) []model.ListItem
	// AddRecipe appends every ingredient of the current recipe.
	AddRecipe(sess *session.Session) ([]model.ListItem, error)
	Add(sess *session.Session, count float64, unit, ingredient string) (model.ListItem, error)
	UpdateCount(sess *session.Session, id string, count float64) (model.ListItem, error)
	Delete(sess *session.Session, id string) error
}

// ShoppingListServiceImpl implements ShoppingListService.
type ShoppingListServiceImpl struct{}

// NewShoppingListService creates a new shopping list service.
func NewShoppingListService() ShoppingListService {
	return &ShoppingListServiceImpl{}
}

func (s *ShoppingListServiceImpl) Items(sess *session.Session) []model.ListItem {
	return sess.ListItems()
}

func (s *ShoppingListServiceImpl) AddRecipe(sess *session.Session) ([]model.ListItem, error) {
	recipe, err := sess.Recipe()
	if err != nil {
		return nil, err
	}

	var added []model.ListItem
	err = sess.UpdateList(func(l *model.ShoppingList) error {
		added = l.AddIngredients(recipe.Ingredients)
		return nil
	})
	return added, err
}

func (s *ShoppingListServiceImpl) Add(sess *session.Session, count float64, unit, ingredient string) (model.ListItem, error) {
	if count < 0 {
		return model.ListItem{}, model.ErrInvalidCount
	}

	var item model.ListItem
	err := sess.UpdateList(func(l *model.ShoppingList) error {
		item = l.AddItem(count, unit, ingredient)
		return nil
	})
	return item, err
}

func (s *ShoppingListServiceImpl) UpdateCount(sess *session.Session, id string, count float64) (model.ListItem, error) {
	var item model.ListItem
	err := sess.UpdateList(func(l *model.ShoppingList) error {
		var updateErr error
		item, updateErr = l.UpdateCount(id, count)
		return updateErr
	})
	return item, err
}

func (s *ShoppingListServiceImpl) Delete(sess *session.Session, id string) error {
	return sess.UpdateList(func(l *model.ShoppingList) error {
		return l.DeleteItem(id)
	})
}
