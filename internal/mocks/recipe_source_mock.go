// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/forkify"
	"github.com/stretchr/testify/mock"
)

type MockRecipeSource struct {
	mock.Mock
}

func (m *MockRecipeSource) GetRecipe(ctx context.Context, id string) (*forkify.RawRecipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forkify.RawRecipe), args.Error(1)
}

func (m *MockRecipeSource) Search(ctx context.Context, query string) ([]model.RecipeSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RecipeSummary), args.Error(1)
}
