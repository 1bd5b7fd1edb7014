// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/service"
	"github.com/guttosm/recipe-service/internal/session"
	"github.com/stretchr/testify/mock"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) NewClient() (string, string, time.Time, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Get(2).(time.Time), args.Error(3)
}

func (m *MockTokenService) Issue(clientID string) (string, time.Time, error) {
	args := m.Called(clientID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) Validate(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type MockLikesService struct {
	mock.Mock
}

func (m *MockLikesService) Load(ctx context.Context, clientID string) (*model.Likes, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Likes), args.Error(1)
}

func (m *MockLikesService) Toggle(ctx context.Context, sess *session.Session) (service.ToggleResult, error) {
	args := m.Called(ctx, sess)
	return args.Get(0).(service.ToggleResult), args.Error(1)
}

func (m *MockLikesService) Delete(ctx context.Context, sess *session.Session, id string) error {
	args := m.Called(ctx, sess, id)
	return args.Error(0)
}
