package middlewares

import (
	"context"
	"gobarber-dashboard/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type MockAuthStateProvider struct {
	mock.Mock
}

func (m *MockAuthStateProvider) CurrentUser(ctx context.Context) (*models.User, bool) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*models.User)
	return user, args.Bool(1)
}

func (m *MockAuthStateProvider) CurrentSession(ctx context.Context) (*models.Session, bool) {
	args := m.Called(ctx)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Bool(1)
}

func (m *MockAuthStateProvider) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user models.User, apiToken string) (*models.Session, error) {
	args := m.Called(ctx, user, apiToken)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
