package auth

import (
	"context"
	"errors"
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/dto/requests"
	"gobarber-dashboard/internal/pkg/exceptions"
	"gobarber-dashboard/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockGobarberAPIClient struct {
	mock.Mock
}

func (m *MockGobarberAPIClient) CreateSession(ctx context.Context, request *requests.GobarberCreateSession) (*models.User, string, error) {
	args := m.Called(ctx, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func (m *MockGobarberAPIClient) WithToken(token string) contracts.ScheduleAPIClient {
	args := m.Called(token)
	client, _ := args.Get(0).(contracts.ScheduleAPIClient)
	return client
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

type MockSessionCloser struct {
	mock.Mock
}

func (m *MockSessionCloser) Close(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{LoginSessionExpiredTimeInHours: 24},
		JWT: config.AppJWT{Secret: "test-secret"},
	}
}

func TestSignIn(t *testing.T) {
	user := &models.User{ID: "u1", Name: "Ana", Email: "ana@gobarber.com"}
	session := &models.Session{SessionID: "s1", User: *user, APIToken: "api-token"}

	apiClient := new(MockGobarberAPIClient)
	apiClient.On("CreateSession", mock.Anything, &requests.GobarberCreateSession{Email: "ana@gobarber.com", Password: "123456"}).
		Return(user, "api-token", nil)
	sessionService := new(MockSessionService)
	sessionService.On("CreateSession", mock.Anything, *user, "api-token").Return(session, nil)

	uc := NewAuthUsecase(apiClient, sessionService, nil, testConfig(), zap.NewNop())
	token, created, err := uc.SignIn(context.Background(), &requests.SignIn{Email: "ana@gobarber.com", Password: "123456"})

	require.NoError(t, err)
	assert.Equal(t, session, created)
	sessionID, err := utils.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "s1", sessionID)
}

func TestSignIn_InvalidInput(t *testing.T) {
	apiClient := new(MockGobarberAPIClient)
	uc := NewAuthUsecase(apiClient, new(MockSessionService), nil, testConfig(), zap.NewNop())

	_, _, err := uc.SignIn(context.Background(), &requests.SignIn{Email: "not-an-email", Password: "1"})

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	apiClient.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestSignIn_BackendRejects(t *testing.T) {
	apiClient := new(MockGobarberAPIClient)
	apiClient.On("CreateSession", mock.Anything, mock.Anything).
		Return(nil, "", exceptions.ErrInvalidEmailOrPassword(errors.New("status 401"), "Incorrect email/password combination."))
	sessionService := new(MockSessionService)
	uc := NewAuthUsecase(apiClient, sessionService, nil, testConfig(), zap.NewNop())

	_, _, err := uc.SignIn(context.Background(), &requests.SignIn{Email: "ana@gobarber.com", Password: "wrong-password"})

	require.Error(t, err)
	sessionService.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything, mock.Anything)
}

func TestCurrentUser(t *testing.T) {
	uc := NewAuthUsecase(new(MockGobarberAPIClient), new(MockSessionService), nil, testConfig(), zap.NewNop())

	user, ok := uc.CurrentUser(context.Background())
	assert.False(t, ok)
	assert.Nil(t, user)

	session := &models.Session{SessionID: "s1", User: models.User{ID: "u1", Name: "Ana"}}
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_SESSION_DATA_KEY, session)
	user, ok = uc.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "Ana", user.Name)
}

func TestSignOut(t *testing.T) {
	sessionService := new(MockSessionService)
	sessionService.On("DeleteSession", mock.Anything, "s1").Return(nil).Once()
	closer := new(MockSessionCloser)
	closer.On("Close", mock.Anything, "s1").Return(nil).Once()
	uc := NewAuthUsecase(new(MockGobarberAPIClient), sessionService, nil, testConfig(), zap.NewNop(), closer)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_SESSION_DATA_KEY, &models.Session{SessionID: "s1"})
	require.NoError(t, uc.SignOut(ctx))

	sessionService.AssertExpectations(t)
	closer.AssertExpectations(t)
}

func TestSignOut_WithoutSession(t *testing.T) {
	sessionService := new(MockSessionService)
	uc := NewAuthUsecase(new(MockGobarberAPIClient), sessionService, nil, testConfig(), zap.NewNop())

	assert.NoError(t, uc.SignOut(context.Background()))
	sessionService.AssertNotCalled(t, "DeleteSession", mock.Anything, mock.Anything)
}

func TestSignOut_ClosesEvenWhenDeleteFails(t *testing.T) {
	sessionService := new(MockSessionService)
	sessionService.On("DeleteSession", mock.Anything, "s1").Return(errors.New("redis down"))
	closer := new(MockSessionCloser)
	closer.On("Close", mock.Anything, "s1").Return(nil).Once()
	uc := NewAuthUsecase(new(MockGobarberAPIClient), sessionService, nil, testConfig(), zap.NewNop(), closer)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_SESSION_DATA_KEY, &models.Session{SessionID: "s1"})
	assert.Error(t, uc.SignOut(ctx))
	closer.AssertExpectations(t)
}

type stubAttemptLimiter struct {
	allowed    bool
	retryAfter time.Duration
	resources  []string
}

func (s *stubAttemptLimiter) Allow(ctx context.Context, resource string) (bool, time.Duration, error) {
	s.resources = append(s.resources, resource)
	return s.allowed, s.retryAfter, nil
}

func TestSignIn_AttemptsOverQuota(t *testing.T) {
	apiClient := new(MockGobarberAPIClient)
	limiter := &stubAttemptLimiter{allowed: false, retryAfter: 42 * time.Second}
	uc := NewAuthUsecase(apiClient, new(MockSessionService), limiter, testConfig(), zap.NewNop())

	_, _, err := uc.SignIn(context.Background(), &requests.SignIn{Email: "ana@gobarber.com", Password: "123456"})

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
	assert.Equal(t, "too many sign-in attempts, try again in 42 seconds", customErr.ClientMessage)
	assert.Equal(t, []string{"ana@gobarber.com"}, limiter.resources)
	apiClient.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}
