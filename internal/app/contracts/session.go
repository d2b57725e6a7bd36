package contracts

import (
	"context"
	"gobarber-dashboard/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, user models.User, apiToken string) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthStateProvider exposes the authentication state of the current request.
type AuthStateProvider interface {
	CurrentUser(ctx context.Context) (*models.User, bool)
	CurrentSession(ctx context.Context) (*models.Session, bool)
	SignOut(ctx context.Context) error
}

// SessionCloser releases per-session resources when a session ends.
type SessionCloser interface {
	Close(ctx context.Context, sessionID string) error
}
