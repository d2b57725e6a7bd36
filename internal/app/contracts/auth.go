package contracts

import (
	"context"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/dto/requests"
	"time"
)

// AttemptLimiter counts attempts against a resource within a fixed window.
type AttemptLimiter interface {
	Allow(ctx context.Context, resource string) (allowed bool, retryAfter time.Duration, err error)
}

type AuthUsecase interface {
	AuthStateProvider
	SignIn(ctx context.Context, request *requests.SignIn) (string, *models.Session, error)
}
