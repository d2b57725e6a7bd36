package dashboard

import (
	"context"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/models"
	"time"
)

type DashboardUsecase interface {
	contracts.SessionCloser
	GetDashboard(ctx context.Context, session *models.Session) (*View, error)
	SelectDay(ctx context.Context, session *models.Session, day time.Time) (*View, error)
	ChangeMonth(ctx context.Context, session *models.Session, month time.Time) (*View, error)
	Refresh(ctx context.Context, session *models.Session) (*View, error)
	// EvictIdle drops live dashboards unused for a session lifetime and
	// reports how many went.
	EvictIdle(ctx context.Context) int
}

type SelectionRepository interface {
	Save(ctx context.Context, sessionID string, selection models.DashboardSelection, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.DashboardSelection, error)
	Delete(ctx context.Context, sessionID string) error
}
