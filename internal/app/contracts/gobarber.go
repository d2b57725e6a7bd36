package contracts

import (
	"context"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/dto/requests"
	"time"
)

type GobarberAPIClient interface {
	CreateSession(ctx context.Context, request *requests.GobarberCreateSession) (*models.User, string, error)
	WithToken(token string) ScheduleAPIClient
}

// ScheduleAPIClient is the part of the backend API the dashboard reads,
// already bound to the signed-in provider's token.
type ScheduleAPIClient interface {
	FindMonthAvailability(ctx context.Context, providerID string, year int, month time.Month) ([]models.MonthAvailabilityItem, error)
	FindMyAppointments(ctx context.Context, day time.Time) ([]models.Appointment, error)
}
