package dashboard

import (
	"context"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/dto/requests"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockScheduleAPIClient struct {
	mock.Mock
}

func (m *MockScheduleAPIClient) FindMonthAvailability(ctx context.Context, providerID string, year int, month time.Month) ([]models.MonthAvailabilityItem, error) {
	args := m.Called(ctx, providerID, year, month)
	items, _ := args.Get(0).([]models.MonthAvailabilityItem)
	return items, args.Error(1)
}

func (m *MockScheduleAPIClient) FindMyAppointments(ctx context.Context, day time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, day)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

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
	return args.Get(0).(contracts.ScheduleAPIClient)
}

type memorySelectionRepository struct {
	mu         sync.Mutex
	selections map[string]models.DashboardSelection
	ttls       map[string]time.Duration
}

func newMemorySelectionRepository() *memorySelectionRepository {
	return &memorySelectionRepository{
		selections: make(map[string]models.DashboardSelection),
		ttls:       make(map[string]time.Duration),
	}
}

func (r *memorySelectionRepository) Save(ctx context.Context, sessionID string, selection models.DashboardSelection, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selections[sessionID] = selection
	r.ttls[sessionID] = ttl
	return nil
}

func (r *memorySelectionRepository) Find(ctx context.Context, sessionID string) (*models.DashboardSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	selection, ok := r.selections[sessionID]
	if !ok {
		return nil, nil
	}
	return &selection, nil
}

func (r *memorySelectionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.selections, sessionID)
	delete(r.ttls, sessionID)
	return nil
}

// gatedScheduleAPI holds a fetch open until its gate is closed, so tests can
// finish a newer fetch before an older one.
type gatedScheduleAPI struct {
	availabilityGates map[time.Month]chan struct{}
	appointmentGates  map[int]chan struct{}
	started           chan struct{}
}

func newGatedScheduleAPI() *gatedScheduleAPI {
	return &gatedScheduleAPI{
		availabilityGates: make(map[time.Month]chan struct{}),
		appointmentGates:  make(map[int]chan struct{}),
		started:           make(chan struct{}, 8),
	}
}

func (g *gatedScheduleAPI) FindMonthAvailability(ctx context.Context, providerID string, year int, month time.Month) ([]models.MonthAvailabilityItem, error) {
	g.started <- struct{}{}
	if gate, ok := g.availabilityGates[month]; ok {
		<-gate
	}
	return []models.MonthAvailabilityItem{{Day: int(month), Available: false}}, nil
}

func (g *gatedScheduleAPI) FindMyAppointments(ctx context.Context, day time.Time) ([]models.Appointment, error) {
	g.started <- struct{}{}
	if gate, ok := g.appointmentGates[day.Day()]; ok {
		<-gate
	}
	return []models.Appointment{{ID: day.Format("2006-01-02"), Date: day.Add(9 * time.Hour)}}, nil
}

// countingEvictor is a DashboardUsecase that only counts sweeps.
type countingEvictor struct {
	DashboardUsecase
	calls int
}

func (c *countingEvictor) EvictIdle(ctx context.Context) int {
	c.calls++
	return 0
}
