package dashboard

import (
	"context"
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/app/models"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/exceptions"
	"gobarber-dashboard/internal/pkg/metrics"
	"sync"
	"time"

	"go.uber.org/zap"
)

// liveDashboard is published before it is mounted; ready closes once the
// saved selection is restored and the first fetches are done.
type liveDashboard struct {
	viewModel *ViewModel
	lastSeen  time.Time
	ready     chan struct{}
}

// dashboardUsecase keeps one view model per session for as long as the
// session is used, and persists its selection between processes.
type dashboardUsecase struct {
	mu         sync.Mutex
	dashboards map[string]*liveDashboard

	GobarberAPIClient   contracts.GobarberAPIClient
	SelectionRepository SelectionRepository
	InternalConfig      *config.InternalConfig
	Location            *time.Location
	Locale              Locale
	Now                 func() time.Time
	Log                 *zap.Logger
}

func NewDashboardUsecase(
	gobarberAPIClient contracts.GobarberAPIClient,
	selectionRepository SelectionRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) DashboardUsecase {
	return &dashboardUsecase{
		dashboards:          make(map[string]*liveDashboard),
		GobarberAPIClient:   gobarberAPIClient,
		SelectionRepository: selectionRepository,
		InternalConfig:      internalConfig,
		Location:            internalConfig.App.Location(),
		Locale:              LocaleFor(internalConfig.App.Locale),
		Now:                 time.Now,
		Log:                 logger,
	}
}

func (uc *dashboardUsecase) GetDashboard(ctx context.Context, session *models.Session) (*View, error) {
	viewModel, err := uc.open(ctx, session)
	if err != nil {
		return nil, err
	}
	view := viewModel.Derive(uc.Locale)
	return &view, nil
}

func (uc *dashboardUsecase) SelectDay(ctx context.Context, session *models.Session, day time.Time) (*View, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	viewModel, err := uc.open(ctx, session)
	if err != nil {
		return nil, err
	}

	changed, err := viewModel.ClickDay(ctx, day)
	if err != nil {
		uc.Log.Warn("dashboardUsecase.SelectDay appointments not refreshed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	uc.Log.Info("dashboardUsecase.SelectDay completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayKey, day.Format(constvars.DateLayout)),
		zap.Bool("changed", changed),
	)

	if changed {
		if err := uc.saveSelection(ctx, session, viewModel); err != nil {
			return nil, err
		}
	}
	view := viewModel.Derive(uc.Locale)
	return &view, nil
}

func (uc *dashboardUsecase) ChangeMonth(ctx context.Context, session *models.Session, month time.Time) (*View, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	viewModel, err := uc.open(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := viewModel.ChangeMonth(ctx, month); err != nil {
		uc.Log.Warn("dashboardUsecase.ChangeMonth availability not refreshed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	uc.Log.Info("dashboardUsecase.ChangeMonth completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingYearKey, month.Year()),
		zap.Int(constvars.LoggingMonthKey, int(month.Month())),
	)

	if err := uc.saveSelection(ctx, session, viewModel); err != nil {
		return nil, err
	}
	view := viewModel.Derive(uc.Locale)
	return &view, nil
}

func (uc *dashboardUsecase) Refresh(ctx context.Context, session *models.Session) (*View, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	viewModel, err := uc.open(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := viewModel.Refresh(ctx); err != nil {
		uc.Log.Warn("dashboardUsecase.Refresh schedule not fully refreshed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	view := viewModel.Derive(uc.Locale)
	return &view, nil
}

// Close drops the live view model of sessionID and its saved selection.
func (uc *dashboardUsecase) Close(ctx context.Context, sessionID string) error {
	uc.mu.Lock()
	if _, ok := uc.dashboards[sessionID]; ok {
		delete(uc.dashboards, sessionID)
		metrics.LiveDashboards.Dec()
	}
	uc.mu.Unlock()

	return uc.SelectionRepository.Delete(ctx, sessionID)
}

// open returns the live view model of session, mounting a new one (restored
// from the saved selection) when the session has none yet.
func (uc *dashboardUsecase) open(ctx context.Context, session *models.Session) (*ViewModel, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if session == nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	now := uc.Now()

	uc.mu.Lock()
	uc.evictIdle(now)
	live, ok := uc.dashboards[session.SessionID]
	if ok {
		live.lastSeen = now
		uc.mu.Unlock()

		select {
		case <-live.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		if live.viewModel.ProviderID() != session.User.ID {
			if err := live.viewModel.SetProvider(ctx, session.User.ID); err != nil {
				uc.Log.Warn("dashboardUsecase.open availability not refreshed for provider",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingProviderIDKey, session.User.ID),
					zap.Error(err),
				)
			}
		}
		return live.viewModel, nil
	}

	viewModel := NewViewModel(
		uc.GobarberAPIClient.WithToken(session.APIToken),
		session.User.ID,
		uc.Location,
		uc.Now,
		uc.Log,
	)
	live = &liveDashboard{viewModel: viewModel, lastSeen: now, ready: make(chan struct{})}
	uc.dashboards[session.SessionID] = live
	metrics.LiveDashboards.Inc()
	uc.mu.Unlock()
	defer close(live.ready)

	selection, err := uc.SelectionRepository.Find(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("dashboardUsecase.open error loading saved selection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	} else if selection != nil {
		viewModel.Restore(*selection)
	}

	if err := viewModel.Mount(ctx); err != nil {
		uc.Log.Warn("dashboardUsecase.open dashboard mounted with errors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("dashboardUsecase.open mounted dashboard",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserIDKey, session.User.ID),
	)
	return viewModel, nil
}

func (uc *dashboardUsecase) EvictIdle(ctx context.Context) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.evictIdle(uc.Now())
}

// evictIdle expects uc.mu to be held.
func (uc *dashboardUsecase) evictIdle(now time.Time) int {
	lifetime := uc.InternalConfig.App.SessionLifetime()
	evicted := 0
	for sessionID, live := range uc.dashboards {
		if now.Sub(live.lastSeen) > lifetime {
			delete(uc.dashboards, sessionID)
			metrics.LiveDashboards.Dec()
			evicted++
		}
	}
	return evicted
}

func (uc *dashboardUsecase) saveSelection(ctx context.Context, session *models.Session, viewModel *ViewModel) error {
	ttl := uc.InternalConfig.App.SessionLifetime()
	if !session.ExpiresAt.IsZero() {
		if remaining := session.ExpiresAt.Sub(uc.Now()); remaining > 0 {
			ttl = remaining
		}
	}
	return uc.SelectionRepository.Save(ctx, session.SessionID, viewModel.Selection(), ttl)
}
