package dashboard

import (
	"context"
	"gobarber-dashboard/internal/app/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackSweepSpec = "@hourly"

// IdleSweeper periodically drops live dashboards whose session went quiet,
// so memory is released even when no further requests arrive.
type IdleSweeper struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	DashboardUsecase DashboardUsecase
	cron             *cron.Cron
	runCtx           context.Context
	cancel           context.CancelFunc
}

func NewIdleSweeper(logger *zap.Logger, internalConfig *config.InternalConfig, dashboardUsecase DashboardUsecase) *IdleSweeper {
	return &IdleSweeper{
		Log:              logger,
		InternalConfig:   internalConfig,
		DashboardUsecase: dashboardUsecase,
	}
}

func (s *IdleSweeper) Start(ctx context.Context) {
	s.runCtx, s.cancel = context.WithCancel(ctx)

	c := cron.New()
	spec := s.InternalConfig.App.DashboardSweepCronSpec
	if _, err := c.AddFunc(spec, func() { s.runOnce(s.runCtx) }); err != nil {
		s.Log.Warn("IdleSweeper.Start invalid cron spec, falling back",
			zap.String("spec", spec),
			zap.String("fallback", fallbackSweepSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackSweepSpec, func() { s.runOnce(s.runCtx) })
	}
	c.Start()
	s.cron = c
}

// Stop waits for a running sweep to finish.
func (s *IdleSweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *IdleSweeper) runOnce(ctx context.Context) {
	evicted := s.DashboardUsecase.EvictIdle(ctx)
	if evicted > 0 {
		s.Log.Info("IdleSweeper.runOnce evicted idle dashboards", zap.Int("count", evicted))
	}
}
