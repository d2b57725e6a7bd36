package middlewares

import (
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	AuthState      contracts.AuthStateProvider
	SessionService contracts.SessionService
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, authState contracts.AuthStateProvider, sessionService contracts.SessionService) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		AuthState:      authState,
		SessionService: sessionService,
	}
}
