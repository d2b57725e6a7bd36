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

	"go.uber.org/zap"
)

// authUsecase signs providers in against the backend and answers who the
// current request belongs to.
type authUsecase struct {
	GobarberAPIClient contracts.GobarberAPIClient
	SessionService    contracts.SessionService
	AttemptLimiter    contracts.AttemptLimiter
	SessionClosers    []contracts.SessionCloser
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	gobarberAPIClient contracts.GobarberAPIClient,
	sessionService contracts.SessionService,
	attemptLimiter contracts.AttemptLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	sessionClosers ...contracts.SessionCloser,
) contracts.AuthUsecase {
	return &authUsecase{
		GobarberAPIClient: gobarberAPIClient,
		SessionService:    sessionService,
		AttemptLimiter:    attemptLimiter,
		SessionClosers:    sessionClosers,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// SignIn returns the signed cookie token and the stored session.
func (uc *authUsecase) SignIn(ctx context.Context, request *requests.SignIn) (string, *models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.SignIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("authUsecase.SignIn validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", nil, exceptions.ErrInputValidation(err)
	}

	if uc.AttemptLimiter != nil {
		allowed, retryAfter, err := uc.AttemptLimiter.Allow(ctx, request.Email)
		if err != nil {
			return "", nil, err
		}
		if !allowed {
			uc.Log.Warn("authUsecase.SignIn attempts over quota",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Duration("retry_after", retryAfter),
			)
			return "", nil, exceptions.ErrTooManySignInAttempts(retryAfter)
		}
	}

	user, apiToken, err := uc.GobarberAPIClient.CreateSession(ctx, &requests.GobarberCreateSession{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		return "", nil, err
	}

	session, err := uc.SessionService.CreateSession(ctx, *user, apiToken)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.App.SessionLifetime())
	if err != nil {
		uc.Log.Error("authUsecase.SignIn error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", nil, err
	}

	uc.Log.Info("authUsecase.SignIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return token, session, nil
}

func (uc *authUsecase) CurrentSession(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

func (uc *authUsecase) CurrentUser(ctx context.Context) (*models.User, bool) {
	session, ok := uc.CurrentSession(ctx)
	if !ok {
		return nil, false
	}
	return &session.User, true
}

// SignOut ends the current session. Signing out without a session is a no-op.
func (uc *authUsecase) SignOut(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	session, ok := uc.CurrentSession(ctx)
	if !ok {
		return nil
	}

	var errs []error
	if err := uc.SessionService.DeleteSession(ctx, session.SessionID); err != nil {
		errs = append(errs, err)
	}
	for _, closer := range uc.SessionClosers {
		if err := closer.Close(ctx, session.SessionID); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		uc.Log.Error("authUsecase.SignOut error releasing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.SignOut succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return nil
}
