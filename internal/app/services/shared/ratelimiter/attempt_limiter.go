package ratelimiter

import (
	"context"
	"fmt"
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/contracts"
	"gobarber-dashboard/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AttemptLimiter is a fixed-window counter stored in Redis. Each window has
// its own key, which expires one second after the window closes.
type AttemptLimiter struct {
	Redis       contracts.RedisRepository
	Group       string
	Window      time.Duration
	MaxAttempts int
	Now         func() time.Time
	Log         *zap.Logger
}

// NewSignInLimiter limits sign-in attempts per e-mail address.
func NewSignInLimiter(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) *AttemptLimiter {
	return &AttemptLimiter{
		Redis:       redisRepository,
		Group:       constvars.RedisKeySignInAttempts,
		Window:      time.Duration(internalConfig.App.SignInWindowInSeconds) * time.Second,
		MaxAttempts: internalConfig.App.SignInMaxAttempts,
		Now:         time.Now,
		Log:         logger,
	}
}

// Allow records one attempt against resource. A MaxAttempts of zero or less
// turns the limiter off.
func (l *AttemptLimiter) Allow(ctx context.Context, resource string) (bool, time.Duration, error) {
	if l.MaxAttempts <= 0 {
		return true, 0, nil
	}

	window := l.Window
	if window < time.Second {
		window = time.Minute
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	if resource == "" {
		return false, window, nil
	}

	now := l.Now().UTC()
	windowSec := int64(window / time.Second)
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", l.Group, resource, windowID)

	count, err := l.Redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		l.Log.Error("AttemptLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, 0, err
	}

	if count > l.MaxAttempts {
		nextWindow := time.Unix((windowID+1)*windowSec, 0)
		return false, nextWindow.Sub(now), nil
	}
	return true, 0, nil
}
