package controllers

import (
	"context"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/exceptions"
	"gobarber-dashboard/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type HealthController struct {
	Log     *zap.Logger
	Redis   *redis.Client
	Version string
}

func NewHealthController(logger *zap.Logger, redisClient *redis.Client, version string) *HealthController {
	return &HealthController{
		Log:     logger,
		Redis:   redisClient,
		Version: version,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := ctrl.Redis.Ping(ctx).Err(); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRedisGet(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthOKMessage, map[string]string{
		"version": ctrl.Version,
	})
}
