package main

import (
	"context"
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/delivery/http/controllers"
	"gobarber-dashboard/internal/app/delivery/http/middlewares"
	"gobarber-dashboard/internal/app/delivery/http/routers"
	"gobarber-dashboard/internal/app/delivery/http/views"
	"gobarber-dashboard/internal/app/drivers/database"
	"gobarber-dashboard/internal/app/drivers/logger"
	"gobarber-dashboard/internal/app/services/core/auth"
	"gobarber-dashboard/internal/app/services/core/dashboard"
	"gobarber-dashboard/internal/app/services/core/session"
	"gobarber-dashboard/internal/app/services/shared/gobarber"
	"gobarber-dashboard/internal/app/services/shared/ratelimiter"
	"gobarber-dashboard/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	if err := internalConfig.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	sweeper, err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}
	sweeper.Start(context.Background())

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	sweeper.Stop()

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) (*dashboard.IdleSweeper, error) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Gobarber API
	gobarberAPIClient := gobarber.NewGobarberAPIClient(
		bootstrap.InternalConfig.Gobarber,
		bootstrap.InternalConfig.App.Location(),
		bootstrap.Logger,
	)

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)

	// Dashboard
	selectionRepository := dashboard.NewSelectionRedisRepository(redisRepository)
	dashboardUsecase := dashboard.NewDashboardUsecase(gobarberAPIClient, selectionRepository, bootstrap.InternalConfig, bootstrap.Logger)

	// Auth
	signInLimiter := ratelimiter.NewSignInLimiter(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(gobarberAPIClient, sessionService, signInLimiter, bootstrap.InternalConfig, bootstrap.Logger, dashboardUsecase)

	// Views
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, authUsecase, sessionService)

	authController := controllers.NewAuthController(bootstrap.Logger, bootstrap.InternalConfig, authUsecase, renderer)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, bootstrap.InternalConfig, authUsecase, dashboardUsecase, renderer)
	healthController := controllers.NewHealthController(bootstrap.Logger, bootstrap.Redis, bootstrap.InternalConfig.App.Version)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, authController, dashboardController, healthController)

	// Workers
	sweeper := dashboard.NewIdleSweeper(bootstrap.Logger, bootstrap.InternalConfig, dashboardUsecase)
	return sweeper, nil
}
