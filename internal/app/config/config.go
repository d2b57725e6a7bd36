package config

import (
	"fmt"
	"gobarber-dashboard/internal/pkg/constvars"
	"gobarber-dashboard/internal/pkg/utils"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                           utils.GetEnvString("APP_PORT", ":8080"),
			Version:                        utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			Locale:                         utils.GetEnvString("APP_LOCALE", constvars.LocalePortugueseBrazil),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:        utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			LoginSessionExpiredTimeInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			SecureCookie:                   utils.GetEnvBool("APP_SECURE_COOKIE", false),
			AllowedOrigins:                 utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			SignInMaxAttempts:              utils.GetEnvInt("APP_SIGN_IN_MAX_ATTEMPTS", 5),
			SignInWindowInSeconds:          utils.GetEnvInt("APP_SIGN_IN_WINDOW_IN_SECONDS", 60),
			DashboardSweepCronSpec:         utils.GetEnvString("APP_DASHBOARD_SWEEP_CRON_SPEC", "@every 10m"),
		},
		Gobarber: AppGobarber{
			BaseUrl:                 strings.TrimRight(utils.GetEnvString("GOBARBER_API_BASE_URL", "http://localhost:3333"), "/"),
			RequestTimeoutInSeconds: utils.GetEnvInt("GOBARBER_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxRequestsPerSecond:    utils.GetEnvInt("GOBARBER_MAX_REQUESTS_PER_SECOND", 20),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", ""),
		},
	}
}

func (c *InternalConfig) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Gobarber.BaseUrl == "" {
		return fmt.Errorf("GOBARBER_API_BASE_URL is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	switch c.App.Locale {
	case constvars.LocalePortugueseBrazil, constvars.LocaleEnglishUS:
	default:
		return fmt.Errorf("unsupported APP_LOCALE %q", c.App.Locale)
	}
	if c.Gobarber.MaxRequestsPerSecond <= 0 {
		return fmt.Errorf("GOBARBER_MAX_REQUESTS_PER_SECOND must be positive")
	}
	return nil
}

func (a App) SessionLifetime() time.Duration {
	return time.Duration(a.LoginSessionExpiredTimeInHours) * time.Hour
}

func (a App) Location() *time.Location {
	location, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.Local
	}
	return location
}

func (a App) AllowedOriginList() []string {
	var origins []string
	for _, origin := range strings.Split(a.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
