package main

import (
	"gobarber-dashboard/internal/app/config"
	"gobarber-dashboard/internal/app/delivery/cli"
	"gobarber-dashboard/internal/app/services/shared/gobarber"
	"os"
	"time"

	"go.uber.org/zap"
)

func main() {
	internalConfig := config.NewInternalConfig()

	log := zap.NewNop()
	if os.Getenv("SCHEDULE_DEBUG") != "" {
		if development, err := zap.NewDevelopment(); err == nil {
			log = development
		}
	}

	code := cli.Execute(cli.Dependencies{
		InternalConfig: internalConfig,
		Log:            log,
		Now:            time.Now,
		NewAPIClient:   gobarber.NewGobarberAPIClient,
	})
	_ = log.Sync()
	os.Exit(code)
}
