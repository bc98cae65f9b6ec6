package main

import (
	"realty/config"
	"realty/di"
	"realty/helper"
	"realty/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Realty Viewings API
// @version 1.0
// @description Property viewing bookings and visitor reminders.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	if cfg.Scheduler.Enable {
		http.Scheduler.Start()
	} else {
		log.Info().Msg("Scheduler disabled, reminders run only on demand")
	}

	http.Serve()
}
