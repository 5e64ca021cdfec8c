package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/di"
	"todos/helper"
	"todos/shared/logger"
	"todos/shared/timezone"
)

// @title Todos API
// @version 1.0
// @description Multi-tenant todo items with attachment uploads.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	logger.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Configure(cfg)
	timezone.Init(cfg.App.Timezone)

	if cfg.Store.Driver == config.StoreDriverPostgres && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	server, cleanup, err := di.InitializeService(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	defer cleanup()

	if err := server.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped with an error")
	}
}
