package main

import (
	"github.com/rs/zerolog/log"
	"todolist/config"
	"todolist/di"
	"todolist/helper"
	"todolist/shared/logger"
	"todolist/shared/timezone"
)

// @title Todolist API
// @version 1.0
// @description Todo and sub-todo management with cookie based authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Load(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
