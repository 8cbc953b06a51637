package bootstrap

import (
	"log/slog"

	"github.com/osse101/RecipeBook_Go/internal/config"
	"github.com/osse101/RecipeBook_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the app configuration.
// Source locations are only added in dev.
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.IsDev(),
	})

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingRecipeBook,
		"environment", cfg.Environment,
		"version", cfg.Version)
	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	return l
}
