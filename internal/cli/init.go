// Package cli consolidates the startup sequence shared by cmd/dukaan
// and cmd/kitchen-feed: env file loading, logging, and configuration.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"dukaan/internal/config"
	applog "dukaan/internal/log"
)

// Bootstrap loads the optional .env file, installs the default logger
// for the given component, then loads and validates configuration.
// Exits the process when the configuration is invalid.
func Bootstrap(component string) (*applog.Logger, *config.Config) {
	// .env is for local development; absence is fine in production.
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Component: component})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return logger, cfg
}
