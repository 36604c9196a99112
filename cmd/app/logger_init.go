package main

import (
	"github.com/caseforge/caseforge/internal/config"
	"github.com/caseforge/caseforge/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only in dev, they are noise in production logs
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.Init(loggerConfig)
}
