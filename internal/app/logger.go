// Package app provides logger initialization.
package app

import (
	"os"
	"strconv"

	"github.com/guttosm/pizzeria-service/internal/logger"
)

// InitializeLogger configures the global logger from LOG_LEVEL, LOG_PRETTY
// and SERVICE_NAME. Console output is the default in development.
func InitializeLogger() {
	logger.Init(logger.Options{
		Level:   os.Getenv("LOG_LEVEL"),
		Pretty:  prettyLogs(),
		Service: os.Getenv("SERVICE_NAME"),
	})
}

func prettyLogs() bool {
	if v, err := strconv.ParseBool(os.Getenv("LOG_PRETTY")); err == nil {
		return v
	}
	return os.Getenv("APP_ENV") == "development"
}
