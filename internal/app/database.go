// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/circuitbreaker"
	"github.com/guttosm/pizzeria-service/internal/middleware"
	"github.com/guttosm/pizzeria-service/internal/repository"
	"github.com/guttosm/pizzeria-service/internal/service"
	"github.com/rs/zerolog/log"
)

const databaseCloseTimeout = 5 * time.Second

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	LoggingService     service.LoggingService
	LogsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects the MongoDB audit log sink.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	logsCB := circuitbreaker.New(breakerConfig(cfg, "mongodb-logs"))
	logsRepo := repository.NewGuardedLogStore(repository.NewLogsRepository(db), logsCB)
	loggingService := service.NewLoggingService(logsRepo)

	// Request and audit entries are batched off the request path
	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())

	return &DatabaseComponents{
		DB:                 db,
		LoggingService:     loggingService,
		LogsCircuitBreaker: logsCB,
	}
}

// Close flushes pending log entries and disconnects from MongoDB.
func (d *DatabaseComponents) Close() {
	if d == nil || d.DB == nil {
		return
	}
	middleware.StopAsyncLogger()

	ctx, cancel := context.WithTimeout(context.Background(), databaseCloseTimeout)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

// breakerConfig applies the configured thresholds to a named breaker.
// Unset values keep the defaults.
func breakerConfig(cfg config.DatabaseConfig, name string) circuitbreaker.Config {
	cbCfg := circuitbreaker.DefaultConfig()
	cbCfg.Name = name
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreakerTimeout
	}
	return cbCfg
}
