package app

import (
	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/broker"
	"github.com/guttosm/pizzeria-service/internal/circuitbreaker"
	"github.com/rs/zerolog/log"
)

// BrokerComponents holds the order event publisher.
type BrokerComponents struct {
	Publisher *broker.Publisher
}

// InitializeBroker connects the AMQP order event publisher. The breaker
// shares the database thresholds. Returns nil if the broker is disabled or
// unreachable.
func InitializeBroker(cfg config.BrokerConfig, dbCfg config.DatabaseConfig) *BrokerComponents {
	if !cfg.Enabled {
		return nil
	}

	publisher, err := broker.Dial(cfg, circuitbreaker.New(breakerConfig(dbCfg, "broker")))
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to broker - continuing without order events")
		return nil
	}

	log.Info().Str("exchange", cfg.Exchange).Msg("Connected to broker")
	return &BrokerComponents{Publisher: publisher}
}

// Close closes the broker connection.
func (b *BrokerComponents) Close() {
	if b == nil || b.Publisher == nil {
		return
	}
	if err := b.Publisher.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close broker connection")
	}
}
