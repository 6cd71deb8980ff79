//go:build !integration

package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected zerolog.Level
	}{
		{"default log level", "", zerolog.InfoLevel},
		{"debug", "debug", zerolog.DebugLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"error", "error", zerolog.ErrorLevel},
		{"unknown level falls back to info", "verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.logLevel)
			t.Setenv("LOG_PRETTY", "false")

			InitializeLogger()
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestPrettyLogs(t *testing.T) {
	tests := []struct {
		name     string
		pretty   string
		env      string
		expected bool
	}{
		{"explicit true", "true", "production", true},
		{"explicit false in development", "false", "development", false},
		{"development default", "", "development", true},
		{"production default", "", "production", false},
		{"invalid value uses env default", "yes please", "production", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_PRETTY", tt.pretty)
			t.Setenv("APP_ENV", tt.env)

			assert.Equal(t, tt.expected, prettyLogs())
		})
	}
}
