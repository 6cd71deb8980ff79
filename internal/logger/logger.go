// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultService is stamped on every entry unless Options.Service overrides it.
const DefaultService = "pizzeria-service"

// Options configures Init.
type Options struct {
	// Level is a zerolog level name; unknown or empty values mean info.
	Level string
	// Pretty switches to human readable console output.
	Pretty bool
	// Service names the process in every entry.
	Service string
	// Output defaults to stderr.
	Output io.Writer
}

// Init replaces the global logger.
func Init(opts Options) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	service := opts.Service
	if service == "" {
		service = DefaultService
	}
	log.Logger = zerolog.New(out).With().Timestamp().Str("service", service).Logger()
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return log.Logger
}

// ForRequest returns the global logger carrying the correlation ids of one
// HTTP request. Empty ids are omitted.
func ForRequest(requestID, sessionID string) zerolog.Logger {
	ctx := log.Logger.With()
	if requestID != "" {
		ctx = ctx.Str("request_id", requestID)
	}
	if sessionID != "" {
		ctx = ctx.Str("session_id", sessionID)
	}
	return ctx.Logger()
}
