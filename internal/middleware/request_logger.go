package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/logger"
	"github.com/guttosm/pizzeria-service/internal/service"
	"github.com/rs/zerolog"
)

// probePrefixes are polled by orchestrators and scrapers. They log at debug
// level and never reach the audit store.
var probePrefixes = []string{"/healthz", "/readyz", "/metrics", "/swagger"}

func isProbe(path string) bool {
	for _, prefix := range probePrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestLogger writes one structured line per request, at a level derived
// from the status code, and copies customer and admin traffic into the
// audit store when loggingService is set.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		probe := isProbe(path)

		level := levelForStatus(status)
		if probe && level == zerolog.InfoLevel {
			level = zerolog.DebugLevel
		}

		requestID := GetRequestID(c)
		sessionID := GetSessionID(c)
		admin := GetAdminUsername(c)

		log := logger.ForRequest(requestID, sessionID)
		log.WithLevel(level).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status_code", status).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("admin", admin).
			Int("response_bytes", c.Writer.Size()).
			Msg("HTTP request")

		if loggingService == nil || probe {
			return
		}
		writeLogEntry(loggingService, &model.LogEntry{
			Timestamp:  start,
			Level:      getLogLevel(status),
			Message:    "HTTP request",
			RequestID:  requestID,
			Method:     c.Request.Method,
			Path:       path,
			StatusCode: status,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			SessionID:  sessionID,
			Actor:      admin,
		})
	}
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// getLogLevel is the audit store spelling of levelForStatus.
func getLogLevel(status int) string {
	return levelForStatus(status).String()
}
