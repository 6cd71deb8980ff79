package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/logger"
)

// ErrorHandler logs the errors handlers attach to the gin context and writes
// a localized 500 envelope when the handler failed without responding.
// Errors behind a 4xx response are client mistakes and log at warn level.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := GetRequestID(c)
		status := c.Writer.Status()
		written := c.Writer.Written()
		if !written {
			status = http.StatusInternalServerError
		}

		log := logger.ForRequest(requestID, GetSessionID(c))
		event := log.Error()
		msg := "Request failed"
		if status < http.StatusInternalServerError {
			event = log.Warn()
			msg = "Request rejected"
		}
		event.Strs("errors", c.Errors.Errors()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", status).
			Str("admin", GetAdminUsername(c)).
			Msg(msg)

		if !written {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
