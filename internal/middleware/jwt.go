package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/service"
)

// Context keys set by AdminAuth.
const (
	AdminUsernameKey = "admin_username"
	AdminClaimsKey   = "admin_claims"
)

// AdminAuth returns a middleware that requires a valid admin bearer token.
func AdminAuth(adminService service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		abort := func(key string) {
			message := i18n.GetTranslator().Translate(key, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}

		// Extract token from "Bearer <token>"
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := adminService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(AdminUsernameKey, claims.Username)
		c.Set(AdminClaimsKey, claims)

		c.Next()
	}
}

// GetAdminUsername returns the admin authenticated by AdminAuth, if any.
func GetAdminUsername(c *gin.Context) string {
	if v, exists := c.Get(AdminUsernameKey); exists {
		if username, ok := v.(string); ok {
			return username
		}
	}
	return ""
}
