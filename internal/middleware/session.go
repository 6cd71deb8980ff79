package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/service"
)

const (
	// SessionIDHeader carries the customer session id in both directions.
	SessionIDHeader = "X-Session-ID"
	// SessionKey is the context key of the resolved *service.Session.
	SessionKey = "session"
)

// SessionProvider resolves customer sessions by id.
type SessionProvider interface {
	GetOrCreate(id string) (*service.Session, bool)
}

// Session resolves the customer session named by the X-Session-ID header,
// creating one when the header is missing, unknown or malformed. The
// effective id is echoed back in the response header.
func Session(sessions SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, _ := sessions.GetOrCreate(c.GetHeader(SessionIDHeader))

		c.Set(SessionKey, s)
		c.Header(SessionIDHeader, s.ID)
		c.Next()
	}
}

// GetSession returns the session resolved by the Session middleware.
func GetSession(c *gin.Context) *service.Session {
	if v, exists := c.Get(SessionKey); exists {
		if s, ok := v.(*service.Session); ok {
			return s
		}
	}
	return nil
}

// GetSessionID returns the id of the resolved session, or "".
func GetSessionID(c *gin.Context) string {
	if s := GetSession(c); s != nil {
		return s.ID
	}
	return ""
}
