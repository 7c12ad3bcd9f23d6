package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teerthankarjewels/storefront_api/internal/models"
	"github.com/teerthankarjewels/storefront_api/internal/utils"
)

// sessionResolver validates a session token and loads the session record.
type sessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}

// SessionMiddleware authenticates requests with a gateway session JWT and
// injects the session (and with it the backend token) into the context.
type SessionMiddleware struct {
	auth sessionResolver
}

// NewSessionMiddleware constructs a SessionMiddleware.
func NewSessionMiddleware(auth sessionResolver) *SessionMiddleware {
	return &SessionMiddleware{auth: auth}
}

// Handle returns a gin middleware that enforces an authenticated session.
func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "AUTH_REQUIRED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "AUTH_REQUIRED", "Invalid authorization header")
			c.Abort()
			return
		}

		session, err := m.auth.ResolveSession(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, utils.ErrSessionExpired) {
				utils.Error(c, 401, "SESSION_EXPIRED", "Session has expired, please login again")
			} else {
				utils.Error(c, 401, "AUTH_REQUIRED", "Invalid or expired token")
			}
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Set("user_id", session.UserID)
		c.Next()
	}
}

// GetSession returns the authenticated session from context.
func GetSession(c *gin.Context) *models.Session {
	v, _ := c.Get("session")
	if v == nil {
		return nil
	}
	return v.(*models.Session)
}
