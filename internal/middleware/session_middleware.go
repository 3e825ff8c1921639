package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ltlab/internship-portal/internal/pkg/auth"
)

// SessionEmailKey is the context key the authenticated email is stored under.
const SessionEmailKey = "sessionEmail"

// SessionMiddleware guards routes behind the browser session.
type SessionMiddleware struct {
	sessions *auth.SessionService
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(sessions *auth.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession redirects to the login page unless the request carries a
// valid session cookie.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := m.sessions.ValidateToken(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(SessionEmailKey, claims.Email)
		c.Next()
	}
}
