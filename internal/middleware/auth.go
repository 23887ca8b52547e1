package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "session"

// Gin context keys set for authenticated admin requests.
const (
	ContextAdminID       = "adminID"
	ContextAdminUsername = "adminUsername"
)

// SessionValidator is the slice of the auth service the gate needs.
type SessionValidator interface {
	ValidateSession(token string) (*model.SessionClaims, error)
}

type AuthMiddleware struct {
	sessions SessionValidator
}

func NewAuthMiddleware(sessions SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAdmin gates admin routes. Anonymous requests redirect to the login
// entry point, carrying the originally requested destination so a successful
// login can land back on it.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.sessionClaims(c)
		if !ok {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, "/login?next="+next)
			c.Abort()
			return
		}

		c.Set(ContextAdminID, claims.AdminID.String())
		c.Set(ContextAdminUsername, claims.Username)
		c.Next()
	}
}

// Authenticated reports whether the request carries a valid session. Used by
// the login page to skip the form for signed-in admins.
func (m *AuthMiddleware) Authenticated(c *gin.Context) bool {
	_, ok := m.sessionClaims(c)
	return ok
}

func (m *AuthMiddleware) sessionClaims(c *gin.Context) (*model.SessionClaims, bool) {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		return nil, false
	}
	claims, err := m.sessions.ValidateSession(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}
