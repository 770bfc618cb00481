package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	"github.com/SageMyrloc/FinalProject/internal/service"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

// Keys set on the gin context for authenticated requests.
const (
	ContextUserID    = "user_id"
	ContextUsername  = "username"
	ContextSessionID = "session_id"
)

// SessionAuthenticator resolves a session token to a live session.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// Auth gates a route group on a valid session cookie. API requests are
// answered with 401 JSON, page requests are redirected to loginPath.
func Auth(authenticator SessionAuthenticator, loginPath string) gin.HandlerFunc {
	if authenticator == nil {
		panic("SessionAuthenticator cannot be nil for Auth middleware")
	}
	if loginPath == "" {
		loginPath = "/login/"
	}

	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			reject(c, loginPath)
			return
		}

		session, err := authenticator.Authenticate(c.Request.Context(), token)
		if errors.Is(err, service.ErrInternalServer) {
			// the session may well be valid; do not send the user back to login
			logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Auth middleware: session lookup failed")
			unavailable(c)
			return
		}
		if err != nil {
			logrus.WithError(err).WithField("path", c.Request.URL.Path).Debug("Auth middleware: session rejected")
			reject(c, loginPath)
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextUsername, session.Username)
		c.Set(ContextSessionID, session.ID)
		c.Next()
	}
}

func reject(c *gin.Context, loginPath string) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}

func unavailable(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An unexpected error occurred"})
		return
	}
	c.AbortWithStatus(http.StatusInternalServerError)
}

// UserID returns the authenticated user id set by Auth.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id > 0
}

// SessionID returns the id of the current session, or "".
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}

// Username returns the name of the logged in user, or "".
func Username(c *gin.Context) string {
	return c.GetString(ContextUsername)
}
