package middlewares

import (
	"net/http"
	"strings"

	"FaithNest/repositories"
	"FaithNest/services"

	"github.com/gin-gonic/gin"
)

// Context keys set by Session and read by controllers.
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
	ContextToken    = "session_token"
)

// SessionCookie is the cookie fallback for clients that do not send an
// Authorization header.
const SessionCookie = "session_token"

// Session resolves the caller's opaque token and stashes the user id and
// role in the request context. It never aborts: a missing or invalid token
// just leaves the request anonymous, and each route's Require* guard decides
// whether that is acceptable.
func Session(sessions *services.SessionService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, err := sessions.Resolve(token)
		if err != nil {
			c.Next()
			return
		}
		user, err := users.FindByID(userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireUser aborts anonymous requests with 401.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 401 when anonymous and 403 when the session's role
// does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		if got, _ := c.Get(ContextUserRole); got != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func CurrentToken(c *gin.Context) string {
	v, ok := c.Get(ContextToken)
	if !ok {
		return ""
	}
	token, _ := v.(string)
	return token
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
