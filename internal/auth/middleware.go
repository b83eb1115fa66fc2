package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "auth.session"

// Middleware resolves the caller's session from the session cookie (or an
// Authorization bearer token) and aborts unauthenticated requests.
func Middleware(store *SessionStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
				token = strings.TrimPrefix(header, "Bearer ")
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireCapability gates a route on the caller's role.
func RequireCapability(cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil || !Authorize(sess.Role, cap) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
