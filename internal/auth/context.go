package auth

import "github.com/gin-gonic/gin"

// CurrentSession returns the session placed on the request by Middleware,
// or nil on unauthenticated requests.
func CurrentSession(c *gin.Context) *Session {
	if val, ok := c.Get(sessionContextKey); ok {
		if sess, ok := val.(*Session); ok {
			return sess
		}
	}
	return nil
}
