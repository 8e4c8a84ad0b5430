package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key the auth middleware stores the caller
// identity under.
const userIDKey = "user_id"

// requireUser extracts the caller identity from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy). Requests with no identity are rejected.
func requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.GetHeader("X-Forwarded-User")
		if user == "" {
			user = c.GetHeader("X-Forwarded-Email")
		}
		if user == "" {
			user = c.GetHeader("X-Remote-User")
		}
		if user == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(userIDKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}
