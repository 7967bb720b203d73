package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/robord1/macronutrient-tracker-api/utils"
)

const userIDKey = "userID"

// RequireAuth rejects any request without a valid, unexpired bearer token
// before the handler runs. On success the verified user id is stored in
// the request context for handlers to read via UserID.
func RequireAuth(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth. Calling it
// from a handler not behind RequireAuth is a programming error.
func UserID(c *gin.Context) uint {
	return c.MustGet(userIDKey).(uint)
}

// SetUserID seeds the context the way RequireAuth does; exported for
// handler tests.
func SetUserID(c *gin.Context, userID uint) {
	c.Set(userIDKey, userID)
}
