package middleware

import "github.com/gin-gonic/gin"

// contextKey is the type used for values this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	// loggerCtxKey is the key under which the request-scoped logger is stored.
	loggerCtxKey = contextKey("logger")

	// userIDKey is the key under which the authenticated user's ID is stored.
	userIDKey = contextKey("userID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
