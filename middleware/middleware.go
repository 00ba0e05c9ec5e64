// Package middleware holds the gin middleware chain: recover, request id,
// access log, metrics, rate limit, body limit and JWT auth.
package middleware

import (
	"github.com/gin-gonic/gin"
)

// UserIDKey is where JWTAuth stores the caller id; handlers read the same key.
const UserIDKey = "userId"

// abort writes the same {status, data, message} envelope the handlers use.
func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status":  status,
		"data":    nil,
		"message": message,
	})
}
