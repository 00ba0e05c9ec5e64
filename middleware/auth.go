package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tubeline/logctx"
	"tubeline/service"
)

// JWTAuth accepts "Authorization: Bearer <token>" or ?token= and stores the
// token's userId claim under UserIDKey.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// CORS preflight
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		raw, ok := bearer(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "authorization token required")
			return
		}

		claims, err := service.ParseToken(secret, raw)
		if err != nil {
			logctx.From(c.Request.Context()).Debug("jwt_rejected", "err", err)
			abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func bearer(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		token := c.Query("token")
		return token, token != ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
