package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tubeline/logctx"
)

// Recover turns a panic into a 500 envelope. The panic value is logged only.
func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := c.Request.Context()
				logctx.From(ctx).LogAttrs(ctx, slog.LevelError, "panic",
					slog.String("path", c.Request.URL.Path),
					slog.Any("reason", rec),
				)
				abort(c, http.StatusInternalServerError, "something went wrong")
			}
		}()
		c.Next()
	}
}
