package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"tubeline/logctx"
)

// Logger writes one "http" record per request using the request logger.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		logctx.From(ctx).LogAttrs(ctx, slog.LevelInfo, "http",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("dur", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}
