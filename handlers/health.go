package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is liveness only.
func (h *Handler) Health(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"status": "ok"}, "ok")
}

// Ready pings the database.
func (h *Handler) Ready(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.Ping(ctx); err != nil {
		respond(c, http.StatusServiceUnavailable, nil, "database unavailable")
		return
	}

	respond(c, http.StatusOK, gin.H{"status": "ready"}, "ready")
}
