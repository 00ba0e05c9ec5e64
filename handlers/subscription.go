package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Subscribe(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	sub, err := h.svc.Subscribe(ctx, caller(c), c.Param("channelId"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, sub, "subscribed successfully")
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.Unsubscribe(ctx, caller(c), c.Param("channelId")); err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "unsubscribed successfully")
}
