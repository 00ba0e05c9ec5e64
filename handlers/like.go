package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type likeRequest struct {
	// Pointer so that an explicit false is accepted by the required check.
	Like *bool `json:"like" binding:"required"`
}

func (h *Handler) SetLike(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	l, err := h.svc.SetLike(ctx, c.Param("target"), caller(c), c.Param("id"), *req.Like)
	if err != nil {
		fail(c, err)
		return
	}

	msg := "liked successfully"
	if !l.Like {
		msg = "unliked successfully"
	}
	respond(c, http.StatusOK, l, msg)
}

func (h *Handler) RemoveLike(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.RemoveLike(ctx, c.Param("target"), caller(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "like removed successfully")
}
