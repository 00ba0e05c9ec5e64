package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListBookmarks(c *gin.Context) {
	limit, ok := limitQuery(c)
	if !ok {
		badRequest(c, "limit must be a non-negative integer")
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.svc.ListBookmarks(ctx, c.Param("userId"), limit)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, out, "bookmarks fetched successfully")
}

func (h *Handler) AddBookmark(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	b, err := h.svc.AddBookmark(ctx, caller(c), c.Param("postId"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, b, "post bookmarked successfully")
}

func (h *Handler) RemoveBookmark(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.RemoveBookmark(ctx, caller(c), c.Param("postId")); err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "bookmark removed successfully")
}
