package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createCommentRequest struct {
	Target  string `json:"target" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type updateCommentRequest struct {
	UpdatedComment string `json:"updatedComment" binding:"required"`
}

func (h *Handler) ListComments(c *gin.Context) {
	h.listComments(c, c.Param("target"), c.Param("id"))
}

func (h *Handler) listComments(c *gin.Context, target, id string) {
	limit, ok := limitQuery(c)
	if !ok {
		badRequest(c, "limit must be a non-negative integer")
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.svc.ListComments(ctx, target, id, limit)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, out, "comments fetched successfully")
}

func (h *Handler) CountComments(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.svc.CountComments(ctx, c.Param("target"), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, out, "comment count fetched successfully")
}

// CreateComment reads {target, comment}; target is the id of the post or
// video named by the :target path segment.
func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.svc.CreateComment(ctx, c.Param("target"), caller(c), req.Target, req.Comment)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, out, "comment added successfully")
}

func (h *Handler) UpdateComment(c *gin.Context) {
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.svc.UpdateComment(ctx, c.Param("target"), caller(c), c.Param("commentId"), req.UpdatedComment)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, out, "comment updated successfully")
}

func (h *Handler) DeleteComment(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.DeleteComment(ctx, c.Param("target"), caller(c), c.Param("commentId")); err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "comment deleted successfully")
}
