package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tubeline/service"
)

func (h *Handler) ListPosts(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	posts, err := h.svc.ListPosts(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, posts, "posts fetched successfully")
}

func (h *Handler) UserPosts(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	posts, err := h.svc.ListPostsByOwner(ctx, c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, posts, "user posts fetched successfully")
}

func (h *Handler) GetPost(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.svc.Post(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, p, "post fetched successfully")
}

func (h *Handler) PostStats(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	st, err := h.svc.PostStats(ctx, c.Param("id"), c.Query("owner"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, st, "post stats fetched successfully")
}

func (h *Handler) PostUserStatus(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	st, err := h.svc.PostStatus(ctx, c.Param("id"), c.Query("owner"), c.Query("userId"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, st, "post status fetched successfully")
}

func (h *Handler) PostComments(c *gin.Context) {
	h.listComments(c, "post", c.Param("id"))
}

// CreatePost takes form fields content and title, an optional image file
// and any number of media files.
func (h *Handler) CreatePost(c *gin.Context) {
	image, closeImage, err := openFile(c, "image")
	defer closeImage()
	if err != nil {
		formError(c, err)
		return
	}
	media, closeMedia, err := openFiles(c, "media")
	defer closeMedia()
	if err != nil {
		formError(c, err)
		return
	}

	ctx, cancel := h.uploadCtx(c)
	defer cancel()

	p, err := h.svc.CreatePost(ctx, service.CreatePostInput{
		Owner:   caller(c),
		Content: c.PostForm("content"),
		Title:   c.PostForm("title"),
		Image:   image,
		Media:   media,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, p, "post created successfully")
}

func (h *Handler) UpdatePost(c *gin.Context) {
	image, closeImage, err := openFile(c, "image")
	defer closeImage()
	if err != nil {
		formError(c, err)
		return
	}

	ctx, cancel := h.uploadCtx(c)
	defer cancel()

	p, err := h.svc.UpdatePost(ctx, service.UpdatePostInput{
		ID:      c.Param("id"),
		Caller:  caller(c),
		Content: formText(c, "content"),
		Title:   formText(c, "title"),
		Image:   image,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, p, "post updated successfully")
}

func (h *Handler) DeletePost(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.DeletePost(ctx, c.Param("id"), caller(c)); err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "post deleted successfully")
}
