package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tubeline/service"
)

func (h *Handler) ListVideos(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	videos, err := h.svc.ListVideos(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "videos fetched successfully")
}

// GetVideo serves the player: id, title and the file reference.
func (h *Handler) GetVideo(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	v, err := h.svc.VideoPlayer(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, v, "video fetched successfully")
}

func (h *Handler) VideoPage(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	page, err := h.svc.VideoPage(ctx, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, page, "video page fetched successfully")
}

func (h *Handler) LikeAndSubscription(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	out, err := h.svc.LikeAndSubscription(ctx, c.Param("id"), c.Query("userId"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, out, "like and subscription fetched successfully")
}

func (h *Handler) ChannelVideos(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	videos, err := h.svc.ChannelVideos(ctx, c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "channel videos fetched successfully")
}

func (h *Handler) VideoStats(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	st, err := h.svc.VideoStats(ctx, c.Param("id"), c.Query("owner"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, st, "video stats fetched successfully")
}

func (h *Handler) VideoUserStatus(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	st, err := h.svc.VideoStatus(ctx, c.Param("id"), c.Query("owner"), c.Query("userId"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, st, "video status fetched successfully")
}

// UploadVideo takes form fields title, description and duration (seconds)
// and the files video and thumbnail.
func (h *Handler) UploadVideo(c *gin.Context) {
	video, closeVideo, err := openFile(c, "video")
	defer closeVideo()
	if err != nil {
		formError(c, err)
		return
	}
	thumb, closeThumb, err := openFile(c, "thumbnail")
	defer closeThumb()
	if err != nil {
		formError(c, err)
		return
	}
	duration, err := formFloat(c, "duration")
	if err != nil {
		badRequest(c, "duration must be a number")
		return
	}

	ctx, cancel := h.uploadCtx(c)
	defer cancel()

	v, err := h.svc.UploadVideo(ctx, service.UploadVideoInput{
		Owner:       caller(c),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Duration:    duration,
		Video:       video,
		Thumbnail:   thumb,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, v, "video uploaded successfully")
}

func (h *Handler) UpdateVideo(c *gin.Context) {
	thumb, closeThumb, err := openFile(c, "thumbnail")
	defer closeThumb()
	if err != nil {
		formError(c, err)
		return
	}
	duration, err := formFloat(c, "duration")
	if err != nil {
		badRequest(c, "duration must be a number")
		return
	}

	ctx, cancel := h.uploadCtx(c)
	defer cancel()

	v, err := h.svc.UpdateVideo(ctx, service.UpdateVideoInput{
		ID:          c.Param("id"),
		Caller:      caller(c),
		Title:       formText(c, "title"),
		Description: formText(c, "description"),
		Duration:    duration,
		Thumbnail:   thumb,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, v, "video updated successfully")
}

func (h *Handler) DeleteVideo(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.DeleteVideo(ctx, c.Param("id"), caller(c)); err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "video deleted successfully")
}
