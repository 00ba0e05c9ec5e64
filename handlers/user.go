package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tubeline/service"
)

func (h *Handler) CurrentUser(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	u, err := h.svc.CurrentUser(ctx, caller(c))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, u, "current user fetched successfully")
}

// UpdateProfile takes form fields fullName and about and optional files
// avatar and coverImage.
func (h *Handler) UpdateProfile(c *gin.Context) {
	avatar, closeAvatar, err := openFile(c, "avatar")
	defer closeAvatar()
	if err != nil {
		formError(c, err)
		return
	}
	cover, closeCover, err := openFile(c, "coverImage")
	defer closeCover()
	if err != nil {
		formError(c, err)
		return
	}

	ctx, cancel := h.uploadCtx(c)
	defer cancel()

	u, err := h.svc.UpdateProfile(ctx, service.UpdateProfileInput{
		ID:         c.Param("id"),
		Caller:     caller(c),
		FullName:   formText(c, "fullName"),
		About:      formText(c, "about"),
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, u, "profile updated successfully")
}

func (h *Handler) UsernameExists(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.UsernameExists(ctx, c.Param("username")); err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"exists": true}, "username exists")
}

func (h *Handler) PublicProfile(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	p, err := h.svc.PublicProfile(ctx, c.Param("channelId"), c.Query("currentUser"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, p, "profile fetched successfully")
}

func (h *Handler) UserData(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	u, err := h.svc.UserData(ctx, c.Param("userId"))
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, u, "user data fetched successfully")
}
