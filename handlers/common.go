// Package handlers translates HTTP requests into service calls and writes
// every response, errors included, as {status, data, message}.
package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tubeline/logctx"
	"tubeline/middleware"
	"tubeline/models"
	"tubeline/service"
)

type Response struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

type Handler struct {
	svc           *service.Service
	timeout       time.Duration
	uploadTimeout time.Duration
}

func New(svc *service.Service, timeout, uploadTimeout time.Duration) *Handler {
	return &Handler{svc: svc, timeout: timeout, uploadTimeout: uploadTimeout}
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{Status: status, Data: data, Message: message})
}

// fail maps service errors to HTTP. Internal details stay in the logs.
func fail(c *gin.Context, err error) {
	var ae *service.ArgError

	switch {
	case errors.As(err, &ae):
		respond(c, http.StatusBadRequest, nil, ae.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		respond(c, http.StatusBadRequest, nil, "invalid argument")
	case errors.Is(err, service.ErrUnauthenticated):
		respond(c, http.StatusUnauthorized, nil, "unauthenticated")
	case errors.Is(err, service.ErrForbidden):
		respond(c, http.StatusForbidden, nil, "you are not allowed to change this resource")
	case errors.Is(err, service.ErrNotFound):
		respond(c, http.StatusNotFound, nil, "not found")
	case errors.Is(err, service.ErrConflict):
		respond(c, http.StatusConflict, nil, "already exists")
	default:
		logctx.From(c.Request.Context()).Error("request_failed", "err", err)
		respond(c, http.StatusInternalServerError, nil, "something went wrong")
	}
}

func badRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, nil, message)
}

func (h *Handler) ctx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// uploadCtx is used by routes that send files to the media provider.
func (h *Handler) uploadCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.uploadTimeout)
}

func caller(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// limitQuery reads ?limit=; absent means 0 and lets the service default it.
func limitQuery(c *gin.Context) (int64, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// formText returns a pointer only when the field was sent, so that a
// present empty value can be told apart from an absent one.
func formText(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}

func formFloat(c *gin.Context, key string) (*float64, error) {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// formError answers a multipart body that could not be read: 413 when the
// body limit cut it off, 400 otherwise.
func formError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respond(c, http.StatusRequestEntityTooLarge, nil, "request body too large")
		return
	}
	badRequest(c, "malformed multipart body")
}

// openFiles collects the uploaded files for key. A request that is not
// multipart simply has no files. The caller must run the returned closer
// once the service call is done.
func openFiles(c *gin.Context, key string) ([]models.File, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	if form == nil || len(form.File[key]) == 0 {
		return nil, func() {}, nil
	}

	var opened []multipart.File
	closer := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	files := make([]models.File, 0, len(form.File[key]))
	for _, fh := range form.File[key] {
		f, err := fh.Open()
		if err != nil {
			closer()
			return nil, func() {}, err
		}
		opened = append(opened, f)
		files = append(files, models.File{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		})
	}

	return files, closer, nil
}

// openFile returns the first file for key, or nil when none was sent.
func openFile(c *gin.Context, key string) (*models.File, func(), error) {
	files, closer, err := openFiles(c, key)
	if err != nil || len(files) == 0 {
		return nil, closer, err
	}
	return &files[0], closer, nil
}
