// Package service holds the business rules: identifier validation,
// ownership checks, merge-patching and media replacement. Storage and media
// errors are translated into the sentinels below.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tubeline/config"
	"tubeline/database"
	"tubeline/models"
)

var (
	// ErrInvalidArgument is a malformed or missing input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is a required entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is a uniqueness violation.
	ErrConflict = errors.New("conflict")
	// ErrUnauthenticated is a missing or bad credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is an authenticated caller acting on someone else's entity.
	ErrForbidden = errors.New("forbidden")
	// ErrInternal is a storage or media failure.
	ErrInternal = errors.New("internal")
)

// ArgError describes which input was rejected. It matches ErrInvalidArgument.
type ArgError struct {
	Field  string
	Reason string
}

func (e *ArgError) Error() string { return e.Field + " " + e.Reason }

func (e *ArgError) Is(target error) bool { return target == ErrInvalidArgument }

func invalid(op, field, reason string) error {
	return fmt.Errorf("%s: %w", op, &ArgError{Field: field, Reason: reason})
}

type Service struct {
	storage Storage
	media   Media
	cfg     *config.Config

	releases sync.WaitGroup
}

func New(storage Storage, media Media, cfg *config.Config) *Service {
	return &Service{
		storage: storage,
		media:   media,
		cfg:     cfg,
	}
}

// Wait blocks until background media releases have finished.
func (s *Service) Wait() {
	s.releases.Wait()
}

// Ping reports whether the storage is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}

func parseID(op, field, hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, invalid(op, field, "is required")
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, invalid(op, field, "is not a valid id")
	}

	return id, nil
}

// parseOptionalID treats an empty value as absent.
func parseOptionalID(op, field, hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}

	id, err := parseID(op, field, hex)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func storageErr(lg *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, database.ErrConflict):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	default:
		lg.Error("storage_failed", slog.Any("err", err))
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}

// limitOrDefault maps n<=0 to the default and caps at the maximum.
func (s *Service) limitOrDefault(n int64) int64 {
	if n <= 0 {
		return s.cfg.Limits.Default
	}
	if n > s.cfg.Limits.Max {
		return s.cfg.Limits.Max
	}
	return n
}

// release runs fn in the background on a detached context. Failures are
// logged only.
func (s *Service) release(lg *slog.Logger, what string, fn func(ctx context.Context) error) {
	timeout := s.cfg.Media.ReleaseTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	s.releases.Add(1)
	go func() {
		defer s.releases.Done()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			lg.Warn("media_release_failed", slog.String("what", what), slog.Any("err", err))
			return
		}
		lg.Debug("media_released", slog.String("what", what))
	}()
}

func (s *Service) releasePublicID(lg *slog.Logger, ref *models.MediaRef) {
	if ref == nil || ref.PublicID == "" {
		return
	}
	kind := models.MediaKind(ref.ResourceType)
	if kind == "" {
		kind = models.MediaImage
	}
	id := ref.PublicID
	s.release(lg, id, func(ctx context.Context) error {
		return s.media.DestroyByPublicID(ctx, id, kind)
	})
}

func (s *Service) releaseRef(lg *slog.Logger, ref models.MediaRef) {
	if ref.PublicID == "" && ref.Link() == "" {
		return
	}
	what := ref.PublicID
	if what == "" {
		what = ref.Link()
	}
	s.release(lg, what, func(ctx context.Context) error {
		return s.media.DestroyByRef(ctx, ref)
	})
}

// releaseURL releases a file of which only the delivery URL was stored.
func (s *Service) releaseURL(lg *slog.Logger, url string, kind models.MediaKind) {
	if url == "" {
		return
	}
	s.releaseRef(lg, models.MediaRef{URL: url, ResourceType: string(kind)})
}

func (s *Service) upload(ctx context.Context, lg *slog.Logger, op string, kind models.MediaKind, f models.File) (*models.MediaRef, error) {
	ref, err := s.media.Upload(ctx, kind, f)
	if err != nil {
		lg.Error("media_upload_failed", slog.String("kind", string(kind)), slog.String("file", f.Filename), slog.Any("err", err))
		return nil, fmt.Errorf("%s: upload %s: %w", op, kind, ErrInternal)
	}
	return ref, nil
}

// kindOf picks the media kind from a content type.
func kindOf(f models.File) models.MediaKind {
	if strings.HasPrefix(f.ContentType, "video/") {
		return models.MediaVideo
	}
	return models.MediaImage
}
