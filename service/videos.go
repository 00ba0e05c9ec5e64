package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tubeline/logctx"
	"tubeline/models"
)

type UploadVideoInput struct {
	Owner       string
	Title       string
	Description string
	Duration    *float64
	Video       *models.File
	Thumbnail   *models.File
}

type UpdateVideoInput struct {
	ID          string
	Caller      string
	Title       *string
	Description *string
	Duration    *float64
	Thumbnail   *models.File
}

func (s *Service) ListVideos(ctx context.Context) ([]models.VideoView, error) {
	const op = "service/videos/ListVideos"

	videos, err := s.storage.ListVideos(ctx)
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return videos, nil
}

// ChannelVideos resolves the username first; an unknown channel is not found.
func (s *Service) ChannelVideos(ctx context.Context, username string) ([]models.VideoView, error) {
	const op = "service/videos/ChannelVideos"

	lg := logctx.With(ctx, op, "username", username)

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, invalid(op, "username", "is required")
	}

	u, err := s.storage.UserByUsername(ctx, username)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	videos, err := s.storage.ListVideosByOwner(ctx, u.ID)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return videos, nil
}

// VideoPlayer returns the id, title and file reference.
func (s *Service) VideoPlayer(ctx context.Context, id string) (*models.Video, error) {
	const op = "service/videos/VideoPlayer"

	videoID, err := parseID(op, "id", id)
	if err != nil {
		return nil, err
	}

	v, err := s.storage.VideoPlayer(ctx, videoID)
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return v, nil
}

func (s *Service) VideoPage(ctx context.Context, id string) (*models.VideoPage, error) {
	const op = "service/videos/VideoPage"

	videoID, err := parseID(op, "id", id)
	if err != nil {
		return nil, err
	}

	page, err := s.storage.VideoPage(ctx, videoID)
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return page, nil
}

func (s *Service) VideoStats(ctx context.Context, id, owner string) (models.Stats, error) {
	const op = "service/videos/VideoStats"

	videoID, err := parseID(op, "id", id)
	if err != nil {
		return models.Stats{}, err
	}
	ownerID, err := parseOptionalID(op, "owner", owner)
	if err != nil {
		return models.Stats{}, err
	}

	return s.storage.VideoStats(ctx, videoID, ownerID), nil
}

func (s *Service) VideoStatus(ctx context.Context, id, owner, user string) (models.Status, error) {
	const op = "service/videos/VideoStatus"

	videoID, err := parseID(op, "id", id)
	if err != nil {
		return models.Status{}, err
	}
	ownerID, err := parseOptionalID(op, "owner", owner)
	if err != nil {
		return models.Status{}, err
	}
	userID, err := parseOptionalID(op, "userId", user)
	if err != nil {
		return models.Status{}, err
	}

	return s.storage.VideoStatus(ctx, videoID, ownerID, userID), nil
}

func (s *Service) LikeAndSubscription(ctx context.Context, id, user string) (*models.LikeAndSubscription, error) {
	const op = "service/videos/LikeAndSubscription"

	videoID, err := parseID(op, "id", id)
	if err != nil {
		return nil, err
	}
	userID, err := parseOptionalID(op, "userId", user)
	if err != nil {
		return nil, err
	}

	out, err := s.storage.LikeAndSubscription(ctx, videoID, userID)
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return out, nil
}

// UploadVideo needs every field and both files. The video is uploaded
// first; if the thumbnail or the insert fails, what was uploaded is released.
func (s *Service) UploadVideo(ctx context.Context, in UploadVideoInput) (*models.Video, error) {
	const op = "service/videos/UploadVideo"

	lg := logctx.With(ctx, op, "owner", in.Owner)

	ownerID, err := parseID(op, "owner", in.Owner)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.Title == "":
		return nil, invalid(op, "title", "is required")
	case in.Description == "":
		return nil, invalid(op, "description", "is required")
	case in.Duration == nil:
		return nil, invalid(op, "duration", "is required")
	case *in.Duration < 0:
		return nil, invalid(op, "duration", "must not be negative")
	case in.Video == nil:
		return nil, invalid(op, "video", "file is required")
	case in.Thumbnail == nil:
		return nil, invalid(op, "thumbnail", "file is required")
	}

	videoRef, err := s.upload(ctx, lg, op, models.MediaVideo, *in.Video)
	if err != nil {
		return nil, err
	}

	thumbRef, err := s.upload(ctx, lg, op, models.MediaImage, *in.Thumbnail)
	if err != nil {
		s.releaseRef(lg, *videoRef)
		return nil, err
	}

	v := &models.Video{
		Owner:       ownerID,
		Title:       in.Title,
		Description: in.Description,
		Duration:    *in.Duration,
		Video:       videoRef,
		Thumbnail:   thumbRef.Link(),
	}

	if err := s.storage.InsertVideo(ctx, v); err != nil {
		s.releaseRef(lg, *videoRef)
		s.releaseRef(lg, *thumbRef)
		return nil, storageErr(lg, op, err)
	}

	lg.Info("video_uploaded", slog.String("id", v.ID.Hex()))
	return v, nil
}

// UpdateVideo merge-patches the metadata and optionally replaces the
// thumbnail. The result does not carry the file reference.
func (s *Service) UpdateVideo(ctx context.Context, in UpdateVideoInput) (*models.Video, error) {
	const op = "service/videos/UpdateVideo"

	lg := logctx.With(ctx, op, "id", in.ID)

	videoID, err := parseID(op, "id", in.ID)
	if err != nil {
		return nil, err
	}
	callerID, err := parseID(op, "caller", in.Caller)
	if err != nil {
		return nil, err
	}
	if in.Duration != nil && *in.Duration < 0 {
		return nil, invalid(op, "duration", "must not be negative")
	}

	patch := models.VideoPatch{
		Title:       in.Title,
		Description: in.Description,
		Duration:    in.Duration,
	}
	if patch.Empty() && in.Thumbnail == nil {
		return nil, invalid(op, "body", "has nothing to update")
	}

	existing, err := s.storage.Video(ctx, videoID)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}
	if existing.Owner != callerID {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	var thumbRef *models.MediaRef
	if in.Thumbnail != nil {
		thumbRef, err = s.upload(ctx, lg, op, models.MediaImage, *in.Thumbnail)
		if err != nil {
			return nil, err
		}
		link := thumbRef.Link()
		patch.Thumbnail = &link
	}

	updated, err := s.storage.UpdateVideo(ctx, videoID, patch)
	if err != nil {
		if thumbRef != nil {
			s.releaseRef(lg, *thumbRef)
		}
		return nil, storageErr(lg, op, err)
	}

	if thumbRef != nil {
		s.releaseURL(lg, existing.Thumbnail, models.MediaImage)
	}

	return updated, nil
}

// DeleteVideo removes the video, then releases its file and thumbnail.
func (s *Service) DeleteVideo(ctx context.Context, id, caller string) error {
	const op = "service/videos/DeleteVideo"

	lg := logctx.With(ctx, op, "id", id)

	videoID, err := parseID(op, "id", id)
	if err != nil {
		return err
	}
	callerID, err := parseID(op, "caller", caller)
	if err != nil {
		return err
	}

	existing, err := s.storage.Video(ctx, videoID)
	if err != nil {
		return storageErr(lg, op, err)
	}
	if existing.Owner != callerID {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	deleted, err := s.storage.DeleteVideo(ctx, videoID)
	if err != nil {
		return storageErr(lg, op, err)
	}

	if deleted.Video != nil {
		s.releaseRef(lg, *deleted.Video)
	}
	s.releaseURL(lg, deleted.Thumbnail, models.MediaImage)

	lg.Info("video_deleted")
	return nil
}
