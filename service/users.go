package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tubeline/logctx"
	"tubeline/models"
)

type UpdateProfileInput struct {
	ID         string
	Caller     string
	FullName   *string
	About      *string
	Avatar     *models.File
	CoverImage *models.File
}

func (s *Service) CurrentUser(ctx context.Context, id string) (*models.User, error) {
	return s.user(ctx, "service/users/CurrentUser", id)
}

// UserData is the public view of a user; the email never leaves through it.
func (s *Service) UserData(ctx context.Context, id string) (*models.PublicUser, error) {
	u, err := s.user(ctx, "service/users/UserData", id)
	if err != nil {
		return nil, err
	}

	pub := u.Public()
	return &pub, nil
}

func (s *Service) user(ctx context.Context, op, id string) (*models.User, error) {
	userID, err := parseID(op, "userId", id)
	if err != nil {
		return nil, err
	}

	u, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return u, nil
}

// UsernameExists returns ErrNotFound when nobody holds the username.
func (s *Service) UsernameExists(ctx context.Context, username string) error {
	const op = "service/users/UsernameExists"

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return invalid(op, "username", "is required")
	}

	ok, err := s.storage.UsernameExists(ctx, username)
	if err != nil {
		return storageErr(logctx.With(ctx, op), op, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

// PublicProfile adds isSubscribed when a well-formed viewer id is given.
// A malformed viewer id is ignored rather than rejected.
func (s *Service) PublicProfile(ctx context.Context, channel, viewer string) (*models.ChannelProfile, error) {
	const op = "service/users/PublicProfile"

	lg := logctx.With(ctx, op, "channel", channel)

	channelID, err := parseID(op, "channelId", channel)
	if err != nil {
		return nil, err
	}

	p, err := s.storage.ChannelProfile(ctx, channelID)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	viewerID, err := parseOptionalID(op, "currentUser", viewer)
	if err != nil || viewerID == nil {
		return p, nil
	}

	subscribed, err := s.storage.IsSubscribed(ctx, *viewerID, channelID)
	if err != nil {
		lg.Warn("subscription_check_failed", slog.Any("err", err))
		return p, nil
	}
	p.IsSubscribed = &subscribed

	return p, nil
}

// UpdateProfile merge-patches the caller's own profile. New avatar or cover
// files are uploaded before the write; replaced files are released after it.
func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	const op = "service/users/UpdateProfile"

	lg := logctx.With(ctx, op, "id", in.ID)

	userID, err := parseID(op, "id", in.ID)
	if err != nil {
		return nil, err
	}
	callerID, err := parseID(op, "caller", in.Caller)
	if err != nil {
		return nil, err
	}
	if userID != callerID {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	patch := models.UserPatch{About: in.About}
	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" {
			return nil, invalid(op, "fullName", "cannot be empty")
		}
		patch.FullName = &name
	}
	if patch.Empty() && in.Avatar == nil && in.CoverImage == nil {
		return nil, invalid(op, "body", "has nothing to update")
	}

	existing, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	var uploaded []*models.MediaRef
	rollback := func() {
		for _, ref := range uploaded {
			s.releaseRef(lg, *ref)
		}
	}

	if in.Avatar != nil {
		ref, err := s.upload(ctx, lg, op, models.MediaImage, *in.Avatar)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, ref)
		link := ref.Link()
		patch.Avatar = &link
	}
	if in.CoverImage != nil {
		ref, err := s.upload(ctx, lg, op, models.MediaImage, *in.CoverImage)
		if err != nil {
			rollback()
			return nil, err
		}
		uploaded = append(uploaded, ref)
		link := ref.Link()
		patch.CoverImage = &link
	}

	updated, err := s.storage.UpdateUser(ctx, userID, patch)
	if err != nil {
		rollback()
		return nil, storageErr(lg, op, err)
	}

	if patch.Avatar != nil {
		s.releaseURL(lg, existing.Avatar, models.MediaImage)
	}
	if patch.CoverImage != nil {
		s.releaseURL(lg, existing.CoverImage, models.MediaImage)
	}

	return updated, nil
}
