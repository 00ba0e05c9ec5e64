package service

import (
	"context"

	"tubeline/logctx"
	"tubeline/models"
)

// SetLike records a like (liked=true) or an explicit unlike.
func (s *Service) SetLike(ctx context.Context, target, user, id string, liked bool) (*models.Like, error) {
	const op = "service/relations/SetLike"

	lg := logctx.With(ctx, op, "target", target, "id", id)

	t, err := parseTarget(op, target)
	if err != nil {
		return nil, err
	}
	userID, err := parseID(op, "user", user)
	if err != nil {
		return nil, err
	}
	targetID, err := parseID(op, "id", id)
	if err != nil {
		return nil, err
	}

	if err := s.targetExists(ctx, t, targetID); err != nil {
		return nil, storageErr(lg, op, err)
	}

	l, err := s.storage.SetLike(ctx, t, userID, targetID, liked)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return l, nil
}

func (s *Service) RemoveLike(ctx context.Context, target, user, id string) error {
	const op = "service/relations/RemoveLike"

	t, err := parseTarget(op, target)
	if err != nil {
		return err
	}
	userID, err := parseID(op, "user", user)
	if err != nil {
		return err
	}
	targetID, err := parseID(op, "id", id)
	if err != nil {
		return err
	}

	if err := s.storage.RemoveLike(ctx, t, userID, targetID); err != nil {
		return storageErr(logctx.With(ctx, op), op, err)
	}

	return nil
}

func (s *Service) AddBookmark(ctx context.Context, user, post string) (*models.Bookmark, error) {
	const op = "service/relations/AddBookmark"

	lg := logctx.With(ctx, op, "post", post)

	userID, err := parseID(op, "user", user)
	if err != nil {
		return nil, err
	}
	postID, err := parseID(op, "postId", post)
	if err != nil {
		return nil, err
	}

	if _, err := s.storage.PostByID(ctx, postID); err != nil {
		return nil, storageErr(lg, op, err)
	}

	b, err := s.storage.AddBookmark(ctx, userID, postID)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return b, nil
}

func (s *Service) RemoveBookmark(ctx context.Context, user, post string) error {
	const op = "service/relations/RemoveBookmark"

	userID, err := parseID(op, "user", user)
	if err != nil {
		return err
	}
	postID, err := parseID(op, "postId", post)
	if err != nil {
		return err
	}

	if err := s.storage.RemoveBookmark(ctx, userID, postID); err != nil {
		return storageErr(logctx.With(ctx, op), op, err)
	}

	return nil
}

func (s *Service) ListBookmarks(ctx context.Context, user string, limit int64) ([]models.BookmarkView, error) {
	const op = "service/relations/ListBookmarks"

	userID, err := parseID(op, "userId", user)
	if err != nil {
		return nil, err
	}

	out, err := s.storage.ListBookmarks(ctx, userID, s.limitOrDefault(limit))
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return out, nil
}

// Subscribe is idempotent. A user cannot subscribe to themselves.
func (s *Service) Subscribe(ctx context.Context, subscriber, channel string) (*models.Subscription, error) {
	const op = "service/relations/Subscribe"

	lg := logctx.With(ctx, op, "channel", channel)

	subID, err := parseID(op, "subscriber", subscriber)
	if err != nil {
		return nil, err
	}
	channelID, err := parseID(op, "channelId", channel)
	if err != nil {
		return nil, err
	}
	if subID == channelID {
		return nil, invalid(op, "channelId", "cannot be your own channel")
	}

	if _, err := s.storage.UserByID(ctx, channelID); err != nil {
		return nil, storageErr(lg, op, err)
	}

	sub, err := s.storage.Subscribe(ctx, subID, channelID)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return sub, nil
}

func (s *Service) Unsubscribe(ctx context.Context, subscriber, channel string) error {
	const op = "service/relations/Unsubscribe"

	subID, err := parseID(op, "subscriber", subscriber)
	if err != nil {
		return err
	}
	channelID, err := parseID(op, "channelId", channel)
	if err != nil {
		return err
	}
	if subID == channelID {
		return invalid(op, "channelId", "cannot be your own channel")
	}

	if err := s.storage.Unsubscribe(ctx, subID, channelID); err != nil {
		return storageErr(logctx.With(ctx, op), op, err)
	}

	return nil
}
