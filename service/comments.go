package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tubeline/logctx"
	"tubeline/models"
)

// Comments work the same for every target; only the collection differs.

func parseTarget(op, raw string) (models.Target, error) {
	t, ok := models.ParseTarget(raw)
	if !ok {
		return "", invalid(op, "target", "must be post or video")
	}
	return t, nil
}

// targetExists returns ErrNotFound when the commented or liked entity is gone.
func (s *Service) targetExists(ctx context.Context, t models.Target, id primitive.ObjectID) error {
	var err error
	switch t {
	case models.TargetPost:
		_, err = s.storage.PostByID(ctx, id)
	case models.TargetVideo:
		_, err = s.storage.Video(ctx, id)
	}
	return err
}

func (s *Service) CreateComment(ctx context.Context, target, user, id, text string) (*models.Comment, error) {
	const op = "service/comments/CreateComment"

	lg := logctx.With(ctx, op, "target", target, "id", id)

	t, err := parseTarget(op, target)
	if err != nil {
		return nil, err
	}
	userID, err := parseID(op, "user", user)
	if err != nil {
		return nil, err
	}
	targetID, err := parseID(op, "target id", id)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid(op, "comment", "is required")
	}

	if err := s.targetExists(ctx, t, targetID); err != nil {
		return nil, storageErr(lg, op, err)
	}

	c := models.NewComment(t, userID, targetID, text)
	if err := s.storage.InsertComment(ctx, t, &c); err != nil {
		return nil, storageErr(lg, op, err)
	}

	lg.Debug("comment_created", slog.String("comment_id", c.ID.Hex()))
	return &c, nil
}

func (s *Service) UpdateComment(ctx context.Context, target, caller, id, text string) (*models.Comment, error) {
	const op = "service/comments/UpdateComment"

	lg := logctx.With(ctx, op, "target", target, "comment_id", id)

	t, err := parseTarget(op, target)
	if err != nil {
		return nil, err
	}
	callerID, err := parseID(op, "caller", caller)
	if err != nil {
		return nil, err
	}
	commentID, err := parseID(op, "commentId", id)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid(op, "updatedComment", "cannot be empty")
	}

	if err := s.ownComment(ctx, lg, op, t, commentID, callerID); err != nil {
		return nil, err
	}

	c, err := s.storage.UpdateComment(ctx, t, commentID, text)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}

	return c, nil
}

func (s *Service) DeleteComment(ctx context.Context, target, caller, id string) error {
	const op = "service/comments/DeleteComment"

	lg := logctx.With(ctx, op, "target", target, "comment_id", id)

	t, err := parseTarget(op, target)
	if err != nil {
		return err
	}
	callerID, err := parseID(op, "caller", caller)
	if err != nil {
		return err
	}
	commentID, err := parseID(op, "commentId", id)
	if err != nil {
		return err
	}

	if err := s.ownComment(ctx, lg, op, t, commentID, callerID); err != nil {
		return err
	}

	if _, err := s.storage.DeleteComment(ctx, t, commentID); err != nil {
		return storageErr(lg, op, err)
	}

	return nil
}

func (s *Service) ownComment(ctx context.Context, lg *slog.Logger, op string, t models.Target, id, caller primitive.ObjectID) error {
	c, err := s.storage.Comment(ctx, t, id)
	if err != nil {
		return storageErr(lg, op, err)
	}
	if c.User != caller {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}
	return nil
}

// ListComments returns the newest comments first. limit<=0 means the
// configured default.
func (s *Service) ListComments(ctx context.Context, target, id string, limit int64) ([]models.CommentView, error) {
	const op = "service/comments/ListComments"

	t, err := parseTarget(op, target)
	if err != nil {
		return nil, err
	}
	targetID, err := parseID(op, "id", id)
	if err != nil {
		return nil, err
	}

	out, err := s.storage.ListComments(ctx, t, targetID, s.limitOrDefault(limit))
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return out, nil
}

func (s *Service) CountComments(ctx context.Context, target, id string) (models.CommentCount, error) {
	const op = "service/comments/CountComments"

	t, err := parseTarget(op, target)
	if err != nil {
		return models.CommentCount{}, err
	}
	targetID, err := parseID(op, "id", id)
	if err != nil {
		return models.CommentCount{}, err
	}

	out, err := s.storage.CountComments(ctx, t, targetID)
	if err != nil {
		return models.CommentCount{}, storageErr(logctx.With(ctx, op), op, err)
	}

	return out, nil
}
