package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tubeline/logctx"
	"tubeline/models"
)

type CreatePostInput struct {
	Owner   string
	Content string
	Title   string
	Image   *models.File
	Media   []models.File
}

// UpdatePostInput is a merge-patch: nil fields are left untouched.
type UpdatePostInput struct {
	ID      string
	Caller  string
	Content *string
	Title   *string
	Image   *models.File
}

func (s *Service) ListPosts(ctx context.Context) ([]models.PostView, error) {
	const op = "service/posts/ListPosts"

	posts, err := s.storage.ListPosts(ctx)
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return posts, nil
}

func (s *Service) ListPostsByOwner(ctx context.Context, owner string) ([]models.PostView, error) {
	const op = "service/posts/ListPostsByOwner"

	ownerID, err := parseID(op, "userId", owner)
	if err != nil {
		return nil, err
	}

	posts, err := s.storage.ListPostsByOwner(ctx, ownerID)
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return posts, nil
}

func (s *Service) Post(ctx context.Context, id string) (*models.Post, error) {
	const op = "service/posts/Post"

	postID, err := parseID(op, "id", id)
	if err != nil {
		return nil, err
	}

	p, err := s.storage.PostByID(ctx, postID)
	if err != nil {
		return nil, storageErr(logctx.With(ctx, op), op, err)
	}

	return p, nil
}

// PostStats never fails on a count: missing counts are simply absent.
// owner is optional; without it there is no subscriber count.
func (s *Service) PostStats(ctx context.Context, id, owner string) (models.Stats, error) {
	const op = "service/posts/PostStats"

	postID, err := parseID(op, "id", id)
	if err != nil {
		return models.Stats{}, err
	}
	ownerID, err := parseOptionalID(op, "owner", owner)
	if err != nil {
		return models.Stats{}, err
	}

	return s.storage.PostStats(ctx, postID, ownerID), nil
}

func (s *Service) PostStatus(ctx context.Context, id, owner, user string) (models.Status, error) {
	const op = "service/posts/PostStatus"

	postID, err := parseID(op, "id", id)
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

	return s.storage.PostStatus(ctx, postID, ownerID, userID), nil
}

// CreatePost uploads the files first. If any upload fails nothing is stored
// and files already uploaded for this post are released.
func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const op = "service/posts/CreatePost"

	lg := logctx.With(ctx, op, "owner", in.Owner)

	ownerID, err := parseID(op, "owner", in.Owner)
	if err != nil {
		return nil, err
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return nil, invalid(op, "content", "is required")
	}

	p := &models.Post{
		Owner:   ownerID,
		Content: in.Content,
		Title:   strings.TrimSpace(in.Title),
		Media:   make([]models.MediaRef, 0, len(in.Media)),
	}

	if in.Image != nil {
		ref, err := s.upload(ctx, lg, op, models.MediaImage, *in.Image)
		if err != nil {
			return nil, err
		}
		p.Image = ref
	}

	for _, f := range in.Media {
		ref, err := s.upload(ctx, lg, op, kindOf(f), f)
		if err != nil {
			s.releasePost(lg, p)
			return nil, err
		}
		p.Media = append(p.Media, *ref)
	}

	if err := s.storage.InsertPost(ctx, p); err != nil {
		s.releasePost(lg, p)
		return nil, storageErr(lg, op, err)
	}

	lg.Info("post_created", slog.String("id", p.ID.Hex()))
	return p, nil
}

func (s *Service) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	const op = "service/posts/UpdatePost"

	lg := logctx.With(ctx, op, "id", in.ID)

	postID, err := parseID(op, "id", in.ID)
	if err != nil {
		return nil, err
	}
	callerID, err := parseID(op, "caller", in.Caller)
	if err != nil {
		return nil, err
	}

	patch := models.PostPatch{Title: in.Title}
	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		if content == "" {
			return nil, invalid(op, "content", "cannot be empty")
		}
		patch.Content = &content
	}
	if patch.Empty() && in.Image == nil {
		return nil, invalid(op, "body", "has nothing to update")
	}

	existing, err := s.storage.PostByID(ctx, postID)
	if err != nil {
		return nil, storageErr(lg, op, err)
	}
	if existing.Owner != callerID {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if in.Image != nil {
		ref, err := s.upload(ctx, lg, op, models.MediaImage, *in.Image)
		if err != nil {
			return nil, err
		}
		patch.Image = ref
	}

	updated, err := s.storage.UpdatePost(ctx, postID, patch)
	if err != nil {
		s.releasePublicID(lg, patch.Image)
		return nil, storageErr(lg, op, err)
	}

	if patch.Image != nil {
		s.releasePublicID(lg, existing.Image)
	}

	return updated, nil
}

// DeletePost removes the post, then releases its image and media.
func (s *Service) DeletePost(ctx context.Context, id, caller string) error {
	const op = "service/posts/DeletePost"

	lg := logctx.With(ctx, op, "id", id)

	postID, err := parseID(op, "id", id)
	if err != nil {
		return err
	}
	callerID, err := parseID(op, "caller", caller)
	if err != nil {
		return err
	}

	existing, err := s.storage.PostByID(ctx, postID)
	if err != nil {
		return storageErr(lg, op, err)
	}
	if existing.Owner != callerID {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	deleted, err := s.storage.DeletePost(ctx, postID)
	if err != nil {
		return storageErr(lg, op, err)
	}

	s.releasePost(lg, deleted)
	lg.Info("post_deleted")
	return nil
}

func (s *Service) releasePost(lg *slog.Logger, p *models.Post) {
	s.releasePublicID(lg, p.Image)
	for i := range p.Media {
		s.releasePublicID(lg, &p.Media[i])
	}
}
