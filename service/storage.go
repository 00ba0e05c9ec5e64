package service

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tubeline/models"
)

// Storage is the document store as the service sees it. Required lookups
// return database.ErrNotFound; unique violations return database.ErrConflict.
type Storage interface {
	Ping(ctx context.Context) error

	ListPosts(ctx context.Context) ([]models.PostView, error)
	ListPostsByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.PostView, error)
	PostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	InsertPost(ctx context.Context, p *models.Post) error
	UpdatePost(ctx context.Context, id primitive.ObjectID, patch models.PostPatch) (*models.Post, error)
	DeletePost(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	PostStats(ctx context.Context, post primitive.ObjectID, owner *primitive.ObjectID) models.Stats
	PostStatus(ctx context.Context, post primitive.ObjectID, owner, user *primitive.ObjectID) models.Status

	ListVideos(ctx context.Context) ([]models.VideoView, error)
	ListVideosByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.VideoView, error)
	Video(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	VideoPlayer(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	VideoPage(ctx context.Context, id primitive.ObjectID) (*models.VideoPage, error)
	InsertVideo(ctx context.Context, v *models.Video) error
	UpdateVideo(ctx context.Context, id primitive.ObjectID, patch models.VideoPatch) (*models.Video, error)
	DeleteVideo(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	VideoStats(ctx context.Context, video primitive.ObjectID, owner *primitive.ObjectID) models.Stats
	VideoStatus(ctx context.Context, video primitive.ObjectID, owner, user *primitive.ObjectID) models.Status
	LikeAndSubscription(ctx context.Context, video primitive.ObjectID, user *primitive.ObjectID) (*models.LikeAndSubscription, error)

	InsertUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	UserByLogin(ctx context.Context, login string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) (*models.User, error)
	ChannelProfile(ctx context.Context, channel primitive.ObjectID) (*models.ChannelProfile, error)

	InsertComment(ctx context.Context, t models.Target, c *models.Comment) error
	Comment(ctx context.Context, t models.Target, id primitive.ObjectID) (*models.Comment, error)
	UpdateComment(ctx context.Context, t models.Target, id primitive.ObjectID, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, t models.Target, id primitive.ObjectID) (*models.Comment, error)
	ListComments(ctx context.Context, t models.Target, target primitive.ObjectID, limit int64) ([]models.CommentView, error)
	CountComments(ctx context.Context, t models.Target, target primitive.ObjectID) (models.CommentCount, error)

	SetLike(ctx context.Context, t models.Target, user, target primitive.ObjectID, liked bool) (*models.Like, error)
	RemoveLike(ctx context.Context, t models.Target, user, target primitive.ObjectID) error

	AddBookmark(ctx context.Context, user, post primitive.ObjectID) (*models.Bookmark, error)
	RemoveBookmark(ctx context.Context, user, post primitive.ObjectID) error
	ListBookmarks(ctx context.Context, user primitive.ObjectID, limit int64) ([]models.BookmarkView, error)

	Subscribe(ctx context.Context, subscriber, channel primitive.ObjectID) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, subscriber, channel primitive.ObjectID) error
	IsSubscribed(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error)
}

// Media uploads files and releases them. Posts release by public id,
// videos and profile images by their stored reference.
type Media interface {
	Upload(ctx context.Context, kind models.MediaKind, f models.File) (*models.MediaRef, error)
	DestroyByPublicID(ctx context.Context, publicID string, kind models.MediaKind) error
	DestroyByRef(ctx context.Context, ref models.MediaRef) error
}
