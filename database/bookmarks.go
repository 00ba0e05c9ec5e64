package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tubeline/models"
)

// AddBookmark is idempotent: saving a post twice keeps the first record.
func (s *Store) AddBookmark(ctx context.Context, user, post primitive.ObjectID) (*models.Bookmark, error) {
	const op = "database/AddBookmark"

	filter := bson.D{{Key: "user", Value: user}, {Key: "post", Value: post}}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "bookmark", Value: true}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now()}}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var b models.Bookmark
	if err := s.bookmarks.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b); err != nil {
		return nil, translate(op, err)
	}

	return &b, nil
}

func (s *Store) RemoveBookmark(ctx context.Context, user, post primitive.ObjectID) error {
	const op = "database/RemoveBookmark"

	res, err := s.bookmarks.DeleteOne(ctx, bson.D{{Key: "user", Value: user}, {Key: "post", Value: post}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

// ListBookmarks returns the user's saved posts, newest bookmark first. Posts
// deleted since they were saved are skipped.
func (s *Store) ListBookmarks(ctx context.Context, user primitive.ObjectID, limit int64) ([]models.BookmarkView, error) {
	const op = "database/ListBookmarks"

	cursor, err := s.bookmarks.Aggregate(ctx, bookmarksPipeline(user, limit))
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}
	defer cursor.Close(ctx)

	out := make([]models.BookmarkView, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}

// bookmarksPipeline limits only after dropping bookmarks of deleted posts,
// so dead bookmarks never take a slot.
func bookmarksPipeline(user primitive.ObjectID, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		matchStage(bson.D{{Key: "user", Value: user}, {Key: "bookmark", Value: true}}),
		newestFirst(),
		lookupStage(postsCollection, "post", "_id", "postDocs"),
		matchStage(bson.D{{Key: "postDocs.0", Value: bson.D{{Key: "$exists", Value: true}}}}),
		limitStage(limit),
		bson.D{{Key: "$set", Value: bson.D{{Key: "post", Value: firstOf("$postDocs")}}}},
	}
	pipeline = append(pipeline, withChannel("post.owner", "post.channel")...)
	pipeline = append(pipeline, unsetStage("postDocs"))

	return pipeline
}
