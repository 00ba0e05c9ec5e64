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

// Comments on posts and on videos share one shape; the target picks the
// collection and the reference field.

func (s *Store) InsertComment(ctx context.Context, t models.Target, c *models.Comment) error {
	const op = "database/InsertComment"

	ts := now()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = ts
	c.UpdatedAt = ts

	if _, err := s.comments(t).InsertOne(ctx, c); err != nil {
		return translate(op, err)
	}

	return nil
}

func (s *Store) Comment(ctx context.Context, t models.Target, id primitive.ObjectID) (*models.Comment, error) {
	const op = "database/Comment"

	var c models.Comment
	if err := s.comments(t).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&c); err != nil {
		return nil, translate(op, err)
	}

	return &c, nil
}

func (s *Store) UpdateComment(ctx context.Context, t models.Target, id primitive.ObjectID, text string) (*models.Comment, error) {
	const op = "database/UpdateComment"

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "comment", Value: text},
		{Key: "updatedAt", Value: now()},
	}}}

	var c models.Comment
	if err := s.comments(t).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&c); err != nil {
		return nil, translate(op, err)
	}

	return &c, nil
}

func (s *Store) DeleteComment(ctx context.Context, t models.Target, id primitive.ObjectID) (*models.Comment, error) {
	const op = "database/DeleteComment"

	var c models.Comment
	if err := s.comments(t).FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&c); err != nil {
		return nil, translate(op, err)
	}

	return &c, nil
}

// ListComments returns the newest comments of one target with the author
// joined on. Sorting happens before the limit.
func (s *Store) ListComments(ctx context.Context, t models.Target, target primitive.ObjectID, limit int64) ([]models.CommentView, error) {
	const op = "database/ListComments"

	pipeline := mongo.Pipeline{
		matchStage(bson.D{{Key: t.Field(), Value: target}}),
		newestFirst(),
		limitStage(limit),
		lookupStage(usersCollection, "user", "_id", "userArr"),
		addFieldsStage(bson.D{{Key: "commenter", Value: bson.D{
			{Key: "userId", Value: firstOf("$userArr._id")},
			{Key: "fullName", Value: firstOf("$userArr.fullName")},
			{Key: "username", Value: firstOf("$userArr.username")},
			{Key: "avatar", Value: firstOf("$userArr.avatar")},
		}}}),
		unsetStage("userArr"),
	}

	cursor, err := s.comments(t).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}
	defer cursor.Close(ctx)

	out := make([]models.CommentView, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}

// CountComments leaves TotalComment nil when the target has no comments.
func (s *Store) CountComments(ctx context.Context, t models.Target, target primitive.ObjectID) (models.CommentCount, error) {
	const op = "database/CountComments"

	n, err := s.countWhere(ctx, s.comments(t), bson.D{{Key: t.Field(), Value: target}})
	if err != nil {
		return models.CommentCount{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.CommentCount{TotalComment: n}, nil
}
