package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tubeline/models"
)

// SetLike records a like (liked=true) or an explicit unlike (liked=false).
// There is at most one record per user and target.
func (s *Store) SetLike(ctx context.Context, t models.Target, user, target primitive.ObjectID, liked bool) (*models.Like, error) {
	const op = "database/SetLike"

	ts := now()
	filter := bson.D{{Key: "user", Value: user}, {Key: t.Field(), Value: target}}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "like", Value: liked}, {Key: "updatedAt", Value: ts}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: ts}}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var l models.Like
	if err := s.likes(t).FindOneAndUpdate(ctx, filter, update, opts).Decode(&l); err != nil {
		return nil, translate(op, err)
	}

	return &l, nil
}

func (s *Store) RemoveLike(ctx context.Context, t models.Target, user, target primitive.ObjectID) error {
	const op = "database/RemoveLike"

	res, err := s.likes(t).DeleteOne(ctx, bson.D{{Key: "user", Value: user}, {Key: t.Field(), Value: target}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

// LikeOf returns the viewer's like record, or nil when there is none.
func (s *Store) LikeOf(ctx context.Context, t models.Target, user, target primitive.ObjectID) (*models.Like, error) {
	const op = "database/LikeOf"

	var l models.Like
	err := s.likes(t).FindOne(ctx, bson.D{{Key: "user", Value: user}, {Key: t.Field(), Value: target}}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &l, nil
}
