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

func (s *Store) Subscribe(ctx context.Context, subscriber, channel primitive.ObjectID) (*models.Subscription, error) {
	const op = "database/Subscribe"

	filter := bson.D{{Key: "subscriber", Value: subscriber}, {Key: "channel", Value: channel}}
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now()}}}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var sub models.Subscription
	if err := s.subscriptions.FindOneAndUpdate(ctx, filter, update, opts).Decode(&sub); err != nil {
		return nil, translate(op, err)
	}

	return &sub, nil
}

func (s *Store) Unsubscribe(ctx context.Context, subscriber, channel primitive.ObjectID) error {
	const op = "database/Unsubscribe"

	res, err := s.subscriptions.DeleteOne(ctx, bson.D{{Key: "subscriber", Value: subscriber}, {Key: "channel", Value: channel}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

// SubscriptionOf returns nil when subscriber does not follow channel.
func (s *Store) SubscriptionOf(ctx context.Context, subscriber, channel primitive.ObjectID) (*models.Subscription, error) {
	const op = "database/SubscriptionOf"

	var sub models.Subscription
	err := s.subscriptions.FindOne(ctx, bson.D{{Key: "subscriber", Value: subscriber}, {Key: "channel", Value: channel}}).Decode(&sub)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &sub, nil
}

func (s *Store) IsSubscribed(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	const op = "database/IsSubscribed"

	ok, err := exists(ctx, s.subscriptions, bson.D{{Key: "subscriber", Value: subscriber}, {Key: "channel", Value: channel}})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}
