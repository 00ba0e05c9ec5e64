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

func (s *Store) InsertUser(ctx context.Context, u *models.User) error {
	const op = "database/InsertUser"

	ts := now()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = ts
	u.UpdatedAt = ts

	if _, err := s.users.InsertOne(ctx, u); err != nil {
		return translate(op, err)
	}

	return nil
}

func (s *Store) UserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findUser(ctx, "database/UserByID", bson.D{{Key: "_id", Value: id}})
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findUser(ctx, "database/UserByUsername", bson.D{{Key: "username", Value: username}})
}

// UserByLogin matches either the username or the email.
func (s *Store) UserByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.findUser(ctx, "database/UserByLogin", bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: login}},
		bson.D{{Key: "email", Value: login}},
	}}})
}

func (s *Store) findUser(ctx context.Context, op string, filter bson.D) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, translate(op, err)
	}
	return &u, nil
}

func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	const op = "database/UsernameExists"

	n, err := s.users.CountDocuments(ctx, bson.D{{Key: "username", Value: username}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n > 0, nil
}

func (s *Store) UpdateUser(ctx context.Context, id primitive.ObjectID, patch models.UserPatch) (*models.User, error) {
	const op = "database/UpdateUser"

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.User
	err := s.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: userSet(patch)}},
		opts,
	).Decode(&u)
	if err != nil {
		return nil, translate(op, err)
	}

	return &u, nil
}

// ChannelProfile returns a user's public fields with subscriber and video
// counts joined on.
func (s *Store) ChannelProfile(ctx context.Context, channel primitive.ObjectID) (*models.ChannelProfile, error) {
	const op = "database/ChannelProfile"

	pipeline := mongo.Pipeline{
		matchStage(bson.D{{Key: "_id", Value: channel}}),
		lookupStage(subscriptionsCollection, "_id", "channel", "subsArr"),
		lookupStage(videosCollection, "_id", "owner", "videosArr"),
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "fullName", Value: 1},
			{Key: "username", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "about", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "stats", Value: bson.D{
				{Key: "subscribers", Value: sizeOf("$subsArr")},
				{Key: "videos", Value: sizeOf("$videosArr")},
			}},
		}}},
	}

	cursor, err := s.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var p models.ChannelProfile
	if err := cursor.Decode(&p); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return &p, nil
}

func userSet(p models.UserPatch) bson.D {
	set := bson.D{{Key: "updatedAt", Value: now()}}
	if p.FullName != nil {
		set = append(set, bson.E{Key: "fullName", Value: *p.FullName})
	}
	if p.About != nil {
		set = append(set, bson.E{Key: "about", Value: *p.About})
	}
	if p.Avatar != nil {
		set = append(set, bson.E{Key: "avatar", Value: *p.Avatar})
	}
	if p.CoverImage != nil {
		set = append(set, bson.E{Key: "coverImage", Value: *p.CoverImage})
	}
	return set
}
