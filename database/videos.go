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

// ListVideos returns every video, newest first, with the channel summary and
// the count of positive likes. The file reference is left out of the list.
func (s *Store) ListVideos(ctx context.Context) ([]models.VideoView, error) {
	return s.listVideos(ctx, "database/ListVideos", nil)
}

func (s *Store) ListVideosByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.VideoView, error) {
	return s.listVideos(ctx, "database/ListVideosByOwner", bson.D{{Key: "owner", Value: owner}})
}

func (s *Store) listVideos(ctx context.Context, op string, filter bson.D) ([]models.VideoView, error) {
	pipeline := mongo.Pipeline{}
	if filter != nil {
		pipeline = append(pipeline, matchStage(filter))
	}
	pipeline = append(pipeline, newestFirst())
	pipeline = append(pipeline, withChannel("owner", "channel")...)
	pipeline = append(pipeline, withLikeCount(models.TargetVideo.LikeCollection(), models.TargetVideo.Field(), "likes")...)
	pipeline = append(pipeline, unsetStage("video"))

	cursor, err := s.videos.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}
	defer cursor.Close(ctx)

	out := make([]models.VideoView, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}

// VideoPage composes the detail view: owner block, like and unlike counts
// and the owner's subscriber count.
func (s *Store) VideoPage(ctx context.Context, id primitive.ObjectID) (*models.VideoPage, error) {
	const op = "database/VideoPage"

	pipeline := mongo.Pipeline{
		matchStage(bson.D{{Key: "_id", Value: id}}),
		lookupStage(usersCollection, "owner", "_id", "ownerArr"),
		lookupStage(models.TargetVideo.LikeCollection(), "_id", models.TargetVideo.Field(), "likesArr"),
		lookupStage(subscriptionsCollection, "owner", "channel", "subsArr"),
		addFieldsStage(bson.D{
			{Key: "channel", Value: bson.D{
				{Key: "channelId", Value: firstOf("$ownerArr._id")},
				{Key: "channelName", Value: firstOf("$ownerArr.fullName")},
				{Key: "channelAvatar", Value: firstOf("$ownerArr.avatar")},
				{Key: "channelUsername", Value: firstOf("$ownerArr.username")},
			}},
			{Key: "likeCount", Value: sizeWhere("$likesArr", "like", true)},
			{Key: "unlikeCount", Value: sizeWhere("$likesArr", "like", false)},
			{Key: "subscriber", Value: sizeOf("$subsArr")},
		}),
		unsetStage("ownerArr", "likesArr", "subsArr", "video"),
	}

	cursor, err := s.videos.Aggregate(ctx, pipeline)
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

	var page models.VideoPage
	if err := cursor.Decode(&page); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return &page, nil
}

// VideoPlayer returns just what the player needs: id, title and the file.
func (s *Store) VideoPlayer(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	const op = "database/VideoPlayer"

	opts := options.FindOne().SetProjection(bson.D{
		{Key: "_id", Value: 1},
		{Key: "title", Value: 1},
		{Key: "video", Value: 1},
	})

	var v models.Video
	if err := s.videos.FindOne(ctx, bson.D{{Key: "_id", Value: id}}, opts).Decode(&v); err != nil {
		return nil, translate(op, err)
	}

	return &v, nil
}

func (s *Store) Video(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	const op = "database/Video"

	var v models.Video
	if err := s.videos.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&v); err != nil {
		return nil, translate(op, err)
	}

	return &v, nil
}

func (s *Store) InsertVideo(ctx context.Context, v *models.Video) error {
	const op = "database/InsertVideo"

	ts := now()
	v.ID = primitive.NewObjectID()
	v.CreatedAt = ts
	v.UpdatedAt = ts

	if _, err := s.videos.InsertOne(ctx, v); err != nil {
		return translate(op, err)
	}

	return nil
}

// UpdateVideo applies a merge-patch and returns the updated video without
// its file reference.
func (s *Store) UpdateVideo(ctx context.Context, id primitive.ObjectID, patch models.VideoPatch) (*models.Video, error) {
	const op = "database/UpdateVideo"

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.D{{Key: "video", Value: 0}})

	var v models.Video
	err := s.videos.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: videoSet(patch)}},
		opts,
	).Decode(&v)
	if err != nil {
		return nil, translate(op, err)
	}

	return &v, nil
}

func (s *Store) DeleteVideo(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	const op = "database/DeleteVideo"

	var v models.Video
	if err := s.videos.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&v); err != nil {
		return nil, translate(op, err)
	}

	return &v, nil
}

func videoSet(p models.VideoPatch) bson.D {
	set := bson.D{{Key: "updatedAt", Value: now()}}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *p.Description})
	}
	if p.Duration != nil {
		set = append(set, bson.E{Key: "duration", Value: *p.Duration})
	}
	if p.Thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *p.Thumbnail})
	}
	return set
}
