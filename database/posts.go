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

// ListPosts returns every post, newest first, with the owner's channel summary.
func (s *Store) ListPosts(ctx context.Context) ([]models.PostView, error) {
	return s.listPosts(ctx, "database/ListPosts", nil)
}

// ListPostsByOwner returns one owner's posts in the same shape as ListPosts.
func (s *Store) ListPostsByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.PostView, error) {
	return s.listPosts(ctx, "database/ListPostsByOwner", bson.D{{Key: "owner", Value: owner}})
}

func (s *Store) listPosts(ctx context.Context, op string, filter bson.D) ([]models.PostView, error) {
	pipeline := mongo.Pipeline{}
	if filter != nil {
		pipeline = append(pipeline, matchStage(filter))
	}
	pipeline = append(pipeline, newestFirst())
	pipeline = append(pipeline, withChannel("owner", "channel")...)

	cursor, err := s.posts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}
	defer cursor.Close(ctx)

	out := make([]models.PostView, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}

func (s *Store) InsertPost(ctx context.Context, p *models.Post) error {
	const op = "database/InsertPost"

	ts := now()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = ts
	p.UpdatedAt = ts
	if p.Media == nil {
		p.Media = []models.MediaRef{}
	}

	if _, err := s.posts.InsertOne(ctx, p); err != nil {
		return translate(op, err)
	}

	return nil
}

func (s *Store) PostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	const op = "database/PostByID"

	var p models.Post
	if err := s.posts.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&p); err != nil {
		return nil, translate(op, err)
	}

	return &p, nil
}

// UpdatePost applies a merge-patch and returns the updated document.
func (s *Store) UpdatePost(ctx context.Context, id primitive.ObjectID, patch models.PostPatch) (*models.Post, error) {
	const op = "database/UpdatePost"

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Post
	err := s.posts.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: postSet(patch)}},
		opts,
	).Decode(&p)
	if err != nil {
		return nil, translate(op, err)
	}

	return &p, nil
}

// DeletePost removes the post and returns what was stored, so the caller
// can release its media.
func (s *Store) DeletePost(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	const op = "database/DeletePost"

	var p models.Post
	if err := s.posts.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&p); err != nil {
		return nil, translate(op, err)
	}

	return &p, nil
}

func postSet(p models.PostPatch) bson.D {
	set := bson.D{{Key: "updatedAt", Value: now()}}
	if p.Content != nil {
		set = append(set, bson.E{Key: "content", Value: *p.Content})
	}
	if p.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *p.Title})
	}
	if p.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *p.Image})
	}
	return set
}
