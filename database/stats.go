package database

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"tubeline/logctx"
	"tubeline/models"
)

// PostStats counts positive likes, bookmarks, comments and, when the owner
// is known, the owner's subscribers. The counts run concurrently; a failed
// or empty count leaves its field nil and never fails the others.
func (s *Store) PostStats(ctx context.Context, post primitive.ObjectID, owner *primitive.ObjectID) models.Stats {
	var st models.Stats
	t := models.TargetPost

	var g errgroup.Group
	s.goCount(ctx, &g, "totalLike", &st.TotalLike, s.likes(t), bson.D{{Key: t.Field(), Value: post}, {Key: "like", Value: true}})
	s.goCount(ctx, &g, "totalBookmark", &st.TotalBookmark, s.bookmarks, bson.D{{Key: "post", Value: post}, {Key: "bookmark", Value: true}})
	s.goCount(ctx, &g, "totalComment", &st.TotalComment, s.comments(t), bson.D{{Key: t.Field(), Value: post}})
	if owner != nil {
		s.goCount(ctx, &g, "subscribers", &st.Subscribers, s.subscriptions, bson.D{{Key: "channel", Value: *owner}})
	}
	_ = g.Wait()

	return st
}

// VideoStats is PostStats without bookmarks.
func (s *Store) VideoStats(ctx context.Context, video primitive.ObjectID, owner *primitive.ObjectID) models.Stats {
	var st models.Stats
	t := models.TargetVideo

	var g errgroup.Group
	s.goCount(ctx, &g, "totalLike", &st.TotalLike, s.likes(t), bson.D{{Key: t.Field(), Value: video}, {Key: "like", Value: true}})
	s.goCount(ctx, &g, "totalComment", &st.TotalComment, s.comments(t), bson.D{{Key: t.Field(), Value: video}})
	if owner != nil {
		s.goCount(ctx, &g, "subscribers", &st.Subscribers, s.subscriptions, bson.D{{Key: "channel", Value: *owner}})
	}
	_ = g.Wait()

	return st
}

func (s *Store) goCount(ctx context.Context, g *errgroup.Group, field string, dst **int64, coll *mongo.Collection, filter bson.D) {
	g.Go(func() error {
		n, err := s.countWhere(ctx, coll, filter)
		if err != nil {
			logctx.From(ctx).Warn("stats_count_failed",
				slog.String("field", field),
				slog.String("collection", coll.Name()),
				slog.Any("err", err),
			)
			return nil
		}
		*dst = n
		return nil
	})
}

// PostStatus reports whether user liked and bookmarked the post and follows
// its owner. A check whose inputs are missing is false.
func (s *Store) PostStatus(ctx context.Context, post primitive.ObjectID, owner, user *primitive.ObjectID) models.Status {
	var (
		st         models.Status
		bookmarked bool
	)
	if user == nil {
		st.IsBookmarked = &bookmarked
		return st
	}

	t := models.TargetPost
	var g errgroup.Group
	s.goExists(ctx, &g, "isLiked", &st.IsLiked, s.likes(t), bson.D{{Key: "user", Value: *user}, {Key: t.Field(), Value: post}, {Key: "like", Value: true}})
	s.goExists(ctx, &g, "isBookmarked", &bookmarked, s.bookmarks, bson.D{{Key: "user", Value: *user}, {Key: "post", Value: post}, {Key: "bookmark", Value: true}})
	if owner != nil {
		s.goExists(ctx, &g, "isSubscribed", &st.IsSubscribed, s.subscriptions, bson.D{{Key: "subscriber", Value: *user}, {Key: "channel", Value: *owner}})
	}
	_ = g.Wait()

	st.IsBookmarked = &bookmarked
	return st
}

func (s *Store) VideoStatus(ctx context.Context, video primitive.ObjectID, owner, user *primitive.ObjectID) models.Status {
	var st models.Status
	if user == nil {
		return st
	}

	t := models.TargetVideo
	var g errgroup.Group
	s.goExists(ctx, &g, "isLiked", &st.IsLiked, s.likes(t), bson.D{{Key: "user", Value: *user}, {Key: t.Field(), Value: video}, {Key: "like", Value: true}})
	if owner != nil {
		s.goExists(ctx, &g, "isSubscribed", &st.IsSubscribed, s.subscriptions, bson.D{{Key: "subscriber", Value: *user}, {Key: "channel", Value: *owner}})
	}
	_ = g.Wait()

	return st
}

func (s *Store) goExists(ctx context.Context, g *errgroup.Group, field string, dst *bool, coll *mongo.Collection, filter bson.D) {
	g.Go(func() error {
		ok, err := exists(ctx, coll, filter)
		if err != nil {
			logctx.From(ctx).Warn("status_check_failed",
				slog.String("field", field),
				slog.String("collection", coll.Name()),
				slog.Any("err", err),
			)
			return nil
		}
		*dst = ok
		return nil
	})
}

// LikeAndSubscription returns the viewer's raw like record for the video and
// their subscription to its owner. Either may be nil.
func (s *Store) LikeAndSubscription(ctx context.Context, video primitive.ObjectID, user *primitive.ObjectID) (*models.LikeAndSubscription, error) {
	const op = "database/LikeAndSubscription"

	var v models.Video
	opts := options.FindOne().SetProjection(bson.D{{Key: "owner", Value: 1}})
	if err := s.videos.FindOne(ctx, bson.D{{Key: "_id", Value: video}}, opts).Decode(&v); err != nil {
		return nil, translate(op, err)
	}

	out := &models.LikeAndSubscription{}
	if user == nil {
		return out, nil
	}

	like, err := s.LikeOf(ctx, models.TargetVideo, *user, video)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sub, err := s.SubscriptionOf(ctx, *user, v.Owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out.LikeObj = like
	out.SubscribeObj = sub
	return out, nil
}

// countWhere runs match + $count. No matching rows yields nil, not zero.
func (s *Store) countWhere(ctx context.Context, coll *mongo.Collection, filter bson.D) (*int64, error) {
	cursor, err := coll.Aggregate(ctx, mongo.Pipeline{matchStage(filter), countStage("n")})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, cursor.Err()
	}

	var row struct {
		N int64 `bson:"n"`
	}
	if err := cursor.Decode(&row); err != nil {
		return nil, err
	}

	return &row.N, nil
}

func exists(ctx context.Context, coll *mongo.Collection, filter bson.D) (bool, error) {
	n, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
