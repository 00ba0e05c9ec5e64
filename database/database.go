// Package database is the MongoDB document store: connection handling,
// index management, entity persistence and the aggregation pipelines that
// build the denormalised read models.
package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"tubeline/config"
	"tubeline/models"
)

const (
	usersCollection         = "users"
	postsCollection         = "posts"
	videosCollection        = "videos"
	bookmarksCollection     = "postbookmarks"
	subscriptionsCollection = "subscriptions"

	defaultDBName = "tubeline"
)

var (
	// ErrNotFound is returned when a required document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on a unique index violation.
	ErrConflict = errors.New("conflict")
)

// Store owns the client and the collection handles. It is created once at
// startup and shared by all requests.
type Store struct {
	client        *mongo.Client
	db            *mongo.Database
	users         *mongo.Collection
	posts         *mongo.Collection
	videos        *mongo.Collection
	bookmarks     *mongo.Collection
	subscriptions *mongo.Collection
}

// Connect dials MongoDB, pings the primary and ensures indexes.
func Connect(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("mongo: empty db url")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = databaseFromURI(cfg.URL)
	}

	s := newStore(client, client.Database(name))

	if err := s.ensureIndexes(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, err
	}

	return s, nil
}

func newStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		client:        client,
		db:            db,
		users:         db.Collection(usersCollection),
		posts:         db.Collection(postsCollection),
		videos:        db.Collection(videosCollection),
		bookmarks:     db.Collection(bookmarksCollection),
		subscriptions: db.Collection(subscriptionsCollection),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) comments(t models.Target) *mongo.Collection {
	return s.db.Collection(t.CommentCollection())
}

func (s *Store) likes(t models.Target) *mongo.Collection {
	return s.db.Collection(t.LikeCollection())
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := func(name string) *options.IndexOptions {
		return options.Index().SetName(name).SetUnique(true)
	}

	plan := map[*mongo.Collection][]mongo.IndexModel{
		s.users: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique("username_unique")},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique("email_unique")},
		},
		s.posts: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "_id", Value: -1}}, Options: options.Index().SetName("owner_newest")},
		},
		s.videos: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "_id", Value: -1}}, Options: options.Index().SetName("owner_newest")},
		},
		s.bookmarks: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "post", Value: 1}}, Options: unique("user_post_unique")},
		},
		s.subscriptions: {
			{Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}, Options: unique("subscriber_channel_unique")},
			{Keys: bson.D{{Key: "channel", Value: 1}}, Options: options.Index().SetName("channel")},
		},
	}

	for _, t := range []models.Target{models.TargetPost, models.TargetVideo} {
		plan[s.likes(t)] = []mongo.IndexModel{
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: t.Field(), Value: 1}}, Options: unique("user_" + t.Field() + "_unique")},
			{Keys: bson.D{{Key: t.Field(), Value: 1}, {Key: "like", Value: 1}}, Options: options.Index().SetName(t.Field() + "_like")},
		}
		plan[s.comments(t)] = []mongo.IndexModel{
			{Keys: bson.D{{Key: t.Field(), Value: 1}, {Key: "_id", Value: -1}}, Options: options.Index().SetName(t.Field() + "_newest")},
		}
	}

	for coll, idx := range plan {
		if _, err := coll.Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("mongo ensure indexes on %s: %w", coll.Name(), err)
		}
	}

	return nil
}

// now is truncated to milliseconds, the precision of a BSON datetime.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// translate maps driver errors onto the package sentinels.
func translate(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// databaseFromURI takes the database name from the URI path.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
