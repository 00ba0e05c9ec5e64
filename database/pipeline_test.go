package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tubeline/models"
)

func ptr[T any](v T) *T { return &v }

func keys(d bson.D) []string {
	out := make([]string, 0, len(d))
	for _, e := range d {
		out = append(out, e.Key)
	}
	return out
}

func lookup(d bson.D, key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func TestPostSet_OnlyPresentFields(t *testing.T) {
	set := postSet(models.PostPatch{Title: ptr("new title")})

	assert.ElementsMatch(t, []string{"updatedAt", "title"}, keys(set))
	v, _ := lookup(set, "title")
	assert.Equal(t, "new title", v)
}

func TestPostSet_PresentEmptyValueApplies(t *testing.T) {
	set := postSet(models.PostPatch{Title: ptr("")})

	v, ok := lookup(set, "title")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestVideoSet_ZeroDurationApplies(t *testing.T) {
	set := videoSet(models.VideoPatch{Duration: ptr(0.0), Thumbnail: ptr("https://cdn/x.jpg")})

	assert.ElementsMatch(t, []string{"updatedAt", "duration", "thumbnail"}, keys(set))
	v, _ := lookup(set, "duration")
	assert.Equal(t, 0.0, v)
}

func TestUserSet(t *testing.T) {
	set := userSet(models.UserPatch{About: ptr("hi"), Avatar: ptr("https://cdn/a.png")})

	assert.ElementsMatch(t, []string{"updatedAt", "about", "avatar"}, keys(set))
}

func TestSizeWhere_FiltersOnFlag(t *testing.T) {
	got := sizeWhere("$likesArr", "like", true)

	want := bson.D{{Key: "$size", Value: bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: "$likesArr"},
		{Key: "as", Value: "item"},
		{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$item.like", true}}}},
	}}}}}
	assert.Equal(t, want, got)
}

func TestWithChannel_LooksUpThenRemovesHelper(t *testing.T) {
	stages := withChannel("owner", "channel")
	require.Len(t, stages, 3)

	assert.Equal(t, "$lookup", stages[0][0].Key)
	assert.Equal(t, "$addFields", stages[1][0].Key)
	assert.Equal(t, unsetStage("ownerArr"), stages[2])

	fields := stages[1][0].Value.(bson.D)
	channel, ok := lookup(fields, "channel")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"fullName", "avatar", "username"}, keys(channel.(bson.D)))
}

func TestBookmarksPipeline_LimitsAfterDroppingDeletedPosts(t *testing.T) {
	stages := bookmarksPipeline(primitive.NewObjectID(), 10)

	index := func(match func(bson.D) bool) int {
		for i, st := range stages {
			if match(st) {
				return i
			}
		}
		return -1
	}

	lookupAt := index(func(st bson.D) bool { return st[0].Key == "$lookup" })
	existsAt := index(func(st bson.D) bool {
		if st[0].Key != "$match" {
			return false
		}
		_, ok := lookup(st[0].Value.(bson.D), "postDocs.0")
		return ok
	})
	limitAt := index(func(st bson.D) bool { return st[0].Key == "$limit" })

	require.NotEqual(t, -1, existsAt)
	require.NotEqual(t, -1, limitAt)
	assert.Less(t, lookupAt, existsAt)
	assert.Less(t, existsAt, limitAt)
}

func TestDatabaseFromURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"with db", "mongodb://localhost:27017/social", "social"},
		{"with db and options", "mongodb://localhost:27017/social?retryWrites=true", "social"},
		{"no path", "mongodb://localhost:27017", defaultDBName},
		{"trailing slash", "mongodb://localhost:27017/", defaultDBName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, databaseFromURI(tt.uri))
		})
	}
}
