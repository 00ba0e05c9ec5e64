package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tubeline/config"
	"tubeline/models"
)

const testTimeout = 10 * time.Second

// TestMain starts one MongoDB container for the package when
// GO_TEST_INTEGRATION is set. Each test gets its own database.
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	_ = os.Setenv("MONGODB_URI", fmt.Sprintf("mongodb://%s:%s", host, port.Port()))

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

func mustNewStore(t *testing.T) *Store {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("set GO_TEST_INTEGRATION=1 to run MongoDB integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	s, err := Connect(ctx, config.DBConfig{
		URL:  os.Getenv("MONGODB_URI"),
		Name: "tubeline_test_" + uuid.NewString(),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = s.db.Drop(ctx)
		_ = s.Close(ctx)
	})

	return s
}

func testCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)
	return ctx
}

func mustUser(t *testing.T, s *Store, username string) *models.User {
	t.Helper()

	u := &models.User{
		FullName: "User " + username,
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
		Avatar:   "https://cdn.example.com/" + username + ".png",
	}
	require.NoError(t, s.InsertUser(testCtx(t), u))
	return u
}

func mustPost(t *testing.T, s *Store, owner primitive.ObjectID, content string) *models.Post {
	t.Helper()

	p := &models.Post{Owner: owner, Content: content}
	require.NoError(t, s.InsertPost(testCtx(t), p))
	return p
}

func mustVideo(t *testing.T, s *Store, owner primitive.ObjectID, title string) *models.Video {
	t.Helper()

	v := &models.Video{
		Owner:       owner,
		Title:       title,
		Description: "about " + title,
		Duration:    12.5,
		Video:       &models.MediaRef{URL: "https://cdn.example.com/" + title + ".mp4", PublicID: "videos/" + title},
		Thumbnail:   "https://cdn.example.com/" + title + ".jpg",
	}
	require.NoError(t, s.InsertVideo(testCtx(t), v))
	return v
}

func TestListPosts_NewestFirstWithChannel(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	alice := mustUser(t, s, "alice")

	a := mustPost(t, s, alice.ID, "A")
	b := mustPost(t, s, alice.ID, "B")
	c := mustPost(t, s, alice.ID, "C")

	got, err := s.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []primitive.ObjectID{c.ID, b.ID, a.ID}, []primitive.ObjectID{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "alice", got[0].Channel.Username)
	assert.Equal(t, alice.FullName, got[0].Channel.FullName)
	assert.Equal(t, alice.Avatar, got[0].Channel.Avatar)
}

func TestListPosts_MissingOwnerIsNotAnError(t *testing.T) {
	s := mustNewStore(t)

	mustPost(t, s, primitive.NewObjectID(), "orphan")

	got, err := s.ListPosts(testCtx(t))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ChannelSummary{}, got[0].Channel)
}

func TestListPostsByOwner(t *testing.T) {
	s := mustNewStore(t)
	alice := mustUser(t, s, "alice")
	bob := mustUser(t, s, "bob")

	mustPost(t, s, alice.ID, "from alice")
	mustPost(t, s, bob.ID, "from bob")

	got, err := s.ListPostsByOwner(testCtx(t), bob.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "from bob", got[0].Content)
}

func TestPostByID_NotFound(t *testing.T) {
	s := mustNewStore(t)

	_, err := s.PostByID(testCtx(t), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePost_MergePatch(t *testing.T) {
	s := mustNewStore(t)
	p := mustPost(t, s, primitive.NewObjectID(), "X")

	title := "T"
	got, err := s.UpdatePost(testCtx(t), p.ID, models.PostPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "X", got.Content)
	assert.Equal(t, "T", got.Title)
}

func TestDeletePost_ReturnsStoredDocument(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)

	p := &models.Post{Owner: primitive.NewObjectID(), Content: "img", Image: &models.MediaRef{URL: "u", PublicID: "posts/1"}}
	require.NoError(t, s.InsertPost(ctx, p))

	deleted, err := s.DeletePost(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted.Image)
	assert.Equal(t, "posts/1", deleted.Image.PublicID)

	_, err = s.DeletePost(ctx, p.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLikeFlag_RoundTrip(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	user := primitive.NewObjectID()
	p := mustPost(t, s, primitive.NewObjectID(), "likeable")

	_, err := s.SetLike(ctx, models.TargetPost, user, p.ID, true)
	require.NoError(t, err)

	st := s.PostStats(ctx, p.ID, nil)
	require.NotNil(t, st.TotalLike)
	assert.EqualValues(t, 1, *st.TotalLike)

	l, err := s.SetLike(ctx, models.TargetPost, user, p.ID, false)
	require.NoError(t, err)
	assert.False(t, l.Like)

	st = s.PostStats(ctx, p.ID, nil)
	assert.Nil(t, st.TotalLike)

	status := s.PostStatus(ctx, p.ID, nil, &user)
	assert.False(t, status.IsLiked)
}

func TestPostStats_CountsOnlyPositiveLikes(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	owner := mustUser(t, s, "owner")
	p := mustPost(t, s, owner.ID, "stats")

	_, err := s.SetLike(ctx, models.TargetPost, primitive.NewObjectID(), p.ID, true)
	require.NoError(t, err)
	_, err = s.SetLike(ctx, models.TargetPost, primitive.NewObjectID(), p.ID, false)
	require.NoError(t, err)

	st := s.PostStats(ctx, p.ID, &owner.ID)

	require.NotNil(t, st.TotalLike)
	assert.EqualValues(t, 1, *st.TotalLike)
	assert.Nil(t, st.TotalComment)
	assert.Nil(t, st.TotalBookmark)
	assert.Nil(t, st.Subscribers)
}

func TestPostStatus(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	owner := mustUser(t, s, "owner")
	viewer := mustUser(t, s, "viewer")
	p := mustPost(t, s, owner.ID, "status")

	_, err := s.SetLike(ctx, models.TargetPost, viewer.ID, p.ID, true)
	require.NoError(t, err)
	_, err = s.AddBookmark(ctx, viewer.ID, p.ID)
	require.NoError(t, err)
	_, err = s.Subscribe(ctx, viewer.ID, owner.ID)
	require.NoError(t, err)

	st := s.PostStatus(ctx, p.ID, &owner.ID, &viewer.ID)
	assert.True(t, st.IsLiked)
	assert.True(t, st.IsSubscribed)
	require.NotNil(t, st.IsBookmarked)
	assert.True(t, *st.IsBookmarked)

	st = s.PostStatus(ctx, p.ID, nil, &viewer.ID)
	assert.False(t, st.IsSubscribed)

	st = s.PostStatus(ctx, p.ID, &owner.ID, nil)
	assert.False(t, st.IsLiked)
	assert.False(t, *st.IsBookmarked)
}

func TestVideos_ListAndPage(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	owner := mustUser(t, s, "creator")
	v := mustVideo(t, s, owner.ID, "intro")

	_, err := s.SetLike(ctx, models.TargetVideo, primitive.NewObjectID(), v.ID, true)
	require.NoError(t, err)
	_, err = s.SetLike(ctx, models.TargetVideo, primitive.NewObjectID(), v.ID, false)
	require.NoError(t, err)
	_, err = s.Subscribe(ctx, primitive.NewObjectID(), owner.ID)
	require.NoError(t, err)

	list, err := s.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.EqualValues(t, 1, list[0].Likes)
	assert.Nil(t, list[0].Video.Video)
	require.NotNil(t, list[0].Channel)
	assert.Equal(t, "creator", list[0].Channel.Username)

	page, err := s.VideoPage(ctx, v.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.LikeCount)
	assert.EqualValues(t, 1, page.UnlikeCount)
	assert.EqualValues(t, 1, page.Subscriber)
	require.NotNil(t, page.Channel.ChannelID)
	assert.Equal(t, owner.ID, *page.Channel.ChannelID)
	assert.Nil(t, page.Video.Video)

	player, err := s.VideoPlayer(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "intro", player.Title)
	require.NotNil(t, player.Video)
	assert.Empty(t, player.Description)

	_, err = s.VideoPage(ctx, primitive.NewObjectID())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateVideo_OmitsFileReference(t *testing.T) {
	s := mustNewStore(t)
	v := mustVideo(t, s, primitive.NewObjectID(), "clip")

	d := 0.0
	got, err := s.UpdateVideo(testCtx(t), v.ID, models.VideoPatch{Duration: &d})
	require.NoError(t, err)

	assert.Zero(t, got.Duration)
	assert.Equal(t, "clip", got.Title)
	assert.Nil(t, got.Video)
}

func TestLikeAndSubscription(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	owner := mustUser(t, s, "owner")
	viewer := primitive.NewObjectID()
	v := mustVideo(t, s, owner.ID, "ls")

	got, err := s.LikeAndSubscription(ctx, v.ID, &viewer)
	require.NoError(t, err)
	assert.Nil(t, got.LikeObj)
	assert.Nil(t, got.SubscribeObj)

	_, err = s.SetLike(ctx, models.TargetVideo, viewer, v.ID, true)
	require.NoError(t, err)
	_, err = s.Subscribe(ctx, viewer, owner.ID)
	require.NoError(t, err)

	got, err = s.LikeAndSubscription(ctx, v.ID, &viewer)
	require.NoError(t, err)
	require.NotNil(t, got.LikeObj)
	assert.True(t, got.LikeObj.Like)
	require.NotNil(t, got.SubscribeObj)
	assert.Equal(t, owner.ID, got.SubscribeObj.Channel)

	_, err = s.LikeAndSubscription(ctx, primitive.NewObjectID(), &viewer)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestComments_ListSortsBeforeLimit(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	author := mustUser(t, s, "author")
	p := mustPost(t, s, author.ID, "thread")

	var last primitive.ObjectID
	for _, text := range []string{"one", "two", "three"} {
		c := models.NewComment(models.TargetPost, author.ID, p.ID, text)
		require.NoError(t, s.InsertComment(ctx, models.TargetPost, &c))
		last = c.ID
	}

	got, err := s.ListComments(ctx, models.TargetPost, p.ID, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, last, got[0].ID)
	assert.Equal(t, "three", got[0].Comment.Comment)
	assert.Equal(t, "author", got[0].Commenter.Username)

	count, err := s.CountComments(ctx, models.TargetPost, p.ID)
	require.NoError(t, err)
	require.NotNil(t, count.TotalComment)
	assert.EqualValues(t, 3, *count.TotalComment)

	count, err = s.CountComments(ctx, models.TargetVideo, p.ID)
	require.NoError(t, err)
	assert.Nil(t, count.TotalComment)
}

func TestBookmarks(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	owner := mustUser(t, s, "owner")
	reader := primitive.NewObjectID()
	kept := mustPost(t, s, owner.ID, "kept")
	gone := mustPost(t, s, owner.ID, "gone")

	_, err := s.AddBookmark(ctx, reader, kept.ID)
	require.NoError(t, err)
	_, err = s.AddBookmark(ctx, reader, kept.ID)
	require.NoError(t, err)
	_, err = s.AddBookmark(ctx, reader, gone.ID)
	require.NoError(t, err)
	_, err = s.DeletePost(ctx, gone.ID)
	require.NoError(t, err)

	got, err := s.ListBookmarks(ctx, reader, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Post)
	assert.Equal(t, kept.ID, got[0].Post.ID)
	assert.Equal(t, "owner", got[0].Post.Channel.Username)

	require.NoError(t, s.RemoveBookmark(ctx, reader, kept.ID))
	require.ErrorIs(t, s.RemoveBookmark(ctx, reader, kept.ID), ErrNotFound)
}

func TestBookmarks_LimitCountsLivePostsOnly(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	owner := mustUser(t, s, "owner")
	reader := primitive.NewObjectID()

	posts := make([]*models.Post, 5)
	for i := range posts {
		posts[i] = mustPost(t, s, owner.ID, fmt.Sprintf("p%d", i))
		_, err := s.AddBookmark(ctx, reader, posts[i].ID)
		require.NoError(t, err)
	}
	// The two newest bookmarks now point at deleted posts.
	for _, p := range posts[3:] {
		_, err := s.DeletePost(ctx, p.ID)
		require.NoError(t, err)
	}

	got, err := s.ListBookmarks(ctx, reader, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, posts[2].ID, got[0].Post.ID)
	assert.Equal(t, posts[1].ID, got[1].Post.ID)
}

func TestUsers(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	u := mustUser(t, s, "carol")

	err := s.InsertUser(ctx, &models.User{Username: "carol", Email: "other@example.com"})
	require.ErrorIs(t, err, ErrConflict)

	ok, err := s.UsernameExists(ctx, "carol")
	require.NoError(t, err)
	assert.True(t, ok)

	byLogin, err := s.UserByLogin(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byLogin.ID)

	about := ""
	updated, err := s.UpdateUser(ctx, u.ID, models.UserPatch{About: &about})
	require.NoError(t, err)
	assert.Equal(t, u.FullName, updated.FullName)
	assert.Empty(t, updated.About)
}

func TestChannelProfile(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	ch := mustUser(t, s, "channel")
	mustVideo(t, s, ch.ID, "v1")
	mustVideo(t, s, ch.ID, "v2")
	_, err := s.Subscribe(ctx, primitive.NewObjectID(), ch.ID)
	require.NoError(t, err)

	p, err := s.ChannelProfile(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, "channel", p.Username)
	assert.EqualValues(t, 1, p.Stats.Subscribers)
	assert.EqualValues(t, 2, p.Stats.Videos)

	_, err = s.ChannelProfile(ctx, primitive.NewObjectID())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubscriptions(t *testing.T) {
	s := mustNewStore(t)
	ctx := testCtx(t)
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	first, err := s.Subscribe(ctx, a, b)
	require.NoError(t, err)
	second, err := s.Subscribe(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	ok, err := s.IsSubscribed(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Unsubscribe(ctx, a, b))
	require.ErrorIs(t, s.Unsubscribe(ctx, a, b), ErrNotFound)
}
