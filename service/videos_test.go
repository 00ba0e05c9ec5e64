package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tubeline/database"
	"tubeline/models"
)

func uploadInput(owner string) UploadVideoInput {
	return UploadVideoInput{
		Owner:       owner,
		Title:       "Intro",
		Description: "First video",
		Duration:    ptr(42.5),
		Video:       &models.File{Filename: "intro.mp4", ContentType: "video/mp4", Reader: strings.NewReader("mp4")},
		Thumbnail:   &models.File{Filename: "intro.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("jpg")},
	}
}

func TestService_UploadVideo_RequiredFields(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)
	owner := primitive.NewObjectID().Hex()

	tests := []struct {
		name  string
		patch func(in *UploadVideoInput)
	}{
		{"no title", func(in *UploadVideoInput) { in.Title = " " }},
		{"no description", func(in *UploadVideoInput) { in.Description = "" }},
		{"no duration", func(in *UploadVideoInput) { in.Duration = nil }},
		{"negative duration", func(in *UploadVideoInput) { in.Duration = ptr(-1.0) }},
		{"no video", func(in *UploadVideoInput) { in.Video = nil }},
		{"no thumbnail", func(in *UploadVideoInput) { in.Thumbnail = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := uploadInput(owner)
			tt.patch(&in)

			_, err := s.UploadVideo(context.Background(), in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestService_UploadVideo(t *testing.T) {
	s, ms, mm := newServiceWithMocks(t)
	owner := primitive.NewObjectID()

	videoRef := &models.MediaRef{URL: "https://cdn/v.mp4", PublicID: "videos/v", ResourceType: "video"}
	thumbRef := &models.MediaRef{URL: "http://cdn/t.jpg", SecureURL: "https://cdn/t.jpg", PublicID: "images/t"}

	mm.EXPECT().Upload(gomock.Any(), models.MediaVideo, gomock.Any()).Return(videoRef, nil)
	mm.EXPECT().Upload(gomock.Any(), models.MediaImage, gomock.Any()).Return(thumbRef, nil)
	ms.EXPECT().InsertVideo(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *models.Video) error {
		assert.Equal(t, owner, v.Owner)
		assert.Equal(t, 42.5, v.Duration)
		assert.Equal(t, videoRef, v.Video)
		assert.Equal(t, "https://cdn/t.jpg", v.Thumbnail)
		v.ID = primitive.NewObjectID()
		return nil
	})

	v, err := s.UploadVideo(context.Background(), uploadInput(owner.Hex()))
	require.NoError(t, err)
	assert.Equal(t, "Intro", v.Title)
}

// A thumbnail failure after a successful video upload releases the video.
func TestService_UploadVideo_ThumbnailFailureReleasesVideo(t *testing.T) {
	s, _, mm := newServiceWithMocks(t)
	owner := primitive.NewObjectID()

	videoRef := &models.MediaRef{URL: "https://cdn/v.mp4", PublicID: "videos/v", ResourceType: "video"}

	mm.EXPECT().Upload(gomock.Any(), models.MediaVideo, gomock.Any()).Return(videoRef, nil)
	mm.EXPECT().Upload(gomock.Any(), models.MediaImage, gomock.Any()).Return(nil, errors.New("bad image"))
	mm.EXPECT().DestroyByRef(gomock.Any(), *videoRef).Return(nil)

	_, err := s.UploadVideo(context.Background(), uploadInput(owner.Hex()))
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_UploadVideo_VideoFailureUploadsNothingElse(t *testing.T) {
	s, _, mm := newServiceWithMocks(t)

	mm.EXPECT().Upload(gomock.Any(), models.MediaVideo, gomock.Any()).Return(nil, errors.New("quota"))

	_, err := s.UploadVideo(context.Background(), uploadInput(primitive.NewObjectID().Hex()))
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_UpdateVideo_ReplacesThumbnailByRef(t *testing.T) {
	s, ms, mm := newServiceWithMocks(t)
	owner, id := primitive.NewObjectID(), primitive.NewObjectID()

	newThumb := &models.MediaRef{URL: "https://cdn/new.jpg", PublicID: "images/new"}

	ms.EXPECT().Video(gomock.Any(), id).Return(&models.Video{ID: id, Owner: owner, Thumbnail: "https://cdn/old.jpg"}, nil)
	mm.EXPECT().Upload(gomock.Any(), models.MediaImage, gomock.Any()).Return(newThumb, nil)
	ms.EXPECT().UpdateVideo(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, patch models.VideoPatch) (*models.Video, error) {
			require.NotNil(t, patch.Thumbnail)
			assert.Equal(t, "https://cdn/new.jpg", *patch.Thumbnail)
			require.NotNil(t, patch.Duration)
			assert.Zero(t, *patch.Duration)
			return &models.Video{ID: id, Owner: owner, Thumbnail: *patch.Thumbnail}, nil
		})
	mm.EXPECT().DestroyByRef(gomock.Any(), models.MediaRef{URL: "https://cdn/old.jpg", ResourceType: "image"}).Return(nil)

	v, err := s.UpdateVideo(context.Background(), UpdateVideoInput{
		ID:        id.Hex(),
		Caller:    owner.Hex(),
		Duration:  ptr(0.0),
		Thumbnail: &models.File{Filename: "new.jpg", Reader: strings.NewReader("jpg")},
	})
	require.NoError(t, err)
	assert.Nil(t, v.Video)
}

func TestService_UpdateVideo_NotOwner(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	owner, id := primitive.NewObjectID(), primitive.NewObjectID()

	ms.EXPECT().Video(gomock.Any(), id).Return(&models.Video{ID: id, Owner: owner}, nil)

	_, err := s.UpdateVideo(context.Background(), UpdateVideoInput{ID: id.Hex(), Caller: primitive.NewObjectID().Hex(), Title: ptr("x")})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestService_DeleteVideo_ReleasesByRef(t *testing.T) {
	s, ms, mm := newServiceWithMocks(t)
	owner, id := primitive.NewObjectID(), primitive.NewObjectID()

	stored := &models.Video{
		ID:        id,
		Owner:     owner,
		Video:     &models.MediaRef{URL: "https://cdn/v.mp4", PublicID: "videos/v", ResourceType: "video"},
		Thumbnail: "https://cdn/t.jpg",
	}

	ms.EXPECT().Video(gomock.Any(), id).Return(stored, nil)
	ms.EXPECT().DeleteVideo(gomock.Any(), id).Return(stored, nil)
	mm.EXPECT().DestroyByRef(gomock.Any(), *stored.Video).Return(nil)
	mm.EXPECT().DestroyByRef(gomock.Any(), models.MediaRef{URL: "https://cdn/t.jpg", ResourceType: "image"}).Return(nil)

	require.NoError(t, s.DeleteVideo(context.Background(), id.Hex(), owner.Hex()))
}

func TestService_DeleteVideo_NotFound(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	id := primitive.NewObjectID()

	ms.EXPECT().Video(gomock.Any(), id).Return(nil, database.ErrNotFound)

	err := s.DeleteVideo(context.Background(), id.Hex(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ChannelVideos_UnknownUsername(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	ms.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, database.ErrNotFound)

	_, err := s.ChannelVideos(context.Background(), "Ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ChannelVideos(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	owner := primitive.NewObjectID()

	ms.EXPECT().UserByUsername(gomock.Any(), "creator").Return(&models.User{ID: owner, Username: "creator"}, nil)
	ms.EXPECT().ListVideosByOwner(gomock.Any(), owner).Return([]models.VideoView{{Likes: 3}}, nil)

	out, err := s.ChannelVideos(context.Background(), "creator")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.EqualValues(t, 3, out[0].Likes)
}

func TestService_VideoStatus_OptionalInputs(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	id, user := primitive.NewObjectID(), primitive.NewObjectID()

	ms.EXPECT().VideoStatus(gomock.Any(), id, (*primitive.ObjectID)(nil), &user).Return(models.Status{IsLiked: true})

	st, err := s.VideoStatus(context.Background(), id.Hex(), "", user.Hex())
	require.NoError(t, err)
	assert.True(t, st.IsLiked)
	assert.False(t, st.IsSubscribed)
}
