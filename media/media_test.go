package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubeline/models"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantID   string
		wantKind models.MediaKind
		wantOK   bool
	}{
		{
			name:     "video with version",
			url:      "https://res.cloudinary.com/demo/video/upload/v1700000000/tubeline/videos/abc.mp4",
			wantID:   "tubeline/videos/abc",
			wantKind: models.MediaVideo,
			wantOK:   true,
		},
		{
			name:     "image without version",
			url:      "http://res.cloudinary.com/demo/image/upload/tubeline/images/thumb.jpg",
			wantID:   "tubeline/images/thumb",
			wantKind: models.MediaImage,
			wantOK:   true,
		},
		{
			name:     "no folder",
			url:      "https://res.cloudinary.com/demo/image/upload/v12/avatar.png",
			wantID:   "avatar",
			wantKind: models.MediaImage,
			wantOK:   true,
		},
		{name: "not a delivery url", url: "https://example.com/a/b.png"},
		{name: "nothing after upload", url: "https://res.cloudinary.com/demo/image/upload/"},
		{name: "empty", url: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, kind, ok := publicIDFromURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestMinIOKeyFromURL(t *testing.T) {
	m := &MinIO{publicBase: "https://cdn.example.com/media"}

	key, ok := m.keyFromURL("https://cdn.example.com/media/tubeline/images/1.png?x=1")
	require.True(t, ok)
	assert.Equal(t, "tubeline/images/1.png", key)

	_, ok = m.keyFromURL("https://elsewhere.example.com/media/1.png")
	assert.False(t, ok)
}

func TestCloudinaryDestroyByRef_UnknownRef(t *testing.T) {
	c := &Cloudinary{}

	err := c.DestroyByRef(context.Background(), models.MediaRef{URL: "https://example.com/x.png"})
	require.ErrorIs(t, err, ErrUnknownRef)
}

func TestUpload_EmptyFile(t *testing.T) {
	_, err := (&Cloudinary{}).Upload(context.Background(), models.MediaImage, models.File{})
	require.ErrorIs(t, err, ErrEmptyFile)

	_, err = (&MinIO{}).Upload(context.Background(), models.MediaImage, models.File{})
	require.ErrorIs(t, err, ErrEmptyFile)
}
