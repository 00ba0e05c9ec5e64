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
	"golang.org/x/crypto/bcrypt"

	"tubeline/database"
	"tubeline/models"
)

func TestService_Register(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	ms.EXPECT().InsertUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
		assert.Equal(t, "alice_01", u.Username)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
		u.ID = primitive.NewObjectID()
		return nil
	})

	res, err := s.Register(context.Background(), RegisterInput{
		FullName: "Alice",
		Username: " Alice_01 ",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := ParseToken("test-secret", res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID.Hex(), claims.UserID)
}

func TestService_Register_Validation(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	valid := RegisterInput{FullName: "A", Username: "alice", Email: "a@b.c", Password: "secret"}
	tests := []struct {
		name  string
		patch func(in *RegisterInput)
	}{
		{"no full name", func(in *RegisterInput) { in.FullName = "" }},
		{"short username", func(in *RegisterInput) { in.Username = "al" }},
		{"bad username", func(in *RegisterInput) { in.Username = "al ice" }},
		{"bad email", func(in *RegisterInput) { in.Email = "nope" }},
		{"short password", func(in *RegisterInput) { in.Password = "12345" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.patch(&in)

			_, err := s.Register(context.Background(), in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestService_Register_Duplicate(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	ms.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Return(database.ErrConflict)

	_, err := s.Register(context.Background(), RegisterInput{FullName: "A", Username: "alice", Email: "a@b.c", Password: "secret"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestService_SignIn(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{ID: primitive.NewObjectID(), Username: "alice", Password: string(hash)}

	ms.EXPECT().UserByLogin(gomock.Any(), "alice").Return(u, nil).Times(2)

	res, err := s.SignIn(context.Background(), "Alice", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = s.SignIn(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_SignIn_UnknownUser(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	ms.EXPECT().UserByLogin(gomock.Any(), "ghost@example.com").Return(nil, database.ErrNotFound)

	_, err := s.SignIn(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestParseToken_Rejects(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	token, err := s.issueToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = ParseToken("test-secret", "garbage")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_UserData_OmitsPrivateFields(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	id := primitive.NewObjectID()

	ms.EXPECT().UserByID(gomock.Any(), id).Return(&models.User{
		ID:       id,
		FullName: "Bob",
		Username: "bob",
		Email:    "bob@private.example",
		Password: "hash",
		About:    "hi",
	}, nil)

	got, err := s.UserData(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.PublicUser{ID: id, FullName: "Bob", Username: "bob", About: "hi"}, *got)
}

func TestService_UsernameExists(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	ms.EXPECT().UsernameExists(gomock.Any(), "taken").Return(true, nil)
	ms.EXPECT().UsernameExists(gomock.Any(), "free").Return(false, nil)

	require.NoError(t, s.UsernameExists(context.Background(), "taken"))
	require.ErrorIs(t, s.UsernameExists(context.Background(), "free"), ErrNotFound)
}

func TestService_PublicProfile_MalformedViewerIgnored(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	channel := primitive.NewObjectID()

	ms.EXPECT().ChannelProfile(gomock.Any(), channel).Return(&models.ChannelProfile{ID: channel}, nil)

	p, err := s.PublicProfile(context.Background(), channel.Hex(), badID)
	require.NoError(t, err)
	assert.Nil(t, p.IsSubscribed)
}

func TestService_PublicProfile_WithViewer(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	channel, viewer := primitive.NewObjectID(), primitive.NewObjectID()

	ms.EXPECT().ChannelProfile(gomock.Any(), channel).Return(&models.ChannelProfile{ID: channel}, nil)
	ms.EXPECT().IsSubscribed(gomock.Any(), viewer, channel).Return(true, nil)

	p, err := s.PublicProfile(context.Background(), channel.Hex(), viewer.Hex())
	require.NoError(t, err)
	require.NotNil(t, p.IsSubscribed)
	assert.True(t, *p.IsSubscribed)
}

func TestService_UpdateProfile_OtherUser(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	_, err := s.UpdateProfile(context.Background(), UpdateProfileInput{
		ID:     primitive.NewObjectID().Hex(),
		Caller: primitive.NewObjectID().Hex(),
		About:  ptr("hi"),
	})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestService_UpdateProfile_ReplacesAvatar(t *testing.T) {
	s, ms, mm := newServiceWithMocks(t)
	id := primitive.NewObjectID()

	ms.EXPECT().UserByID(gomock.Any(), id).Return(&models.User{ID: id, Avatar: "https://cdn/old.png"}, nil)
	mm.EXPECT().Upload(gomock.Any(), models.MediaImage, gomock.Any()).Return(&models.MediaRef{URL: "https://cdn/new.png"}, nil)
	ms.EXPECT().UpdateUser(gomock.Any(), id, models.UserPatch{About: ptr(""), Avatar: ptr("https://cdn/new.png")}).
		Return(&models.User{ID: id, Avatar: "https://cdn/new.png"}, nil)
	mm.EXPECT().DestroyByRef(gomock.Any(), models.MediaRef{URL: "https://cdn/old.png", ResourceType: "image"}).Return(nil)

	u, err := s.UpdateProfile(context.Background(), UpdateProfileInput{
		ID:     id.Hex(),
		Caller: id.Hex(),
		About:  ptr(""),
		Avatar: &models.File{Filename: "me.png", Reader: strings.NewReader("png")},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/new.png", u.Avatar)
}

func TestService_UpdateProfile_CoverFailureReleasesAvatar(t *testing.T) {
	s, ms, mm := newServiceWithMocks(t)
	id := primitive.NewObjectID()
	avatar := &models.MediaRef{URL: "https://cdn/new.png", PublicID: "images/new"}

	ms.EXPECT().UserByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)
	gomock.InOrder(
		mm.EXPECT().Upload(gomock.Any(), models.MediaImage, gomock.Any()).Return(avatar, nil),
		mm.EXPECT().Upload(gomock.Any(), models.MediaImage, gomock.Any()).Return(nil, errors.New("down")),
	)
	mm.EXPECT().DestroyByRef(gomock.Any(), *avatar).Return(nil)

	_, err := s.UpdateProfile(context.Background(), UpdateProfileInput{
		ID:         id.Hex(),
		Caller:     id.Hex(),
		Avatar:     &models.File{Filename: "a.png", Reader: strings.NewReader("a")},
		CoverImage: &models.File{Filename: "c.png", Reader: strings.NewReader("c")},
	})
	require.ErrorIs(t, err, ErrInternal)
}
