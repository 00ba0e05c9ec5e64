package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FullName   string             `bson:"fullName" json:"fullName"`
	Username   string             `bson:"username" json:"username"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"-"`
	About      string             `bson:"about,omitempty" json:"about,omitempty"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CoverImage string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is what anyone may read about a user: no email, no
// timestamps beyond creation.
type PublicUser struct {
	ID         primitive.ObjectID `json:"_id"`
	FullName   string             `json:"fullName"`
	Username   string             `json:"username"`
	About      string             `json:"about,omitempty"`
	Avatar     string             `json:"avatar,omitempty"`
	CoverImage string             `json:"coverImage,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		FullName:   u.FullName,
		Username:   u.Username,
		About:      u.About,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
	}
}

// UserPatch is a merge-patch over the mutable profile fields.
// A nil field is left untouched; a non-nil field is written, even if empty.
type UserPatch struct {
	FullName   *string
	About      *string
	Avatar     *string
	CoverImage *string
}

func (p UserPatch) Empty() bool {
	return p.FullName == nil && p.About == nil && p.Avatar == nil && p.CoverImage == nil
}
