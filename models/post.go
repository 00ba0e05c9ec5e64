package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	Content   string             `bson:"content" json:"content"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Image     *MediaRef          `bson:"image,omitempty" json:"image,omitempty"`
	Media     []MediaRef         `bson:"media" json:"media"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type PostPatch struct {
	Content *string
	Title   *string
	Image   *MediaRef
}

func (p PostPatch) Empty() bool {
	return p.Content == nil && p.Title == nil && p.Image == nil
}
