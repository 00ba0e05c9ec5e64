package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Duration    float64            `bson:"duration" json:"duration"`
	Video       *MediaRef          `bson:"video,omitempty" json:"video,omitempty"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type VideoPatch struct {
	Title       *string
	Description *string
	Duration    *float64
	Thumbnail   *string
}

func (p VideoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Duration == nil && p.Thumbnail == nil
}
