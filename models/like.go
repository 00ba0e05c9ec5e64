package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like records a user's reaction to a post or a video. Like=false is an
// explicit unlike, so a record existing does not mean "liked".
type Like struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	User      primitive.ObjectID  `bson:"user" json:"user"`
	Post      *primitive.ObjectID `bson:"post,omitempty" json:"post,omitempty"`
	Video     *primitive.ObjectID `bson:"video,omitempty" json:"video,omitempty"`
	Like      bool                `bson:"like" json:"like"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}
