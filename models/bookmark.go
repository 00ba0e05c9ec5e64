package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Bookmark struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Post      primitive.ObjectID `bson:"post" json:"post"`
	Bookmark  bool               `bson:"bookmark" json:"bookmark"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
