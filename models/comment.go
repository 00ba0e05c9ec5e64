package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is stored in postcomments or videocomments; exactly one of Post
// and Video is set, matching the collection.
type Comment struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	User      primitive.ObjectID  `bson:"user" json:"user"`
	Post      *primitive.ObjectID `bson:"post,omitempty" json:"post,omitempty"`
	Video     *primitive.ObjectID `bson:"video,omitempty" json:"video,omitempty"`
	Comment   string              `bson:"comment" json:"comment"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func NewComment(t Target, user, target primitive.ObjectID, text string) Comment {
	c := Comment{User: user, Comment: text}
	c.setTarget(t, target)
	return c
}

func (c *Comment) setTarget(t Target, id primitive.ObjectID) {
	switch t {
	case TargetPost:
		c.Post = &id
	case TargetVideo:
		c.Video = &id
	}
}
