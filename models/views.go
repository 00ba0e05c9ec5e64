package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Read models assembled by aggregation pipelines. Joined fields are
// omitted when the related document does not exist.

// ChannelSummary is the owner data embedded into list items.
type ChannelSummary struct {
	FullName string `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Avatar   string `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Username string `bson:"username,omitempty" json:"username,omitempty"`
}

type PostView struct {
	Post    `bson:",inline"`
	Channel ChannelSummary `bson:"channel" json:"channel"`
}

type VideoView struct {
	Video   `bson:",inline"`
	Channel *ChannelSummary `bson:"channel,omitempty" json:"channel,omitempty"`
	Likes   int64           `bson:"likes" json:"likes"`
}

// VideoChannel is the owner block of the video player page.
type VideoChannel struct {
	ChannelID       *primitive.ObjectID `bson:"channelId,omitempty" json:"channelId,omitempty"`
	ChannelName     string              `bson:"channelName,omitempty" json:"channelName,omitempty"`
	ChannelAvatar   string              `bson:"channelAvatar,omitempty" json:"channelAvatar,omitempty"`
	ChannelUsername string              `bson:"channelUsername,omitempty" json:"channelUsername,omitempty"`
}

type VideoPage struct {
	Video       `bson:",inline"`
	Channel     VideoChannel `bson:"channel" json:"channel"`
	LikeCount   int64        `bson:"likeCount" json:"likeCount"`
	UnlikeCount int64        `bson:"unlikeCount" json:"unlikeCount"`
	Subscriber  int64        `bson:"subscriber" json:"subscriber"`
}

// Stats merges independent counters; a counter is nil when its query
// matched nothing or failed.
type Stats struct {
	TotalLike     *int64 `bson:"totalLike,omitempty" json:"totalLike,omitempty"`
	TotalBookmark *int64 `bson:"totalBookmark,omitempty" json:"totalBookmark,omitempty"`
	TotalComment  *int64 `bson:"totalComment,omitempty" json:"totalComment,omitempty"`
	Subscribers   *int64 `bson:"subscribers,omitempty" json:"subscribers,omitempty"`
}

// Status answers how a viewer relates to a post or a video.
// IsBookmarked is only reported for posts.
type Status struct {
	IsLiked      bool  `json:"isLiked"`
	IsSubscribed bool  `json:"isSubscribed"`
	IsBookmarked *bool `json:"isBookmarked,omitempty"`
}

type LikeAndSubscription struct {
	LikeObj      *Like         `json:"likeObj"`
	SubscribeObj *Subscription `json:"subscribeObj"`
}

type ChannelStats struct {
	Subscribers int64 `bson:"subscribers" json:"subscribers"`
	Videos      int64 `bson:"videos" json:"videos"`
}

type ChannelProfile struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Username     string             `bson:"username" json:"username"`
	Avatar       string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CoverImage   string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	About        string             `bson:"about,omitempty" json:"about,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	Stats        ChannelStats       `bson:"stats" json:"stats"`
	IsSubscribed *bool              `bson:"-" json:"isSubscribed,omitempty"`
}

type Commenter struct {
	UserID   *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	FullName string              `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Username string              `bson:"username,omitempty" json:"username,omitempty"`
	Avatar   string              `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

type CommentView struct {
	Comment   `bson:",inline"`
	Commenter Commenter `bson:"commenter" json:"commenter"`
}

type CommentCount struct {
	TotalComment *int64 `bson:"totalComment,omitempty" json:"totalComment,omitempty"`
}

type BookmarkView struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Post      *PostView          `bson:"post,omitempty" json:"post"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
