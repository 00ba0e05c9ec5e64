package models

import "io"

// MediaRef is the durable reference returned by the media service for an
// uploaded file. PublicID is what the provider needs to destroy it later.
type MediaRef struct {
	URL          string `bson:"url" json:"url"`
	SecureURL    string `bson:"secure_url,omitempty" json:"secure_url,omitempty"`
	PublicID     string `bson:"public_id" json:"public_id"`
	ResourceType string `bson:"resource_type,omitempty" json:"resource_type,omitempty"`
	Format       string `bson:"format,omitempty" json:"format,omitempty"`
	Bytes        int    `bson:"bytes,omitempty" json:"bytes,omitempty"`
	Width        int    `bson:"width,omitempty" json:"width,omitempty"`
	Height       int    `bson:"height,omitempty" json:"height,omitempty"`
}

// Link returns the best URL to hand to clients.
func (m MediaRef) Link() string {
	if m.SecureURL != "" {
		return m.SecureURL
	}
	return m.URL
}

// MediaKind selects the upload folder and resource type.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// File is an upload received from a client. Reader is consumed once.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
