// Package catalog is the read-only client for the external video catalog.
package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when the catalog has no item for the requested id.
var ErrNotFound = errors.New("catalog: not found")

type VideoMeta struct {
	ExternalID        string    `json:"external_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ThumbnailURL      string    `json:"thumbnail_url"`
	ChannelExternalID string    `json:"channel_external_id"`
	ChannelTitle      string    `json:"channel_title"`
	PublishedAt       time.Time `json:"published_at"`
	ViewCount         int64     `json:"view_count"`
	LikeCount         int64     `json:"like_count"`
	CommentCount      int64     `json:"comment_count"`
	DurationSeconds   int       `json:"duration_seconds"`
	Tags              []string  `json:"tags,omitempty"`
}

type ChannelMeta struct {
	ExternalID      string    `json:"external_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	SubscriberCount int64     `json:"subscriber_count"`
	VideoCount      int64     `json:"video_count"`
	PublishedAt     time.Time `json:"published_at"`
}

type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]VideoMeta, error)
	// GetVideo returns ErrNotFound when the id does not resolve.
	GetVideo(ctx context.Context, externalVideoID string) (*VideoMeta, error)
	// GetChannel returns ErrNotFound when the id does not resolve.
	GetChannel(ctx context.Context, externalChannelID string) (*ChannelMeta, error)
}
