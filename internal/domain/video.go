package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Video struct {
	BaseEntity
	// ProjectID is nil for unattached videos.
	ProjectID       *uuid.UUID     `gorm:"type:uuid;index;column:project_id" json:"project_id,omitempty"`
	ExternalID      string         `gorm:"not null;index;column:external_id" json:"external_id"`
	ChannelID       uuid.UUID      `gorm:"type:uuid;not null;index;column:channel_id" json:"channel_id"`
	Title           string         `gorm:"not null;column:title" json:"title"`
	Description     string         `gorm:"column:description" json:"description"`
	ThumbnailURL    string         `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	ViewCount       int64          `gorm:"not null;default:0;column:view_count" json:"view_count"`
	LikeCount       int64          `gorm:"not null;default:0;column:like_count" json:"like_count"`
	CommentCount    int64          `gorm:"not null;default:0;column:comment_count" json:"comment_count"`
	DurationSeconds int            `gorm:"not null;default:0;column:duration_seconds" json:"duration_seconds"`
	PublishedAt     time.Time      `gorm:"column:published_at" json:"published_at"`
	RawTranscript   string         `gorm:"column:raw_transcript" json:"raw_transcript,omitempty"`
	Tags            datatypes.JSON `gorm:"column:tags" json:"tags,omitempty"`
}

func (Video) TableName() string { return "video" }

// FormatDuration renders seconds as H:MM:SS, or M:SS under an hour.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
