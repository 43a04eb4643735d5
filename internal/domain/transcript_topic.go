package domain

import "github.com/google/uuid"

type TranscriptTopic struct {
	BaseEntity
	VideoID uuid.UUID `gorm:"type:uuid;not null;index;column:video_id" json:"video_id"`
	// StartOffsetMS is the offset into the video where the topic begins.
	StartOffsetMS int64  `gorm:"not null;default:0;column:start_offset_ms" json:"start_offset_ms"`
	Content       string `gorm:"column:content" json:"content"`
	Summary       string `gorm:"column:summary" json:"summary"`
	IsSelected    bool   `gorm:"not null;default:false;column:is_selected" json:"is_selected"`
}

func (TranscriptTopic) TableName() string { return "transcript_topic" }
