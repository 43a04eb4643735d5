package domain

import "time"

type Channel struct {
	BaseEntity
	ExternalID      string    `gorm:"not null;index;column:external_id" json:"external_id"`
	Title           string    `gorm:"column:title" json:"title"`
	Description     string    `gorm:"column:description" json:"description"`
	ThumbnailURL    string    `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	SubscriberCount int64     `gorm:"not null;default:0;column:subscriber_count" json:"subscriber_count"`
	VideoCount      int64     `gorm:"not null;default:0;column:video_count" json:"video_count"`
	PublishedAt     time.Time `gorm:"column:published_at" json:"published_at"`
}

func (Channel) TableName() string { return "channel" }
