package domain

import "github.com/google/uuid"

type Category struct {
	BaseEntity
	Name        string `gorm:"not null;column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
}

func (Category) TableName() string { return "category" }

// ChannelCategory is the explicit join row between Channel and Category.
type ChannelCategory struct {
	BaseEntity
	ChannelID  uuid.UUID `gorm:"type:uuid;not null;index;column:channel_id" json:"channel_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index;column:category_id" json:"category_id"`
}

func (ChannelCategory) TableName() string { return "channel_category" }
