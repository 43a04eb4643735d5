package domain

import "github.com/google/uuid"

type Project struct {
	BaseEntity
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index;column:owner_id" json:"owner_id"`
	Name    string    `gorm:"not null;column:name" json:"name"`
	Topic   string    `gorm:"not null;column:topic" json:"topic"`
}

func (Project) TableName() string { return "project" }
