package domain

import "github.com/google/uuid"

type Script struct {
	BaseEntity
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index;column:project_id" json:"project_id"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	Content   string    `gorm:"column:content" json:"content"`
	Version   int       `gorm:"not null;default:1;column:version" json:"version"`
}

func (Script) TableName() string { return "script" }
