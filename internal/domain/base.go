package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseEntity carries the identity, audit and soft-delete columns shared by every table.
// A non-null DeletedAt marks the row deleted; gorm adds "deleted_at IS NULL" to every
// query on a model embedding it.
type BaseEntity struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	CreatedBy uuid.UUID      `gorm:"type:uuid;column:created_by" json:"created_by"`
	UpdatedBy uuid.UUID      `gorm:"type:uuid;column:updated_by" json:"updated_by"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (b *BaseEntity) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Stamp fills the creator and modifier for a row about to be inserted.
func (b *BaseEntity) Stamp(actor uuid.UUID) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedBy = actor
	b.UpdatedBy = actor
}

func (b *BaseEntity) IsDeleted() bool { return b.DeletedAt.Valid }
