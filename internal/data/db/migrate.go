package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/videoscripter-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(domain.Models()...)
}

// EnsureIndexes creates the partial unique indexes that back external-id dedupe.
// Both Postgres and SQLite support "WHERE deleted_at IS NULL" on an index, so a
// soft-deleted row never blocks a fresh import of the same external id.
func EnsureIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_channel_external_id_active
		ON channel (external_id)
		WHERE deleted_at IS NULL;
	`).Error; err != nil {
		return fmt.Errorf("create idx_channel_external_id_active: %w", err)
	}

	// Scoped per project: the same catalog video may be collected into several
	// projects, each holding its own row.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_video_project_external_id_active
		ON video (project_id, external_id)
		WHERE deleted_at IS NULL;
	`).Error; err != nil {
		return fmt.Errorf("create idx_video_project_external_id_active: %w", err)
	}

	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_channel_category_pair_active
		ON channel_category (channel_id, category_id)
		WHERE deleted_at IS NULL;
	`).Error; err != nil {
		return fmt.Errorf("create idx_channel_category_pair_active: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_project_owner_updated
		ON project (owner_id, updated_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_project_owner_updated: %w", err)
	}
	return nil
}
