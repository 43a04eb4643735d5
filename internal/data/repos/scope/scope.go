// Package scope holds the soft-delete and audit helpers shared by every repo.
package scope

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Active is the soft-delete predicate for tables reached through raw joins or
// subqueries, where gorm's DeletedAt scope does not reach.
func Active(table string) string {
	return fmt.Sprintf("%s.deleted_at IS NULL", table)
}

// Audit returns the column set every mutation writes alongside its business change.
func Audit(actor uuid.UUID, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"updated_at": now,
		"updated_by": actor,
	}
}

// SoftDelete marks the matching non-deleted rows of model deleted and stamps the
// modifier in the same UPDATE. It returns the number of rows affected.
func SoftDelete(conn *gorm.DB, model interface{}, actor uuid.UUID, query interface{}, args ...interface{}) (int64, error) {
	now := time.Now().UTC()
	fields := Audit(actor, now)
	fields["deleted_at"] = now
	res := conn.Model(model).Where(query, args...).Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Update writes fields plus audit columns to the matching non-deleted rows.
func Update(conn *gorm.DB, model interface{}, actor uuid.UUID, fields map[string]interface{}, query interface{}, args ...interface{}) (int64, error) {
	merged := Audit(actor, time.Now().UTC())
	for k, v := range fields {
		merged[k] = v
	}
	res := conn.Model(model).Where(query, args...).Updates(merged)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
