// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// latestModification returns the most recent change instant across a user's
// rows of the given model, soft-deleted rows included. Updates bump
// updated_at and soft deletes set deleted_at; the later of the two maxima is
// the version stamp the timeline cache keys on. The aggregates stay separate
// so the query works on both PostgreSQL and the SQLite test driver.
func latestModification(ctx context.Context, db *gorm.DB, m interface{}, userID uuid.UUID) (time.Time, error) {
	var row struct {
		LastUpdated sql.NullTime
		LastDeleted sql.NullTime
	}

	err := db.WithContext(ctx).
		Unscoped().
		Model(m).
		Where("user_id = ?", userID).
		Select("MAX(updated_at) AS last_updated, MAX(deleted_at) AS last_deleted").
		Scan(&row).Error
	if err != nil {
		return time.Time{}, err
	}

	var stamp time.Time
	if row.LastUpdated.Valid {
		stamp = row.LastUpdated.Time
	}
	if row.LastDeleted.Valid && row.LastDeleted.Time.After(stamp) {
		stamp = row.LastDeleted.Time
	}
	return stamp, nil
}
