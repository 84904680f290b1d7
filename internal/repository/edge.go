package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// createOrFetch is the single get-or-create path shared by every edge kind
// with a composite unique key. It attempts the insert with ON CONFLICT DO
// NOTHING; when the key already exists (including when a concurrent writer
// won the race) it re-reads the surviving row by key instead of surfacing a
// conflict. The bool reports whether this call inserted the row.
func createOrFetch[T any](ctx context.Context, db *gorm.DB, row *T, key string, args ...any) (*T, bool, error) {
	res := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return row, true, nil
	}
	var existing T
	if err := db.WithContext(ctx).Where(key, args...).First(&existing).Error; err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}
