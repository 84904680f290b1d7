package query

import (
	"context"
	"fmt"
	"math/rand"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
)

// Sample loads up to n pseudo-random rows of the given kind into dest (a
// pointer to a slice of the model type). It counts the table, picks a random
// primary-key floor at a random offset, and returns the first n rows at or
// above it ordered by primary key.
//
// The sample is biased (rows after the floor are always contiguous in key
// order), which is fine for seed tooling but unsuitable for statistics.
func Sample(ctx context.Context, db *gorm.DB, meta catalog.Meta, n int, dest any) error {
	if n <= 0 {
		return nil
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Table(meta.Table).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return nil
		}
		pk := fmt.Sprintf("%s.%s", meta.Table, meta.PK)
		if cnt <= int64(n) {
			return tx.Table(meta.Table).Order(pk).Find(dest).Error
		}

		offset := rand.Intn(int(cnt) - n + 1)
		var floor string
		if err := tx.Table(meta.Table).
			Select(pk).
			Order(pk).
			Offset(offset).
			Limit(1).
			Scan(&floor).Error; err != nil {
			return err
		}
		return tx.Table(meta.Table).
			Where(fmt.Sprintf("%s >= ?", pk), floor).
			Order(pk).
			Limit(n).
			Find(dest).Error
	})
}
