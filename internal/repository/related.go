package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
)

// Related returns a query over target-kind rows that the owner attached an
// edge to (the owner is the edge source): users someone follows, articles a
// collection collected, and so on. Column roles come from the edge struct's
// declared layout, so the one function serves every edge table.
//
// An empty ownerID means the owning row was never persisted; that is a
// use-before-save bug, so it panics instead of returning an empty query.
func Related(db *gorm.DB, cat *catalog.Catalog, edge catalog.Tabler, ownerID string, target catalog.Kind) *gorm.DB {
	if ownerID == "" {
		panic("repository: related accessor on an instance with no primary key")
	}
	layout := catalog.LayoutOf(edge)
	tm := cat.MustLookup(target)

	sub := db.Session(&gorm.Session{NewDB: true}).
		Table(layout.Table).
		Select(layout.Target).
		Where(fmt.Sprintf("%s = ? AND %s = ?", layout.Source, layout.Kind), ownerID, string(target))

	return db.Table(tm.Table).
		Where(fmt.Sprintf("%s.%s IN (?)", tm.Table, tm.PK), sub).
		Order(fmt.Sprintf("%s.%s", tm.Table, tm.PK))
}

// Reversed returns a query over target-kind rows whose edges point at the
// owner: a user's followers, the users who liked a comment. The owner side is
// the edge's polymorphic target here, so the projection flips to the source
// column.
func Reversed(db *gorm.DB, cat *catalog.Catalog, edge catalog.Tabler, ownerKind catalog.Kind, ownerID string, target catalog.Kind) *gorm.DB {
	if ownerID == "" {
		panic("repository: reversed accessor on an instance with no primary key")
	}
	layout := catalog.LayoutOf(edge)
	tm := cat.MustLookup(target)

	sub := db.Session(&gorm.Session{NewDB: true}).
		Table(layout.Table).
		Select(layout.Source).
		Where(fmt.Sprintf("%s = ? AND %s = ?", layout.Kind, layout.Target), string(ownerKind), ownerID)

	return db.Table(tm.Table).
		Where(fmt.Sprintf("%s.%s IN (?)", tm.Table, tm.PK), sub).
		Order(fmt.Sprintf("%s.%s", tm.Table, tm.PK))
}
