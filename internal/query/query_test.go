package query

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) model.User {
	t.Helper()
	u := model.User{
		ID:       uuid.New().String(),
		Username: name,
		Email:    name + "@example.com",
		Password: "p",
		Nickname: name,
		IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedArticle(t *testing.T, db *gorm.DB, authorID string, title string) model.Article {
	t.Helper()
	a := model.Article{
		ID:       uuid.New().String(),
		AuthorID: authorID,
		Title:    title,
		Body:     "body",
		Status:   model.ArticleStatusPublished,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}
