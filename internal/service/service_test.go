package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/repository"
	"github.com/d60-Lab/weblog/pkg/logger"
)

func setupSvcDB(t *testing.T) *gorm.DB {
	t.Helper()
	_ = logger.Init("debug")
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func svcUser(t *testing.T, db *gorm.DB, name string) model.User {
	t.Helper()
	u := model.User{
		ID:       uuid.New().String(),
		Username: name,
		Email:    name + "@example.com",
		Password: "p",
		IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func svcArticle(t *testing.T, db *gorm.DB, authorID string) model.Article {
	t.Helper()
	a := model.Article{
		ID:       uuid.New().String(),
		AuthorID: authorID,
		Title:    "t",
		Status:   model.ArticleStatusPublished,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func newLikeSvc(db *gorm.DB) LikeService {
	return NewLikeService(db, repository.NewLikeRepository(db), nil)
}

func newFollowSvc(db *gorm.DB) FollowService {
	return NewFollowService(db, repository.NewFollowRepository(db), repository.NewRelationAccessor(db), nil, nil)
}

func newCollectSvc(db *gorm.DB) CollectService {
	return NewCollectService(db,
		repository.NewCollectRepository(db),
		repository.NewCollectionRepository(db),
		repository.NewRelationAccessor(db), nil)
}

func ctxT() context.Context { return context.Background() }
