package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func newUser(t *testing.T, db *gorm.DB, name string) model.User {
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

func TestLikeGetOrCreateIdempotent(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	first, created, err := repo.GetOrCreate(ctx, "u1", model.KindArticle, "a1")
	require.NoError(t, err)
	assert.True(t, created)

	// 重复提交收敛到同一条边
	second, created, err := repo.GetOrCreate(ctx, "u1", model.KindArticle, "a1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var cnt int64
	require.NoError(t, db.Model(&model.Like{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestLikeSameTargetIDDifferentKinds(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	// object_id 相同但 content_type 不同是两条独立的边
	_, created, err := repo.GetOrCreate(ctx, "u1", model.KindArticle, "x")
	require.NoError(t, err)
	assert.True(t, created)
	_, created, err = repo.GetOrCreate(ctx, "u1", model.KindPin, "x")
	require.NoError(t, err)
	assert.True(t, created)

	var cnt int64
	require.NoError(t, db.Model(&model.Like{}).Count(&cnt).Error)
	assert.EqualValues(t, 2, cnt)
}

func TestFollowGetOrCreateAndDelete(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	f, created, err := repo.GetOrCreate(ctx, "u1", model.KindUser, "u2")
	require.NoError(t, err)
	assert.True(t, created)

	ok, err := repo.Exists(ctx, "u1", model.KindUser, "u2")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, f.ID))
	ok, err = repo.Exists(ctx, "u1", model.KindUser, "u2")
	require.NoError(t, err)
	assert.False(t, ok)

	// 删除后再建是一条新边
	f2, created, err := repo.GetOrCreate(ctx, "u1", model.KindUser, "u2")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, f.ID, f2.ID)
}

func TestFollowGetOrCreateConcurrent(t *testing.T) {
	db := setupRepoDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库收敛到单连接，让并发 goroutine 共享同一份数据
	sqlDB.SetMaxOpenConns(1)

	repo := NewFollowRepository(db)
	const n = 16
	type result struct {
		id  string
		err error
	}
	results := make(chan result, n)
	for i := 0; i < n; i++ {
		go func() {
			f, _, err := repo.GetOrCreate(context.Background(), "u1", model.KindUser, "u2")
			if err != nil {
				results <- result{err: err}
				return
			}
			results <- result{id: f.ID}
		}()
	}

	// 并发竞争收敛到同一条边
	ids := map[string]bool{}
	for i := 0; i < n; i++ {
		r := <-results
		require.NoError(t, r.err)
		ids[r.id] = true
	}
	assert.Len(t, ids, 1)

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestTagGetOrCreate(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	tag, created, err := repo.GetOrCreateTag(ctx, "Go", "go")
	require.NoError(t, err)
	assert.True(t, created)

	same, created, err := repo.GetOrCreateTag(ctx, "Go", "go")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, tag.ID, same.ID)

	item, created, err := repo.GetOrCreateItem(ctx, tag.ID, model.KindArticle, "a1")
	require.NoError(t, err)
	assert.True(t, created)
	again, created, err := repo.GetOrCreateItem(ctx, tag.ID, model.KindArticle, "a1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, item.ID, again.ID)
}

func TestTagGetOrCreateSlugCollision(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	tag, created, err := repo.GetOrCreateTag(ctx, "Web Dev", "web-dev")
	require.NoError(t, err)
	assert.True(t, created)

	// 不同名字落到同一 slug，收敛到已有标签而不是报错
	same, created, err := repo.GetOrCreateTag(ctx, "Web-Dev", "web-dev")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, tag.ID, same.ID)
	assert.Equal(t, "Web Dev", same.Name)
}
