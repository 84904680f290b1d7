package query

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
)

type articleRow struct {
	model.Article `gorm:"embedded"`
	ViewerMeta    `gorm:"embedded"`
}

type userRow struct {
	model.User `gorm:"embedded"`
	ViewerMeta `gorm:"embedded"`
}

func listArticles(t *testing.T, db *gorm.DB, viewerID string, rel Relations) []articleRow {
	t.Helper()
	cat := model.Catalog()
	tx := Annotate(db.Model(&model.Article{}), cat, cat.Resolve(model.Article{}), viewerID, rel)
	var rows []articleRow
	require.NoError(t, tx.Order("articles.id").Find(&rows).Error)
	return rows
}

func TestAnnotateIsLiked(t *testing.T) {
	db := setupDB(t)
	viewer := seedUser(t, db, "viewer")
	author := seedUser(t, db, "author")
	liked := seedArticle(t, db, author.ID, "liked")
	seedArticle(t, db, author.ID, "plain")

	require.NoError(t, db.Create(&model.Like{
		ID: uuid.New().String(), SenderID: viewer.ID,
		ContentType: string(model.KindArticle), ObjectID: liked.ID,
	}).Error)

	rows := listArticles(t, db, viewer.ID, Relations{IsLiked: true})
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, r.Article.ID == liked.ID, r.IsLiked(), r.Title)
	}
}

func TestAnnotateAnonymousAllFalse(t *testing.T) {
	db := setupDB(t)
	author := seedUser(t, db, "author")
	a := seedArticle(t, db, author.ID, "a")

	// 别人点过赞也不影响匿名视角
	require.NoError(t, db.Create(&model.Like{
		ID: uuid.New().String(), SenderID: author.ID,
		ContentType: string(model.KindArticle), ObjectID: a.ID,
	}).Error)

	rows := listArticles(t, db, "", Relations{IsLiked: true, IsCollected: true})
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsLiked())
	assert.False(t, rows[0].IsCollected())
}

func TestAnnotateFollowingAndFollowed(t *testing.T) {
	db := setupDB(t)
	cat := model.Catalog()
	viewer := seedUser(t, db, "viewer")
	mutual := seedUser(t, db, "mutual")
	fan := seedUser(t, db, "fan")
	stranger := seedUser(t, db, "stranger")

	mkFollow := func(from, to string) {
		require.NoError(t, db.Create(&model.Follow{
			ID: uuid.New().String(), SenderID: from,
			ContentType: string(model.KindUser), ObjectID: to,
		}).Error)
	}
	mkFollow(viewer.ID, mutual.ID)
	mkFollow(mutual.ID, viewer.ID)
	mkFollow(fan.ID, viewer.ID)

	tx := Annotate(db.Model(&model.User{}), cat, cat.Resolve(model.User{}), viewer.ID,
		Relations{IsFollowing: true, IsFollowed: true})
	var rows []userRow
	require.NoError(t, tx.Order("users.id").Find(&rows).Error)
	require.Len(t, rows, 4)

	byID := make(map[string]userRow, len(rows))
	for _, r := range rows {
		byID[r.User.ID] = r
	}
	assert.True(t, byID[mutual.ID].IsFollowing())
	assert.True(t, byID[mutual.ID].IsFollowed())
	assert.False(t, byID[fan.ID].IsFollowing())
	assert.True(t, byID[fan.ID].IsFollowed())
	assert.False(t, byID[stranger.ID].IsFollowing())
	assert.False(t, byID[stranger.ID].IsFollowed())
}

func TestAnnotateIsCollectedNoRowDuplication(t *testing.T) {
	db := setupDB(t)
	viewer := seedUser(t, db, "viewer")
	author := seedUser(t, db, "author")
	a := seedArticle(t, db, author.ID, "a")

	// 同一篇文章进了查看者的两个收藏夹，结果行不能重复
	for _, name := range []string{"read later", "favorites"} {
		col := model.Collection{ID: uuid.New().String(), UserID: viewer.ID, Name: name}
		require.NoError(t, db.Create(&col).Error)
		require.NoError(t, db.Create(&model.Collect{
			ID: uuid.New().String(), CollectionID: col.ID,
			ContentType: string(model.KindArticle), ObjectID: a.ID,
		}).Error)
	}
	// 别人的收藏夹不算
	other := seedUser(t, db, "other")
	otherCol := model.Collection{ID: uuid.New().String(), UserID: other.ID, Name: "theirs"}
	require.NoError(t, db.Create(&otherCol).Error)

	rows := listArticles(t, db, viewer.ID, Relations{IsCollected: true})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsCollected())

	rows = listArticles(t, db, other.ID, Relations{IsCollected: true})
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsCollected())
}

func TestAnnotateCombined(t *testing.T) {
	db := setupDB(t)
	viewer := seedUser(t, db, "viewer")
	author := seedUser(t, db, "author")
	a := seedArticle(t, db, author.ID, "a")

	require.NoError(t, db.Create(&model.Like{
		ID: uuid.New().String(), SenderID: viewer.ID,
		ContentType: string(model.KindArticle), ObjectID: a.ID,
	}).Error)
	col := model.Collection{ID: uuid.New().String(), UserID: viewer.ID, Name: "c"}
	require.NoError(t, db.Create(&col).Error)
	require.NoError(t, db.Create(&model.Collect{
		ID: uuid.New().String(), CollectionID: col.ID,
		ContentType: string(model.KindArticle), ObjectID: a.ID,
	}).Error)

	rows := listArticles(t, db, viewer.ID, Relations{IsLiked: true, IsCollected: true})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsLiked())
	assert.True(t, rows[0].IsCollected())
}
