package query

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

func TestOuterJoinPreservesBaseRows(t *testing.T) {
	db := setupDB(t)
	cat := model.Catalog()

	viewer := seedUser(t, db, "viewer")
	author := seedUser(t, db, "author")
	a1 := seedArticle(t, db, author.ID, "liked")
	seedArticle(t, db, author.ID, "not liked")
	seedArticle(t, db, author.ID, "also not liked")

	require.NoError(t, db.Create(&model.Like{
		ID: uuid.New().String(), SenderID: viewer.ID,
		ContentType: string(model.KindArticle), ObjectID: a1.ID,
	}).Error)

	base := cat.Resolve(model.Article{})
	like := catalog.LayoutOf(model.Like{})

	b := NewBuilder(db.Model(&model.Article{}), base)
	alias := b.OuterJoin(like,
		[][2]string{{base.PK, like.Target}},
		Cond{like.Kind, string(model.KindArticle)},
		Cond{like.Source, viewer.ID},
	)

	var rows []struct {
		model.Article `gorm:"embedded"`
		LikeID        *string `gorm:"column:like_id"`
	}
	err := b.DB().
		Select("articles.*, " + alias + ".id AS like_id").
		Order("articles.id").
		Find(&rows).Error
	require.NoError(t, err)

	// 外连接不丢基表行：没有边的行照样返回，投影列为 NULL
	require.Len(t, rows, 3)
	matched := 0
	for _, r := range rows {
		if r.LikeID != nil {
			matched++
			assert.Equal(t, a1.ID, r.Article.ID)
		}
	}
	assert.Equal(t, 1, matched)
}

func TestOuterJoinDistinctAliases(t *testing.T) {
	db := setupDB(t)
	cat := model.Catalog()
	base := cat.Resolve(model.User{})
	follow := catalog.LayoutOf(model.Follow{})

	b := NewBuilder(db.Model(&model.User{}), base)
	a1 := b.OuterJoin(follow, [][2]string{{base.PK, follow.Target}}, Cond{follow.Source, "v"})
	a2 := b.OuterJoin(follow, [][2]string{{base.PK, follow.Source}}, Cond{follow.Target, "v"})

	// 同一边表可以在一条查询里连接两次
	assert.NotEqual(t, a1, a2)
	assert.Equal(t, "follows_j1", a1)
	assert.Equal(t, "follows_j2", a2)

	var rows []model.User
	require.NoError(t, b.DB().Select("users.*").Find(&rows).Error)
}

func TestOuterJoinEmptyOnClausePanics(t *testing.T) {
	db := setupDB(t)
	cat := model.Catalog()
	b := NewBuilder(db.Model(&model.User{}), cat.Resolve(model.User{}))

	assert.Panics(t, func() {
		b.OuterJoin(catalog.LayoutOf(model.Follow{}), nil)
	})
}
