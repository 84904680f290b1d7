package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

// RelationAccessor 把 Related/Reversed 两个通用访问器落到具体的命名关系上：
// 我关注的人、关注我的人、我喜欢的文章、收藏夹收藏的动态……
// 全部关系共用同一套边表列角色发现，不为单个关系写专用 SQL。
type RelationAccessor struct {
	db  *gorm.DB
	cat *catalog.Catalog
}

func NewRelationAccessor(db *gorm.DB) *RelationAccessor {
	return &RelationAccessor{db: db, cat: model.Catalog()}
}

func find[T any](q *gorm.DB, offset, limit int) ([]T, error) {
	var res []T
	err := q.Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

// UserFollowing 我关注的人
func (a *RelationAccessor) UserFollowing(ctx context.Context, userID string, offset, limit int) ([]model.User, error) {
	q := Related(a.db.WithContext(ctx), a.cat, model.Follow{}, userID, model.KindUser)
	return find[model.User](q, offset, limit)
}

// UserFollowers 关注我的人
func (a *RelationAccessor) UserFollowers(ctx context.Context, userID string, offset, limit int) ([]model.User, error) {
	q := Reversed(a.db.WithContext(ctx), a.cat, model.Follow{}, model.KindUser, userID, model.KindUser)
	return find[model.User](q, offset, limit)
}

// UserFollowingTopics 我关注的话题
func (a *RelationAccessor) UserFollowingTopics(ctx context.Context, userID string, offset, limit int) ([]model.Topic, error) {
	q := Related(a.db.WithContext(ctx), a.cat, model.Follow{}, userID, model.KindTopic)
	return find[model.Topic](q, offset, limit)
}

// UserFollowingCategories 我关注的分类
func (a *RelationAccessor) UserFollowingCategories(ctx context.Context, userID string, offset, limit int) ([]model.Category, error) {
	q := Related(a.db.WithContext(ctx), a.cat, model.Follow{}, userID, model.KindCategory)
	return find[model.Category](q, offset, limit)
}

// UserFollowingCollections 我关注的收藏夹
func (a *RelationAccessor) UserFollowingCollections(ctx context.Context, userID string, offset, limit int) ([]model.Collection, error) {
	q := Related(a.db.WithContext(ctx), a.cat, model.Follow{}, userID, model.KindCollection)
	return find[model.Collection](q, offset, limit)
}

// UserLikingArticles 我喜欢的文章
func (a *RelationAccessor) UserLikingArticles(ctx context.Context, userID string, offset, limit int) ([]model.Article, error) {
	q := Related(a.db.WithContext(ctx), a.cat, model.Like{}, userID, model.KindArticle)
	return find[model.Article](q, offset, limit)
}

// UserLikingPins 我喜欢的动态
func (a *RelationAccessor) UserLikingPins(ctx context.Context, userID string, offset, limit int) ([]model.Pin, error) {
	q := Related(a.db.WithContext(ctx), a.cat, model.Like{}, userID, model.KindPin)
	return find[model.Pin](q, offset, limit)
}

// CollectionArticles 收藏夹收藏的文章
func (a *RelationAccessor) CollectionArticles(ctx context.Context, collectionID string, offset, limit int) ([]model.Article, error) {
	q := Related(a.db.WithContext(ctx), a.cat, model.Collect{}, collectionID, model.KindArticle)
	return find[model.Article](q, offset, limit)
}

// CollectionPins 收藏夹收藏的动态
func (a *RelationAccessor) CollectionPins(ctx context.Context, collectionID string, offset, limit int) ([]model.Pin, error) {
	q := Related(a.db.WithContext(ctx), a.cat, model.Collect{}, collectionID, model.KindPin)
	return find[model.Pin](q, offset, limit)
}

// ArticleLikers 喜欢文章的人
func (a *RelationAccessor) ArticleLikers(ctx context.Context, articleID string, offset, limit int) ([]model.User, error) {
	q := Reversed(a.db.WithContext(ctx), a.cat, model.Like{}, model.KindArticle, articleID, model.KindUser)
	return find[model.User](q, offset, limit)
}

// CommentLikers 喜欢评论的人
func (a *RelationAccessor) CommentLikers(ctx context.Context, commentID string, offset, limit int) ([]model.User, error) {
	q := Reversed(a.db.WithContext(ctx), a.cat, model.Like{}, model.KindComment, commentID, model.KindUser)
	return find[model.User](q, offset, limit)
}

// TopicFollowers 关注话题的人
func (a *RelationAccessor) TopicFollowers(ctx context.Context, topicID string, offset, limit int) ([]model.User, error) {
	q := Reversed(a.db.WithContext(ctx), a.cat, model.Follow{}, model.KindTopic, topicID, model.KindUser)
	return find[model.User](q, offset, limit)
}

// TagArticles 贴了某标签的文章
func (a *RelationAccessor) TagArticles(ctx context.Context, tagID string, offset, limit int) ([]model.Article, error) {
	q := Related(a.db.WithContext(ctx), a.cat, model.TaggedItem{}, tagID, model.KindArticle)
	return find[model.Article](q, offset, limit)
}

// ArticleCollections 收藏了文章的收藏夹
func (a *RelationAccessor) ArticleCollections(ctx context.Context, articleID string, offset, limit int) ([]model.Collection, error) {
	q := Reversed(a.db.WithContext(ctx), a.cat, model.Collect{}, model.KindArticle, articleID, model.KindCollection)
	return find[model.Collection](q, offset, limit)
}
