package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)
	Get(ctx context.Context, id string) (*model.Comment, error)
	DeleteTx(tx *gorm.DB, id string) error
	ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Comment, error)
	ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.Comment, error)
	ListChildren(ctx context.Context, parentID string, offset, limit int) ([]*model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

// Create 评论是多值边，不做 get-or-create
func (r *commentRepository) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) Get(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteTx 在既有事务内删除评论本体；回复树与点赞边由 cleanup 统一清理
func (r *commentRepository) DeleteTx(tx *gorm.DB, id string) error {
	return tx.Where("id = ?", id).Delete(&model.Comment{}).Error
}

func (r *commentRepository) ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND enabled = ?", authorID, true).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *commentRepository) ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("content_type = ? AND object_id = ? AND enabled = ?", string(kind), objectID, true).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *commentRepository) ListChildren(ctx context.Context, parentID string, offset, limit int) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND enabled = ?", parentID, true).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}
