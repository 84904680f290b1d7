package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

type LikeRepository interface {
	GetOrCreate(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (*model.Like, bool, error)
	Get(ctx context.Context, id string) (*model.Like, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (bool, error)
	ListBySender(ctx context.Context, senderID string, offset, limit int) ([]*model.Like, error)
	ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

// GetOrCreate 幂等：重复点赞返回已存在的边
func (r *likeRepository) GetOrCreate(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (*model.Like, bool, error) {
	l := &model.Like{ID: uuid.New().String(), SenderID: senderID, ContentType: string(kind), ObjectID: objectID}
	return createOrFetch(ctx, r.db, l,
		"sender_id = ? AND content_type = ? AND object_id = ?", senderID, string(kind), objectID)
}

func (r *likeRepository) Get(ctx context.Context, id string) (*model.Like, error) {
	var l model.Like
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *likeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Like{}).Error
}

func (r *likeRepository) Exists(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("sender_id = ? AND content_type = ? AND object_id = ?", senderID, string(kind), objectID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *likeRepository) ListBySender(ctx context.Context, senderID string, offset, limit int) ([]*model.Like, error) {
	var res []*model.Like
	err := r.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *likeRepository) ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.Like, error) {
	var res []*model.Like
	err := r.db.WithContext(ctx).
		Where("content_type = ? AND object_id = ?", string(kind), objectID).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}
