package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

type FollowRepository interface {
	GetOrCreate(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (*model.Follow, bool, error)
	Get(ctx context.Context, id string) (*model.Follow, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (bool, error)
	ListBySender(ctx context.Context, senderID string, offset, limit int) ([]*model.Follow, error)
	ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.Follow, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

// GetOrCreate 幂等：重复关注返回已存在的边
func (r *followRepository) GetOrCreate(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (*model.Follow, bool, error) {
	f := &model.Follow{ID: uuid.New().String(), SenderID: senderID, ContentType: string(kind), ObjectID: objectID}
	return createOrFetch(ctx, r.db, f,
		"sender_id = ? AND content_type = ? AND object_id = ?", senderID, string(kind), objectID)
}

func (r *followRepository) Get(ctx context.Context, id string) (*model.Follow, error) {
	var f model.Follow
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *followRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("sender_id = ? AND content_type = ? AND object_id = ?", senderID, string(kind), objectID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *followRepository) ListBySender(ctx context.Context, senderID string, offset, limit int) ([]*model.Follow, error) {
	var res []*model.Follow
	err := r.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *followRepository) ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.Follow, error) {
	var res []*model.Follow
	err := r.db.WithContext(ctx).
		Where("content_type = ? AND object_id = ?", string(kind), objectID).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}
