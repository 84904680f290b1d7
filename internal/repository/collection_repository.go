package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
)

type CollectionRepository interface {
	Create(ctx context.Context, c *model.Collection) (*model.Collection, error)
	Get(ctx context.Context, id string) (*model.Collection, error)
	DeleteTx(tx *gorm.DB, id string) error
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Collection, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, c *model.Collection) (*model.Collection, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *collectionRepository) Get(ctx context.Context, id string) (*model.Collection, error) {
	var c model.Collection
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteTx 在既有事务内删除收藏夹本体；夹内收藏边由 cleanup 统一清理
func (r *collectionRepository) DeleteTx(tx *gorm.DB, id string) error {
	return tx.Where("id = ?", id).Delete(&model.Collection{}).Error
}

func (r *collectionRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*model.Collection, error) {
	var res []*model.Collection
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}
