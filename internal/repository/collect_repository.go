package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

type CollectRepository interface {
	GetOrCreate(ctx context.Context, collectionID string, kind catalog.Kind, objectID string) (*model.Collect, bool, error)
	Get(ctx context.Context, id string) (*model.Collect, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, collectionID string, kind catalog.Kind, objectID string) (bool, error)
	ListByCollection(ctx context.Context, collectionID string, offset, limit int) ([]*model.Collect, error)
	ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.Collect, error)
}

type collectRepository struct {
	db *gorm.DB
}

func NewCollectRepository(db *gorm.DB) CollectRepository { return &collectRepository{db: db} }

func (r *collectRepository) GetOrCreate(ctx context.Context, collectionID string, kind catalog.Kind, objectID string) (*model.Collect, bool, error) {
	c := &model.Collect{ID: uuid.New().String(), CollectionID: collectionID, ContentType: string(kind), ObjectID: objectID}
	return createOrFetch(ctx, r.db, c,
		"collection_id = ? AND content_type = ? AND object_id = ?", collectionID, string(kind), objectID)
}

func (r *collectRepository) Get(ctx context.Context, id string) (*model.Collect, error) {
	var c model.Collect
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *collectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Collect{}).Error
}

func (r *collectRepository) Exists(ctx context.Context, collectionID string, kind catalog.Kind, objectID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Collect{}).
		Where("collection_id = ? AND content_type = ? AND object_id = ?", collectionID, string(kind), objectID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *collectRepository) ListByCollection(ctx context.Context, collectionID string, offset, limit int) ([]*model.Collect, error) {
	var res []*model.Collect
	err := r.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *collectRepository) ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.Collect, error) {
	var res []*model.Collect
	err := r.db.WithContext(ctx).
		Where("content_type = ? AND object_id = ?", string(kind), objectID).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}
