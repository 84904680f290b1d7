package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

type TagRepository interface {
	GetOrCreateTag(ctx context.Context, name, slug string) (*model.Tag, bool, error)
	GetTag(ctx context.Context, id string) (*model.Tag, error)
	GetOrCreateItem(ctx context.Context, tagID string, kind catalog.Kind, objectID string) (*model.TaggedItem, bool, error)
	GetItem(ctx context.Context, id string) (*model.TaggedItem, error)
	DeleteItem(ctx context.Context, id string) error
	ListItemsByTag(ctx context.Context, tagID string, offset, limit int) ([]*model.TaggedItem, error)
	ListItemsByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.TaggedItem, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository { return &tagRepository{db: db} }

// GetOrCreateTag 幂等；唯一键在 slug 上，不同名字落到同一 slug 时收敛到已有标签
func (r *tagRepository) GetOrCreateTag(ctx context.Context, name, slug string) (*model.Tag, bool, error) {
	t := &model.Tag{ID: uuid.New().String(), Name: name, Slug: slug}
	return createOrFetch(ctx, r.db, t, "slug = ?", slug)
}

func (r *tagRepository) GetTag(ctx context.Context, id string) (*model.Tag, error) {
	var t model.Tag
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// GetOrCreateItem 幂等：同一标签重复贴到同一目标返回已存在的边
func (r *tagRepository) GetOrCreateItem(ctx context.Context, tagID string, kind catalog.Kind, objectID string) (*model.TaggedItem, bool, error) {
	it := &model.TaggedItem{ID: uuid.New().String(), TagID: tagID, ContentType: string(kind), ObjectID: objectID}
	return createOrFetch(ctx, r.db, it,
		"tag_id = ? AND content_type = ? AND object_id = ?", tagID, string(kind), objectID)
}

func (r *tagRepository) GetItem(ctx context.Context, id string) (*model.TaggedItem, error) {
	var it model.TaggedItem
	if err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *tagRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TaggedItem{}).Error
}

func (r *tagRepository) ListItemsByTag(ctx context.Context, tagID string, offset, limit int) ([]*model.TaggedItem, error) {
	var res []*model.TaggedItem
	err := r.db.WithContext(ctx).
		Where("tag_id = ?", tagID).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *tagRepository) ListItemsByTarget(ctx context.Context, kind catalog.Kind, objectID string, offset, limit int) ([]*model.TaggedItem, error) {
	var res []*model.TaggedItem
	err := r.db.WithContext(ctx).
		Where("content_type = ? AND object_id = ?", string(kind), objectID).
		Order("id").Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}
