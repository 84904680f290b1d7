package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/query"
)

// PinRow 动态行 + 当前查看者的关系注解
type PinRow struct {
	model.Pin        `gorm:"embedded"`
	query.ViewerMeta `gorm:"embedded"`
}

type PinRepository interface {
	Create(ctx context.Context, p *model.Pin) (*model.Pin, error)
	Get(ctx context.Context, id string) (*model.Pin, error)
	ListRecent(ctx context.Context, viewerID string, rel query.Relations, offset, limit int) ([]PinRow, error)
	DeleteTx(tx *gorm.DB, id string) error
}

type pinRepository struct {
	db *gorm.DB
}

func NewPinRepository(db *gorm.DB) PinRepository { return &pinRepository{db: db} }

func (r *pinRepository) Create(ctx context.Context, p *model.Pin) (*model.Pin, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pinRepository) Get(ctx context.Context, id string) (*model.Pin, error) {
	var p model.Pin
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pinRepository) ListRecent(ctx context.Context, viewerID string, rel query.Relations, offset, limit int) ([]PinRow, error) {
	cat := model.Catalog()
	base := cat.Resolve(model.Pin{})

	tx := r.db.WithContext(ctx).Model(&model.Pin{})
	tx = query.Annotate(tx, cat, base, viewerID, rel)

	var rows []PinRow
	err := tx.Order("pins.created_at DESC, pins.id").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	return rows, err
}

// DeleteTx 在既有事务内删除动态本体；指向它的边由 cleanup 统一清理
func (r *pinRepository) DeleteTx(tx *gorm.DB, id string) error {
	return tx.Where("id = ?", id).Delete(&model.Pin{}).Error
}
