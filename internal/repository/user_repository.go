package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/query"
)

// UserRow 用户行 + 当前查看者的关系注解（是否被我关注 / 是否关注了我）
type UserRow struct {
	model.User       `gorm:"embedded"`
	query.ViewerMeta `gorm:"embedded"`
}

type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListActive(ctx context.Context, viewerID string, rel query.Relations, offset, limit int) ([]UserRow, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ListActive(ctx context.Context, viewerID string, rel query.Relations, offset, limit int) ([]UserRow, error) {
	cat := model.Catalog()
	base := cat.Resolve(model.User{})

	tx := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("users.is_active = ?", true)
	tx = query.Annotate(tx, cat, base, viewerID, rel)

	var rows []UserRow
	err := tx.Order("users.id").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	return rows, err
}
