package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/query"
)

// ArticleRow 文章行 + 当前查看者的关系注解
type ArticleRow struct {
	model.Article    `gorm:"embedded"`
	query.ViewerMeta `gorm:"embedded"`
}

type ArticleRepository interface {
	Create(ctx context.Context, a *model.Article) (*model.Article, error)
	Get(ctx context.Context, id string) (*model.Article, error)
	// ListPublished 按查看者注解 is_liked / is_collected；viewerID 为空表示匿名
	ListPublished(ctx context.Context, viewerID string, rel query.Relations, offset, limit int) ([]ArticleRow, error)
	DeleteTx(tx *gorm.DB, id string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository { return &articleRepository{db: db} }

func (r *articleRepository) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *articleRepository) Get(ctx context.Context, id string) (*model.Article, error) {
	var a model.Article
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepository) ListPublished(ctx context.Context, viewerID string, rel query.Relations, offset, limit int) ([]ArticleRow, error) {
	cat := model.Catalog()
	base := cat.Resolve(model.Article{})

	tx := r.db.WithContext(ctx).
		Model(&model.Article{}).
		Where("articles.status = ?", model.ArticleStatusPublished)
	tx = query.Annotate(tx, cat, base, viewerID, rel)

	var rows []ArticleRow
	err := tx.Order("articles.created_at DESC, articles.id").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	return rows, err
}

// DeleteTx 在既有事务内删除文章本体；指向它的边由 cleanup 统一清理
func (r *articleRepository) DeleteTx(tx *gorm.DB, id string) error {
	return tx.Where("id = ?", id).Delete(&model.Article{}).Error
}
