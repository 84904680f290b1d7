package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/query"
	"github.com/d60-Lab/weblog/internal/repository"
)

// ArticleService 文章服务
type ArticleService interface {
	Create(ctx context.Context, authorID, categoryID, title, body string, publish bool) (*model.Article, error)
	Get(ctx context.Context, id string) (*model.Article, error)
	// List 已发布文章列表，按需注解查看者关系；viewerID 为空表示匿名
	List(ctx context.Context, viewerID string, rel query.Relations, page, pageSize int) ([]repository.ArticleRow, error)
	// Delete 删除文章并在同一事务内级联清理指向它的边
	Delete(ctx context.Context, actor Actor, id string) error
}

type articleService struct {
	db          *gorm.DB
	articleRepo repository.ArticleRepository
	counter     *ReactionCounter
}

func NewArticleService(db *gorm.DB, articleRepo repository.ArticleRepository, counter *ReactionCounter) ArticleService {
	return &articleService{db: db, articleRepo: articleRepo, counter: counter}
}

func (s *articleService) Create(ctx context.Context, authorID, categoryID, title, body string, publish bool) (*model.Article, error) {
	status := int8(model.ArticleStatusDraft)
	if publish {
		status = model.ArticleStatusPublished
	}
	return s.articleRepo.Create(ctx, &model.Article{
		AuthorID:   authorID,
		CategoryID: categoryID,
		Title:      title,
		Body:       body,
		Status:     status,
	})
}

func (s *articleService) Get(ctx context.Context, id string) (*model.Article, error) {
	a, err := s.articleRepo.Get(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	return a, err
}

func (s *articleService) List(ctx context.Context, viewerID string, rel query.Relations, page, pageSize int) ([]repository.ArticleRow, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.articleRepo.ListPublished(ctx, viewerID, rel, (page-1)*pageSize, pageSize)
}

func (s *articleService) Delete(ctx context.Context, actor Actor, id string) error {
	article, err := s.articleRepo.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if err := runChecks(ctx, checkOwner(actor, article.AuthorID)); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := PurgeTargetEdges(tx, s.counter, model.KindArticle, id); err != nil {
			return err
		}
		return s.articleRepo.DeleteTx(tx, id)
	})
}
