package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/repository"
)

// TagService 标签服务；贴标签的删除权限落在目标内容的属主上
type TagService interface {
	TagTarget(ctx context.Context, actor Actor, tagName string, kind catalog.Kind, objectID string) (*model.TaggedItem, error)
	UntagTarget(ctx context.Context, actor Actor, itemID string) error
	ListTagArticles(ctx context.Context, tagID string, page, pageSize int) ([]model.Article, error)
}

type tagService struct {
	db        *gorm.DB
	cat       *catalog.Catalog
	tagRepo   repository.TagRepository
	relations *repository.RelationAccessor
}

func NewTagService(db *gorm.DB, tagRepo repository.TagRepository, relations *repository.RelationAccessor) TagService {
	return &tagService{db: db, cat: model.Catalog(), tagRepo: tagRepo, relations: relations}
}

func slugify(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// TagTarget 标签不存在则建；同一标签重复贴到同一目标幂等
func (s *tagService) TagTarget(ctx context.Context, actor Actor, tagName string, kind catalog.Kind, objectID string) (*model.TaggedItem, error) {
	if err := runChecks(ctx,
		checkKindAllowed(tagTargets, kind),
		checkTargetExists(s.db, s.cat, kind, objectID),
		s.checkTargetOwner(actor, kind, objectID),
	); err != nil {
		return nil, err
	}
	tag, _, err := s.tagRepo.GetOrCreateTag(ctx, tagName, slugify(tagName))
	if err != nil {
		return nil, err
	}
	item, _, err := s.tagRepo.GetOrCreateItem(ctx, tag.ID, kind, objectID)
	return item, err
}

func (s *tagService) UntagTarget(ctx context.Context, actor Actor, itemID string) error {
	item, err := s.tagRepo.GetItem(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if err := runChecks(ctx, s.checkTargetOwner(actor, catalog.Kind(item.ContentType), item.ObjectID)); err != nil {
		return err
	}
	return s.tagRepo.DeleteItem(ctx, itemID)
}

// checkTargetOwner 归属委托给被贴标签的内容本身
func (s *tagService) checkTargetOwner(actor Actor, kind catalog.Kind, objectID string) checkFunc {
	return func(ctx context.Context) error {
		if actor.Admin {
			return nil
		}
		ownerID, err := s.ownerOf(ctx, kind, objectID)
		if err != nil {
			return err
		}
		if ownerID != actor.ID {
			return ErrNotOwner
		}
		return nil
	}
}

func (s *tagService) ownerOf(ctx context.Context, kind catalog.Kind, objectID string) (string, error) {
	switch kind {
	case model.KindArticle:
		var a model.Article
		if err := s.db.WithContext(ctx).Select("author_id").First(&a, "id = ?", objectID).Error; err != nil {
			return "", err
		}
		return a.AuthorID, nil
	case model.KindPin:
		var p model.Pin
		if err := s.db.WithContext(ctx).Select("author_id").First(&p, "id = ?", objectID).Error; err != nil {
			return "", err
		}
		return p.AuthorID, nil
	default:
		return "", ErrKindNotAllowed
	}
}

func (s *tagService) ListTagArticles(ctx context.Context, tagID string, page, pageSize int) ([]model.Article, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.relations.TagArticles(ctx, tagID, (page-1)*pageSize, pageSize)
}
