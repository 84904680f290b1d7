package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/repository"
)

// CollectService 收藏服务；动作主体是收藏夹，权限落在收藏夹属主上
type CollectService interface {
	Collect(ctx context.Context, actor Actor, collectionID string, kind catalog.Kind, objectID string) (*model.Collect, error)
	Uncollect(ctx context.Context, actor Actor, collectID string) error
	CreateCollection(ctx context.Context, userID, name, desc string) (*model.Collection, error)
	// DeleteCollection 删除收藏夹并在同一事务内级联清理指向它的边与夹内收藏
	DeleteCollection(ctx context.Context, actor Actor, id string) error
	ListMyCollections(ctx context.Context, userID string, page, pageSize int) ([]*model.Collection, error)
	ListCollectionArticles(ctx context.Context, collectionID string, page, pageSize int) ([]model.Article, error)
	ListCollectionPins(ctx context.Context, collectionID string, page, pageSize int) ([]model.Pin, error)
}

type collectService struct {
	db             *gorm.DB
	cat            *catalog.Catalog
	collectRepo    repository.CollectRepository
	collectionRepo repository.CollectionRepository
	relations      *repository.RelationAccessor
	counter        *ReactionCounter
}

func NewCollectService(
	db *gorm.DB,
	collectRepo repository.CollectRepository,
	collectionRepo repository.CollectionRepository,
	relations *repository.RelationAccessor,
	counter *ReactionCounter,
) CollectService {
	return &collectService{
		db:             db,
		cat:            model.Catalog(),
		collectRepo:    collectRepo,
		collectionRepo: collectionRepo,
		relations:      relations,
		counter:        counter,
	}
}

func (s *collectService) Collect(ctx context.Context, actor Actor, collectionID string, kind catalog.Kind, objectID string) (*model.Collect, error) {
	collection, err := s.collectionRepo.Get(ctx, collectionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := runChecks(ctx,
		checkOwner(actor, collection.UserID),
		checkKindAllowed(collectTargets, kind),
		checkTargetExists(s.db, s.cat, kind, objectID),
	); err != nil {
		return nil, err
	}
	collect, created, err := s.collectRepo.GetOrCreate(ctx, collectionID, kind, objectID)
	if err != nil {
		return nil, err
	}
	if created && s.counter != nil {
		s.counter.EnqueueIncr("collect", kind, objectID)
	}
	return collect, nil
}

func (s *collectService) Uncollect(ctx context.Context, actor Actor, collectID string) error {
	collect, err := s.collectRepo.Get(ctx, collectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	collection, err := s.collectionRepo.Get(ctx, collect.CollectionID)
	if err != nil {
		return err
	}
	if err := runChecks(ctx, checkOwner(actor, collection.UserID)); err != nil {
		return err
	}
	if err := s.collectRepo.Delete(ctx, collectID); err != nil {
		return err
	}
	if s.counter != nil {
		s.counter.EnqueueDecr("collect", catalog.Kind(collect.ContentType), collect.ObjectID)
	}
	return nil
}

func (s *collectService) CreateCollection(ctx context.Context, userID, name, desc string) (*model.Collection, error) {
	return s.collectionRepo.Create(ctx, &model.Collection{UserID: userID, Name: name, Desc: desc})
}

func (s *collectService) DeleteCollection(ctx context.Context, actor Actor, id string) error {
	collection, err := s.collectionRepo.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if err := runChecks(ctx, checkOwner(actor, collection.UserID)); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 收藏夹自身是点赞和关注的目标
		if err := PurgeTargetEdges(tx, s.counter, model.KindCollection, id); err != nil {
			return err
		}
		if err := PurgeCollectionEdges(tx, s.counter, id); err != nil {
			return err
		}
		return s.collectionRepo.DeleteTx(tx, id)
	})
}

func (s *collectService) ListMyCollections(ctx context.Context, userID string, page, pageSize int) ([]*model.Collection, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.collectionRepo.ListByUser(ctx, userID, (page-1)*pageSize, pageSize)
}

func (s *collectService) ListCollectionArticles(ctx context.Context, collectionID string, page, pageSize int) ([]model.Article, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.relations.CollectionArticles(ctx, collectionID, (page-1)*pageSize, pageSize)
}

func (s *collectService) ListCollectionPins(ctx context.Context, collectionID string, page, pageSize int) ([]model.Pin, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.relations.CollectionPins(ctx, collectionID, (page-1)*pageSize, pageSize)
}
