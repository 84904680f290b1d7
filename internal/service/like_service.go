package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/repository"
)

// LikeService 点赞服务
type LikeService interface {
	Like(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (*model.Like, error)
	Unlike(ctx context.Context, actor Actor, likeID string) error
	IsLiked(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (bool, error)
	ListBySender(ctx context.Context, senderID string, page, pageSize int) ([]*model.Like, error)
}

type likeService struct {
	db       *gorm.DB
	cat      *catalog.Catalog
	likeRepo repository.LikeRepository
	counter  *ReactionCounter
}

func NewLikeService(db *gorm.DB, likeRepo repository.LikeRepository, counter *ReactionCounter) LikeService {
	return &likeService{db: db, cat: model.Catalog(), likeRepo: likeRepo, counter: counter}
}

// Like 幂等；并发重复提交收敛到同一条边
func (s *likeService) Like(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (*model.Like, error) {
	if err := runChecks(ctx,
		checkKindAllowed(likeTargets, kind),
		checkTargetExists(s.db, s.cat, kind, objectID),
	); err != nil {
		return nil, err
	}
	like, created, err := s.likeRepo.GetOrCreate(ctx, senderID, kind, objectID)
	if err != nil {
		return nil, err
	}
	if created && s.counter != nil {
		s.counter.EnqueueIncr("like", kind, objectID)
	}
	return like, nil
}

func (s *likeService) Unlike(ctx context.Context, actor Actor, likeID string) error {
	like, err := s.likeRepo.Get(ctx, likeID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if err := runChecks(ctx, checkOwner(actor, like.SenderID)); err != nil {
		return err
	}
	if err := s.likeRepo.Delete(ctx, likeID); err != nil {
		return err
	}
	if s.counter != nil {
		s.counter.EnqueueDecr("like", catalog.Kind(like.ContentType), like.ObjectID)
	}
	return nil
}

func (s *likeService) IsLiked(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (bool, error) {
	return s.likeRepo.Exists(ctx, senderID, kind, objectID)
}

func (s *likeService) ListBySender(ctx context.Context, senderID string, page, pageSize int) ([]*model.Like, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.likeRepo.ListBySender(ctx, senderID, (page-1)*pageSize, pageSize)
}
