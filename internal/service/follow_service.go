package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/cache"
	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/repository"
)

// FollowService 关注服务；目标可以是用户、分类、话题或收藏夹
type FollowService interface {
	Follow(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (*model.Follow, error)
	Unfollow(ctx context.Context, actor Actor, followID string) error
	IsFollowing(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (bool, error)
	ListFollowing(ctx context.Context, userID string, page, pageSize int) ([]model.User, error)
	ListFollowers(ctx context.Context, userID string, page, pageSize int) ([]cache.FollowerSnapshot, error)
}

type followService struct {
	db         *gorm.DB
	cat        *catalog.Catalog
	followRepo repository.FollowRepository
	relations  *repository.RelationAccessor
	followers  *cache.FollowerCache
	counter    *ReactionCounter
}

func NewFollowService(
	db *gorm.DB,
	followRepo repository.FollowRepository,
	relations *repository.RelationAccessor,
	followers *cache.FollowerCache,
	counter *ReactionCounter,
) FollowService {
	return &followService{
		db:         db,
		cat:        model.Catalog(),
		followRepo: followRepo,
		relations:  relations,
		followers:  followers,
		counter:    counter,
	}
}

// Follow 幂等；并发重复提交收敛到同一条边
func (s *followService) Follow(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (*model.Follow, error) {
	if kind == model.KindUser && senderID == objectID {
		return nil, ErrFollowSelf
	}
	if err := runChecks(ctx,
		checkKindAllowed(followTargets, kind),
		checkTargetExists(s.db, s.cat, kind, objectID),
	); err != nil {
		return nil, err
	}
	follow, created, err := s.followRepo.GetOrCreate(ctx, senderID, kind, objectID)
	if err != nil {
		return nil, err
	}
	if created {
		if s.counter != nil {
			s.counter.EnqueueIncr("follow", kind, objectID)
		}
		if s.followers != nil && kind == model.KindUser {
			s.followers.Invalidate(ctx, objectID)
		}
	}
	return follow, nil
}

func (s *followService) Unfollow(ctx context.Context, actor Actor, followID string) error {
	follow, err := s.followRepo.Get(ctx, followID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if err := runChecks(ctx, checkOwner(actor, follow.SenderID)); err != nil {
		return err
	}
	if err := s.followRepo.Delete(ctx, followID); err != nil {
		return err
	}
	if s.counter != nil {
		s.counter.EnqueueDecr("follow", catalog.Kind(follow.ContentType), follow.ObjectID)
	}
	if s.followers != nil && follow.ContentType == string(model.KindUser) {
		s.followers.Invalidate(ctx, follow.ObjectID)
	}
	return nil
}

func (s *followService) IsFollowing(ctx context.Context, senderID string, kind catalog.Kind, objectID string) (bool, error) {
	return s.followRepo.Exists(ctx, senderID, kind, objectID)
}

func (s *followService) ListFollowing(ctx context.Context, userID string, page, pageSize int) ([]model.User, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.relations.UserFollowing(ctx, userID, (page-1)*pageSize, pageSize)
}

// ListFollowers 走 redis 快照缓存；缓存不可用时退回数据库
func (s *followService) ListFollowers(ctx context.Context, userID string, page, pageSize int) ([]cache.FollowerSnapshot, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if s.followers != nil {
		return s.followers.Page(ctx, userID, page, pageSize)
	}
	users, err := s.relations.UserFollowers(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return cache.Snapshots(users), nil
}
