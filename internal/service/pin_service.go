package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/query"
	"github.com/d60-Lab/weblog/internal/repository"
)

// PinService 动态服务
type PinService interface {
	Create(ctx context.Context, authorID, body string) (*model.Pin, error)
	Get(ctx context.Context, id string) (*model.Pin, error)
	List(ctx context.Context, viewerID string, rel query.Relations, page, pageSize int) ([]repository.PinRow, error)
	// Delete 删除动态并在同一事务内级联清理指向它的边
	Delete(ctx context.Context, actor Actor, id string) error
}

type pinService struct {
	db      *gorm.DB
	pinRepo repository.PinRepository
	counter *ReactionCounter
}

func NewPinService(db *gorm.DB, pinRepo repository.PinRepository, counter *ReactionCounter) PinService {
	return &pinService{db: db, pinRepo: pinRepo, counter: counter}
}

func (s *pinService) Create(ctx context.Context, authorID, body string) (*model.Pin, error) {
	return s.pinRepo.Create(ctx, &model.Pin{AuthorID: authorID, Body: body})
}

func (s *pinService) Get(ctx context.Context, id string) (*model.Pin, error) {
	p, err := s.pinRepo.Get(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *pinService) List(ctx context.Context, viewerID string, rel query.Relations, page, pageSize int) ([]repository.PinRow, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.pinRepo.ListRecent(ctx, viewerID, rel, (page-1)*pageSize, pageSize)
}

func (s *pinService) Delete(ctx context.Context, actor Actor, id string) error {
	pin, err := s.pinRepo.Get(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if err := runChecks(ctx, checkOwner(actor, pin.AuthorID)); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := PurgeTargetEdges(tx, s.counter, model.KindPin, id); err != nil {
			return err
		}
		return s.pinRepo.DeleteTx(tx, id)
	})
}
