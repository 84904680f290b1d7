package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/repository"
)

// CommentService 评论服务；评论是多值边，并构成以目标为根的评论树
type CommentService interface {
	Comment(ctx context.Context, authorID string, kind catalog.Kind, objectID string, parentID *string, body string) (*model.Comment, error)
	// Delete 删除评论并在同一事务内级联清理整棵回复树与树上的点赞边
	Delete(ctx context.Context, actor Actor, commentID string) error
	ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, page, pageSize int) ([]*model.Comment, error)
	ListChildren(ctx context.Context, parentID string, page, pageSize int) ([]*model.Comment, error)
}

type commentService struct {
	db          *gorm.DB
	cat         *catalog.Catalog
	commentRepo repository.CommentRepository
	counter     *ReactionCounter
}

func NewCommentService(db *gorm.DB, commentRepo repository.CommentRepository, counter *ReactionCounter) CommentService {
	return &commentService{db: db, cat: model.Catalog(), commentRepo: commentRepo, counter: counter}
}

// Comment 父评论必须挂在同一 (content_type, object_id) 上；创建后不可改挂
func (s *commentService) Comment(ctx context.Context, authorID string, kind catalog.Kind, objectID string, parentID *string, body string) (*model.Comment, error) {
	if err := runChecks(ctx,
		checkKindAllowed(commentTargets, kind),
		checkTargetExists(s.db, s.cat, kind, objectID),
		s.checkParent(parentID, kind, objectID),
	); err != nil {
		return nil, err
	}
	return s.commentRepo.Create(ctx, &model.Comment{
		AuthorID:    authorID,
		ContentType: string(kind),
		ObjectID:    objectID,
		ParentID:    parentID,
		Body:        body,
		Enabled:     true,
	})
}

func (s *commentService) checkParent(parentID *string, kind catalog.Kind, objectID string) checkFunc {
	return func(ctx context.Context) error {
		if parentID == nil {
			return nil
		}
		parent, err := s.commentRepo.Get(ctx, *parentID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrParentMismatch
			}
			return err
		}
		if parent.ContentType != string(kind) || parent.ObjectID != objectID {
			return ErrParentMismatch
		}
		return nil
	}
}

func (s *commentService) Delete(ctx context.Context, actor Actor, commentID string) error {
	comment, err := s.commentRepo.Get(ctx, commentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	if err := runChecks(ctx, checkOwner(actor, comment.AuthorID)); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := PurgeCommentTree(tx, s.counter, commentID); err != nil {
			return err
		}
		return s.commentRepo.DeleteTx(tx, commentID)
	})
}

func (s *commentService) ListByTarget(ctx context.Context, kind catalog.Kind, objectID string, page, pageSize int) ([]*model.Comment, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.commentRepo.ListByTarget(ctx, kind, objectID, (page-1)*pageSize, pageSize)
}

func (s *commentService) ListChildren(ctx context.Context, parentID string, page, pageSize int) ([]*model.Comment, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.commentRepo.ListChildren(ctx, parentID, (page-1)*pageSize, pageSize)
}
