package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/repository"
)

func TestLikeIdempotent(t *testing.T) {
	db := setupSvcDB(t)
	svc := newLikeSvc(db)
	u := svcUser(t, db, "u")
	a := svcArticle(t, db, u.ID)

	first, err := svc.Like(ctxT(), u.ID, model.KindArticle, a.ID)
	require.NoError(t, err)
	second, err := svc.Like(ctxT(), u.ID, model.KindArticle, a.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	ok, err := svc.IsLiked(ctxT(), u.ID, model.KindArticle, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLikeKindNotAllowed(t *testing.T) {
	db := setupSvcDB(t)
	svc := newLikeSvc(db)
	u := svcUser(t, db, "u")
	other := svcUser(t, db, "other")

	// 用户不是可点赞的内容类型
	_, err := svc.Like(ctxT(), u.ID, model.KindUser, other.ID)
	assert.ErrorIs(t, err, ErrKindNotAllowed)
}

func TestLikeTargetMustExist(t *testing.T) {
	db := setupSvcDB(t)
	svc := newLikeSvc(db)
	u := svcUser(t, db, "u")

	_, err := svc.Like(ctxT(), u.ID, model.KindArticle, "missing")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestUnlikeOwnership(t *testing.T) {
	db := setupSvcDB(t)
	svc := newLikeSvc(db)
	owner := svcUser(t, db, "owner")
	stranger := svcUser(t, db, "stranger")
	admin := svcUser(t, db, "admin")
	a := svcArticle(t, db, owner.ID)

	like, err := svc.Like(ctxT(), owner.ID, model.KindArticle, a.ID)
	require.NoError(t, err)

	// 非属主删除被拒
	err = svc.Unlike(ctxT(), Actor{ID: stranger.ID}, like.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// 管理员可以删
	err = svc.Unlike(ctxT(), Actor{ID: admin.ID, Admin: true}, like.ID)
	require.NoError(t, err)

	err = svc.Unlike(ctxT(), Actor{ID: owner.ID}, like.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLikeComment(t *testing.T) {
	db := setupSvcDB(t)
	likeSvc := newLikeSvc(db)
	commentSvc := NewCommentService(db, repository.NewCommentRepository(db), nil)
	u := svcUser(t, db, "u")
	a := svcArticle(t, db, u.ID)

	c, err := commentSvc.Comment(ctxT(), u.ID, model.KindArticle, a.ID, nil, "hi")
	require.NoError(t, err)

	// 评论本身也是合法的点赞目标
	_, err = likeSvc.Like(ctxT(), u.ID, model.KindComment, c.ID)
	require.NoError(t, err)
}
