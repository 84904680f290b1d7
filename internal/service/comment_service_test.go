package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/repository"
)

func TestCommentAndReply(t *testing.T) {
	db := setupSvcDB(t)
	svc := NewCommentService(db, repository.NewCommentRepository(db), nil)
	u := svcUser(t, db, "u")
	a := svcArticle(t, db, u.ID)

	root, err := svc.Comment(ctxT(), u.ID, model.KindArticle, a.ID, nil, "root")
	require.NoError(t, err)
	// 评论是多值边：同一人可以评多次
	_, err = svc.Comment(ctxT(), u.ID, model.KindArticle, a.ID, nil, "again")
	require.NoError(t, err)

	reply, err := svc.Comment(ctxT(), u.ID, model.KindArticle, a.ID, &root.ID, "reply")
	require.NoError(t, err)
	assert.Equal(t, root.ID, *reply.ParentID)

	children, err := svc.ListChildren(ctxT(), root.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, reply.ID, children[0].ID)

	all, err := svc.ListByTarget(ctxT(), model.KindArticle, a.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCommentParentMismatch(t *testing.T) {
	db := setupSvcDB(t)
	svc := NewCommentService(db, repository.NewCommentRepository(db), nil)
	u := svcUser(t, db, "u")
	a1 := svcArticle(t, db, u.ID)
	a2 := svcArticle(t, db, u.ID)

	root, err := svc.Comment(ctxT(), u.ID, model.KindArticle, a1.ID, nil, "root")
	require.NoError(t, err)

	// 父评论挂在别的目标上
	_, err = svc.Comment(ctxT(), u.ID, model.KindArticle, a2.ID, &root.ID, "bad")
	assert.ErrorIs(t, err, ErrParentMismatch)

	// 父评论不存在
	ghost := "no-such-comment"
	_, err = svc.Comment(ctxT(), u.ID, model.KindArticle, a1.ID, &ghost, "bad")
	assert.ErrorIs(t, err, ErrParentMismatch)
}

func TestCommentChecksRunInOrder(t *testing.T) {
	db := setupSvcDB(t)
	svc := NewCommentService(db, repository.NewCommentRepository(db), nil)
	u := svcUser(t, db, "u")
	other := svcUser(t, db, "other")

	// 类型不合法时先于存在性失败
	_, err := svc.Comment(ctxT(), u.ID, model.KindUser, other.ID, nil, "x")
	assert.ErrorIs(t, err, ErrKindNotAllowed)

	_, err = svc.Comment(ctxT(), u.ID, model.KindArticle, "missing", nil, "x")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestDeleteCommentOwnership(t *testing.T) {
	db := setupSvcDB(t)
	svc := NewCommentService(db, repository.NewCommentRepository(db), nil)
	u := svcUser(t, db, "u")
	stranger := svcUser(t, db, "stranger")
	a := svcArticle(t, db, u.ID)

	c, err := svc.Comment(ctxT(), u.ID, model.KindArticle, a.ID, nil, "x")
	require.NoError(t, err)

	err = svc.Delete(ctxT(), Actor{ID: stranger.ID}, c.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
	require.NoError(t, svc.Delete(ctxT(), Actor{ID: u.ID}, c.ID))
}
