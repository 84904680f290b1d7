package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/weblog/internal/model"
)

func TestFollowSelfRejected(t *testing.T) {
	db := setupSvcDB(t)
	svc := newFollowSvc(db)
	u := svcUser(t, db, "u")

	_, err := svc.Follow(ctxT(), u.ID, model.KindUser, u.ID)
	assert.ErrorIs(t, err, ErrFollowSelf)
}

func TestFollowUserAndTopic(t *testing.T) {
	db := setupSvcDB(t)
	svc := newFollowSvc(db)
	u := svcUser(t, db, "u")
	target := svcUser(t, db, "target")

	f1, err := svc.Follow(ctxT(), u.ID, model.KindUser, target.ID)
	require.NoError(t, err)
	f2, err := svc.Follow(ctxT(), u.ID, model.KindUser, target.ID)
	require.NoError(t, err)
	assert.Equal(t, f1.ID, f2.ID)

	topic := model.Topic{ID: uuid.New().String(), Name: "go"}
	require.NoError(t, db.Create(&topic).Error)
	_, err = svc.Follow(ctxT(), u.ID, model.KindTopic, topic.ID)
	require.NoError(t, err)

	// 同一 object_id 不同类型互不影响
	ok, err := svc.IsFollowing(ctxT(), u.ID, model.KindUser, target.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.IsFollowing(ctxT(), u.ID, model.KindTopic, target.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFollowArticleRejected(t *testing.T) {
	db := setupSvcDB(t)
	svc := newFollowSvc(db)
	u := svcUser(t, db, "u")
	a := svcArticle(t, db, u.ID)

	_, err := svc.Follow(ctxT(), u.ID, model.KindArticle, a.ID)
	assert.ErrorIs(t, err, ErrKindNotAllowed)
}

func TestListFollowingAndFollowersNoCache(t *testing.T) {
	db := setupSvcDB(t)
	svc := newFollowSvc(db)
	u1 := svcUser(t, db, "u1")
	u2 := svcUser(t, db, "u2")
	u3 := svcUser(t, db, "u3")

	_, err := svc.Follow(ctxT(), u1.ID, model.KindUser, u2.ID)
	require.NoError(t, err)
	_, err = svc.Follow(ctxT(), u3.ID, model.KindUser, u2.ID)
	require.NoError(t, err)

	following, err := svc.ListFollowing(ctxT(), u1.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, u2.ID, following[0].ID)

	// 无 redis 时粉丝列表退回数据库
	fans, err := svc.ListFollowers(ctxT(), u2.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, fans, 2)
}

func TestUnfollowOwnership(t *testing.T) {
	db := setupSvcDB(t)
	svc := newFollowSvc(db)
	u1 := svcUser(t, db, "u1")
	u2 := svcUser(t, db, "u2")

	f, err := svc.Follow(ctxT(), u1.ID, model.KindUser, u2.ID)
	require.NoError(t, err)

	err = svc.Unfollow(ctxT(), Actor{ID: u2.ID}, f.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
	require.NoError(t, svc.Unfollow(ctxT(), Actor{ID: u1.ID}, f.ID))
}
