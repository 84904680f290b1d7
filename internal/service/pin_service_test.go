package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/query"
	"github.com/d60-Lab/weblog/internal/repository"
)

func TestPinListAnnotated(t *testing.T) {
	db := setupSvcDB(t)
	pinSvc := NewPinService(db, repository.NewPinRepository(db), nil)
	likeSvc := newLikeSvc(db)
	u := svcUser(t, db, "u")

	liked, err := pinSvc.Create(ctxT(), u.ID, "liked pin")
	require.NoError(t, err)
	_, err = pinSvc.Create(ctxT(), u.ID, "plain pin")
	require.NoError(t, err)
	_, err = likeSvc.Like(ctxT(), u.ID, model.KindPin, liked.ID)
	require.NoError(t, err)

	rows, err := pinSvc.List(ctxT(), u.ID, query.Relations{IsLiked: true}, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, r.Pin.ID == liked.ID, r.IsLiked())
	}
}

func TestPinDeleteCascades(t *testing.T) {
	db := setupSvcDB(t)
	pinSvc := NewPinService(db, repository.NewPinRepository(db), nil)
	likeSvc := newLikeSvc(db)
	author := svcUser(t, db, "author")
	fan := svcUser(t, db, "fan")

	p, err := pinSvc.Create(ctxT(), author.ID, "bye")
	require.NoError(t, err)
	_, err = likeSvc.Like(ctxT(), fan.ID, model.KindPin, p.ID)
	require.NoError(t, err)

	err = pinSvc.Delete(ctxT(), Actor{ID: fan.ID}, p.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	require.NoError(t, pinSvc.Delete(ctxT(), Actor{ID: author.ID}, p.ID))
	assert.EqualValues(t, 0, countRows(t, db, &model.Pin{}))
	assert.EqualValues(t, 0, countRows(t, db, &model.Like{}))
}
