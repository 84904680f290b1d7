package query

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/weblog/internal/model"
)

func TestSampleSmallTableReturnsAll(t *testing.T) {
	db := setupDB(t)
	for _, name := range []string{"a", "b", "c"} {
		seedUser(t, db, name)
	}

	var got []model.User
	require.NoError(t, Sample(context.Background(), db, model.Catalog().MustLookup(model.KindUser), 10, &got))
	assert.Len(t, got, 3)
}

func TestSampleLargeTableReturnsExactlyN(t *testing.T) {
	db := setupDB(t)
	author := seedUser(t, db, "author")
	for i := 0; i < 30; i++ {
		seedArticle(t, db, author.ID, "t")
	}

	const n = 7
	for round := 0; round < 5; round++ {
		var got []model.Article
		require.NoError(t, Sample(context.Background(), db, model.Catalog().MustLookup(model.KindArticle), n, &got))
		require.Len(t, got, n)

		// 结果按主键有序且无重复
		ids := make([]string, len(got))
		for i, a := range got {
			ids[i] = a.ID
		}
		assert.True(t, sort.StringsAreSorted(ids))
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			assert.False(t, seen[id])
			seen[id] = true
		}
	}
}

func TestSampleEmptyTable(t *testing.T) {
	db := setupDB(t)
	var got []model.Pin
	require.NoError(t, Sample(context.Background(), db, model.Catalog().MustLookup(model.KindPin), 5, &got))
	assert.Empty(t, got)
}

func TestSampleZeroN(t *testing.T) {
	db := setupDB(t)
	seedUser(t, db, "a")
	var got []model.User
	require.NoError(t, Sample(context.Background(), db, model.Catalog().MustLookup(model.KindUser), 0, &got))
	assert.Empty(t, got)
}
