package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/model"
)

// FollowerSnapshot contains minimal user info required by follower pages.
type FollowerSnapshot struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}

// Snapshots converts user rows into page snapshots.
func Snapshots(users []model.User) []FollowerSnapshot {
	out := make([]FollowerSnapshot, len(users))
	for i, u := range users {
		out[i] = FollowerSnapshot{ID: u.ID, Username: u.Username, Nickname: u.Nickname}
	}
	return out
}

// FollowerCache serves follower pages from a redis id index plus per-user
// snapshots, falling back to the follows table on miss. The index is dropped
// whole on follow/unfollow; pages rebuild lazily.
type FollowerCache struct {
	db    *gorm.DB
	cache *redis.Client
	ttl   time.Duration

	indexLoads   atomic.Int64
	userBulkLoad atomic.Int64
}

func NewFollowerCache(db *gorm.DB, cache *redis.Client, ttl time.Duration) *FollowerCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &FollowerCache{db: db, cache: cache, ttl: ttl}
}

func indexKey(userID string) string { return fmt.Sprintf("followers:index:%s", userID) }

// Page returns one page of follower snapshots for the user.
func (c *FollowerCache) Page(ctx context.Context, userID string, page, size int) ([]FollowerSnapshot, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	key := indexKey(userID)
	start := (page - 1) * size
	end := start + size - 1

	var ids []string
	if exists, _ := c.cache.Exists(ctx, key).Result(); exists > 0 {
		ids, _ = c.cache.LRange(ctx, key, int64(start), int64(end)).Result()
	}

	if len(ids) == 0 {
		allIDs, err := c.loadFollowerIDsAndCache(ctx, userID)
		if err != nil {
			return nil, err
		}
		if start >= len(allIDs) {
			return []FollowerSnapshot{}, nil
		}
		endIdx := start + size
		if endIdx > len(allIDs) {
			endIdx = len(allIDs)
		}
		ids = allIDs[start:endIdx]
	}

	return c.loadUsers(ctx, ids)
}

// Invalidate drops the follower id index for a user.
func (c *FollowerCache) Invalidate(ctx context.Context, userID string) {
	_ = c.cache.Del(ctx, indexKey(userID)).Err()
}

func (c *FollowerCache) loadFollowerIDsAndCache(ctx context.Context, userID string) ([]string, error) {
	c.indexLoads.Add(1)

	var ids []string
	if err := c.db.WithContext(ctx).
		Table("follows").
		Select("sender_id").
		Where("content_type = ? AND object_id = ?", string(model.KindUser), userID).
		Order("created_at DESC").
		Scan(&ids).Error; err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		key := indexKey(userID)
		pipe := c.cache.Pipeline()
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, interfaceSlice(ids)...)
		pipe.Expire(ctx, key, c.ttl)
		_, _ = pipe.Exec(ctx)
	}
	return ids, nil
}

func (c *FollowerCache) loadUsers(ctx context.Context, ids []string) ([]FollowerSnapshot, error) {
	if len(ids) == 0 {
		return []FollowerSnapshot{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf("user:%s", id)
	}

	cached := make(map[string]FollowerSnapshot, len(ids))
	if vals, err := c.cache.MGet(ctx, keys...).Result(); err == nil {
		for i, v := range vals {
			if v == nil {
				continue
			}
			if str, ok := v.(string); ok {
				var snap FollowerSnapshot
				if uErr := json.Unmarshal([]byte(str), &snap); uErr == nil {
					cached[ids[i]] = snap
				}
			}
		}
	}

	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		c.userBulkLoad.Add(1)
		var users []model.User
		if err := c.db.WithContext(ctx).Where("id IN ?", missing).Find(&users).Error; err != nil {
			return nil, err
		}
		pipe := c.cache.Pipeline()
		for _, u := range users {
			snap := FollowerSnapshot{ID: u.ID, Username: u.Username, Nickname: u.Nickname}
			cached[u.ID] = snap
			if payload, err := json.Marshal(snap); err == nil {
				pipe.Set(ctx, fmt.Sprintf("user:%s", u.ID), payload, c.ttl)
			}
		}
		_, _ = pipe.Exec(ctx)
	}

	out := make([]FollowerSnapshot, 0, len(ids))
	for _, id := range ids {
		if snap, ok := cached[id]; ok {
			out = append(out, snap)
		}
	}
	return out, nil
}

func interfaceSlice(strs []string) []interface{} {
	result := make([]interface{}, len(strs))
	for i, s := range strs {
		result[i] = s
	}
	return result
}
