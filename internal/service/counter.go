package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/pkg/logger"
)

type counterOp int

const (
	opIncr counterOp = iota + 1
	opDecr
	opDel
)

type counterJob struct {
	op    counterOp
	key   string
	enqAt time.Time
}

// ReactionCounter 异步维护 redis 中的边计数（点赞数、粉丝数等）。
// 计数是展示用途，允许短暂滞后；队列满时丢弃并告警。
type ReactionCounter struct {
	cache     *redis.Client
	ch        chan counterJob
	metricsCh chan time.Duration
}

func NewReactionCounter(cache *redis.Client, queueSize int) *ReactionCounter {
	if queueSize <= 0 {
		queueSize = 10000
	}
	return &ReactionCounter{
		cache:     cache,
		ch:        make(chan counterJob, queueSize),
		metricsCh: make(chan time.Duration, 65536),
	}
}

func counterKey(action string, kind catalog.Kind, objectID string) string {
	return fmt.Sprintf("cnt:%s:%s:%s", action, kind, objectID)
}

func (c *ReactionCounter) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 4
	}
	stopCh := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case job := <-c.ch:
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					switch job.op {
					case opIncr:
						_ = c.cache.Incr(ctx, job.key).Err()
					case opDecr:
						_ = c.cache.Decr(ctx, job.key).Err()
					case opDel:
						_ = c.cache.Del(ctx, job.key).Err()
					}
					cancel()
					if !job.enqAt.IsZero() {
						select {
						case c.metricsCh <- time.Since(job.enqAt):
						default:
						}
					}
				case <-stopCh:
					return
				}
			}
		}()
	}
	return func(ctx context.Context) error {
		close(stopCh)
		// 等待队列自然排空一小段时间
		timeout := time.After(2 * time.Second)
		for {
			select {
			case <-timeout:
				return nil
			default:
				if len(c.ch) == 0 {
					return nil
				}
				time.Sleep(50 * time.Millisecond)
			}
		}
	}
}

func (c *ReactionCounter) EnqueueIncr(action string, kind catalog.Kind, objectID string) {
	c.enqueue(counterJob{op: opIncr, key: counterKey(action, kind, objectID), enqAt: time.Now()})
}

func (c *ReactionCounter) EnqueueDecr(action string, kind catalog.Kind, objectID string) {
	c.enqueue(counterJob{op: opDecr, key: counterKey(action, kind, objectID), enqAt: time.Now()})
}

// EnqueuePurge 目标删除后移除其计数键；计数跟随目标一起消失
func (c *ReactionCounter) EnqueuePurge(kind catalog.Kind, objectID string, actions ...string) {
	for _, a := range actions {
		c.enqueue(counterJob{op: opDel, key: counterKey(a, kind, objectID), enqAt: time.Now()})
	}
}

func (c *ReactionCounter) enqueue(job counterJob) {
	select {
	case c.ch <- job:
	default:
		logger.Warn("counter queue full, drop", zap.String("key", job.key))
	}
}

// Get 读取当前计数（不存在视为 0）
func (c *ReactionCounter) Get(ctx context.Context, action string, kind catalog.Kind, objectID string) (int64, error) {
	v, err := c.cache.Get(ctx, counterKey(action, kind, objectID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}

// Metrics 返回计数落地耗时的只读通道（每处理一条发送一次 duration）。
func (c *ReactionCounter) Metrics() <-chan time.Duration { return c.metricsCh }

// QueueLen 返回当前队列长度（采样值）。
func (c *ReactionCounter) QueueLen() int { return len(c.ch) }
