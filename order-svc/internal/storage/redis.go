package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const pendingMarker = "pending"

// RedisSubmissionGuard remembers idempotency keys of submitted orders. A key is
// reserved while its order is being placed and then points at the order id.
type RedisSubmissionGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSubmissionGuard(client *redis.Client, ttl time.Duration) *RedisSubmissionGuard {
	return &RedisSubmissionGuard{Client: client, TTL: ttl}
}

func (g *RedisSubmissionGuard) Key(idempotencyKey string) string {
	return "order:idempotency:" + idempotencyKey
}

func (g *RedisSubmissionGuard) Reserve(ctx context.Context, key string) (bool, error) {
	return g.Client.SetNX(ctx, g.Key(key), pendingMarker, g.TTL).Result()
}

func (g *RedisSubmissionGuard) Complete(ctx context.Context, key string, orderID int) error {
	return g.Client.Set(ctx, g.Key(key), strconv.Itoa(orderID), g.TTL).Err()
}

func (g *RedisSubmissionGuard) Release(ctx context.Context, key string) error {
	return g.Client.Del(ctx, g.Key(key)).Err()
}
