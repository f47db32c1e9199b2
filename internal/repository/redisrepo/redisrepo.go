package redisrepo

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Default interface {
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) *redis.StringCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
}

type RedisRepository struct {
	Default
}

func New(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{
		Default: newDefaultRepo(rdb),
	}
}
