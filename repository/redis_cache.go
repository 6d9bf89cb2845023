package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cached conversions depend only on the tax year configuration, but expire
// daily so a config change is picked up without a manual flush.
const cacheTTL = 24 * time.Hour

const cacheTimeout = 2 * time.Second

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: rdb}
}

func (r *RedisCache) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cacheTimeout)
	defer cancel()

	return r.client.Set(ctx, key, value, cacheTTL).Err()
}
