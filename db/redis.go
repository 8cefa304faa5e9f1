package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const cachePrefix = "hackrecap:cache:"

func ConnectRedis(redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(context.Background()).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// Cache is the full-response cache in front of the read path. The pipeline
// flushes it after every run so readers see fresh summaries.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get returns the cached value for key, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, cachePrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *Cache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return c.client.Set(ctx, cachePrefix+key, val, ttl).Err()
}

func (c *Cache) Flush(ctx context.Context) error {
	return c.client.FlushDB(ctx).Err()
}
