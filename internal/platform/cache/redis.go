package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"notehub/internal/platform/config"
)

// Connect creates the Redis client backing the summary cache and verifies
// the connection with a ping.
func Connect(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("cache.Connect: %w", err)
	}

	return rdb, nil
}
