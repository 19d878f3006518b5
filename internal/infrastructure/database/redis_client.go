package database

import (
	"context"
	"fmt"

	"tracker_orders/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil, nil when the cache is disabled.
func ConnectRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	log.Infof("redis connection established addr=%s db=%d", cfg.Redis.Addr, cfg.Redis.DB)
	return rdb, nil
}
