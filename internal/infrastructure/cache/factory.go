package cache

import (
	"context"
	"time"

	appbilling "github.com/orderdesk/backend/internal/application/billing"
	"github.com/orderdesk/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewSummaryCache builds a summary cache from configuration. Redis is
// used when enabled and reachable; otherwise the cache falls back to
// the in-process implementation so a missing Redis never takes the
// dashboard down.
func NewSummaryCache(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) appbilling.SummaryCache {
	if !cfg.Enabled {
		return NewInMemorySummaryCache(ttl)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-memory summary cache",
			zap.String("addr", cfg.Addr()),
			zap.Error(err))
		return NewInMemorySummaryCache(ttl)
	}

	logger.Info("using redis summary cache", zap.String("addr", cfg.Addr()))
	return NewRedisSummaryCache(client, ttl)
}
