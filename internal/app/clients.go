package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/yungbote/videoscripter-backend/internal/catalog"
	"github.com/yungbote/videoscripter-backend/internal/observability"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

type Clients struct {
	Catalog catalog.Client
	Redis   *redis.Client
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config, metrics *observability.Metrics) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis (optional shared cache tier)
	rdb, err := catalog.NewRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis: %w", err)
	}

	// YouTube
	yt, err := catalog.NewYouTubeClient(ctx, catalog.YouTubeConfig{APIKey: cfg.YouTubeAPIKey}, log, metrics)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		return Clients{}, fmt.Errorf("init youtube client: %w", err)
	}

	client := catalog.NewCachedClient(yt, catalog.CacheConfig{TTL: cfg.CatalogCacheTTL, Redis: rdb}, log, metrics)
	return Clients{Catalog: client, Redis: rdb}, nil
}

func (c Clients) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
