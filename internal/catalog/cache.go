package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/yungbote/videoscripter-backend/internal/observability"
	"github.com/yungbote/videoscripter-backend/internal/pkg/logger"
)

const cacheKeyPrefix = "vs:catalog:"

// CacheConfig configures the two cache tiers in front of a Client. A nil Redis
// disables the shared tier.
type CacheConfig struct {
	TTL   time.Duration
	Redis *redis.Client
}

// cachedClient keeps resolved videos and channels in an in-process cache backed by
// an optional Redis tier. Search results and misses are never cached.
type cachedClient struct {
	next    Client
	l1      *gocache.Cache
	rdb     *redis.Client
	ttl     time.Duration
	log     *logger.Logger
	metrics *observability.Metrics
}

func NewCachedClient(next Client, cfg CacheConfig, baseLog *logger.Logger, metrics *observability.Metrics) Client {
	ttl := cfg.TTL
	if ttl <= 0 {
		return next
	}
	return &cachedClient{
		next:    next,
		l1:      gocache.New(ttl, ttl*2),
		rdb:     cfg.Redis,
		ttl:     ttl,
		log:     baseLog.With("client", "CatalogCache"),
		metrics: metrics,
	}
}

func (c *cachedClient) Search(ctx context.Context, query string, maxResults int) ([]VideoMeta, error) {
	return c.next.Search(ctx, query, maxResults)
}

func (c *cachedClient) GetVideo(ctx context.Context, externalVideoID string) (*VideoMeta, error) {
	key := cacheKeyPrefix + "video:" + externalVideoID
	var out VideoMeta
	if c.get(ctx, key, &out) {
		return &out, nil
	}
	v, err := c.next.GetVideo(ctx, externalVideoID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, v)
	return v, nil
}

func (c *cachedClient) GetChannel(ctx context.Context, externalChannelID string) (*ChannelMeta, error) {
	key := cacheKeyPrefix + "channel:" + externalChannelID
	var out ChannelMeta
	if c.get(ctx, key, &out) {
		return &out, nil
	}
	ch, err := c.next.GetChannel(ctx, externalChannelID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, ch)
	return ch, nil
}

func (c *cachedClient) get(ctx context.Context, key string, dst interface{}) bool {
	if raw, ok := c.l1.Get(key); ok {
		if data, ok := raw.([]byte); ok && json.Unmarshal(data, dst) == nil {
			c.metrics.IncCatalogCache("l1", "hit")
			return true
		}
		c.l1.Delete(key)
	}
	c.metrics.IncCatalogCache("l1", "miss")

	if c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("catalog cache redis get failed", "key", key, "error", err)
		}
		c.metrics.IncCatalogCache("redis", "miss")
		return false
	}
	if json.Unmarshal(data, dst) != nil {
		c.metrics.IncCatalogCache("redis", "miss")
		return false
	}
	c.metrics.IncCatalogCache("redis", "hit")
	c.l1.Set(key, data, gocache.DefaultExpiration)
	return true
}

func (c *cachedClient) set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("catalog cache encode failed", "key", key, "error", err)
		return
	}
	c.l1.Set(key, data, gocache.DefaultExpiration)
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache redis set failed", "key", key, "error", err)
	}
}

// NewRedisClient connects to addr and verifies it with a ping. An empty addr
// returns (nil, nil).
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}
