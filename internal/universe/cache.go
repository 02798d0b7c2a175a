package universe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/redis"
)

// Cache keeps recently read universe records in Redis so repeated snapshot
// reads skip the database. Every method is a no-op when Redis is disabled,
// and cache failures are logged and swallowed; the database stays the source
// of truth.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(id int) string {
	return fmt.Sprintf("universe:%d", id)
}

func (c *Cache) Get(ctx context.Context, id int) *UniverseRecord {
	if c == nil || c.client == nil {
		return nil
	}
	logger := slog.With("component", "universe_cache", "universe_id", id)

	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			logger.Warn("Cache read failed", "error", err)
		}
		return nil
	}

	var record UniverseRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logger.Warn("Cache entry corrupted, dropping", "error", err)
		c.Invalidate(ctx, id)
		return nil
	}

	logger.Debug("Cache hit")
	return &record
}

func (c *Cache) Set(ctx context.Context, record *UniverseRecord) {
	if c == nil || c.client == nil || record == nil {
		return
	}
	logger := slog.With("component", "universe_cache", "universe_id", record.ID)

	data, err := json.Marshal(record)
	if err != nil {
		logger.Warn("Failed to encode record for cache", "error", err)
		return
	}

	if err := c.client.Set(ctx, cacheKey(record.ID), data, c.ttl).Err(); err != nil {
		logger.Warn("Cache write failed", "error", err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, id int) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		slog.Warn("Cache invalidation failed", "component", "universe_cache", "universe_id", id, "error", err)
	}
}
