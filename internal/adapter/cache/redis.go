// Package cache holds the Redis-backed read caches.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ecoideias/ecoideias-backend/internal/config"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

const rankingPrefix = "ranking:top:"

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, cfg config.CacheConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// RankingCache stores serialized leaderboards keyed by limit.
type RankingCache struct {
	rdb *goredis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewRankingCache creates a RankingCache.
func NewRankingCache(rdb *goredis.Client, ttl time.Duration, logger *slog.Logger) *RankingCache {
	return &RankingCache{
		rdb: rdb,
		ttl: ttl,
		log: logger.With("component", "ranking_cache"),
	}
}

func rankingKey(limit int) string {
	return rankingPrefix + strconv.Itoa(limit)
}

// Get returns the cached leaderboard for limit. ok is false on a miss.
func (c *RankingCache) Get(ctx context.Context, limit int) (entries []domain.RankingEntry, ok bool, err error) {
	raw, err := c.rdb.Get(ctx, rankingKey(limit)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache.RankingCache.Get: %w", err)
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		c.log.WarnContext(ctx, "dropping corrupt ranking cache entry", slog.String("error", err.Error()))
		_ = c.rdb.Del(ctx, rankingKey(limit)).Err()
		return nil, false, nil
	}
	return entries, true, nil
}

// Set stores the leaderboard for limit with the configured TTL.
func (c *RankingCache) Set(ctx context.Context, limit int, entries []domain.RankingEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("cache.RankingCache.Set: %w", err)
	}
	if err := c.rdb.Set(ctx, rankingKey(limit), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache.RankingCache.Set: %w", err)
	}
	return nil
}

// Invalidate removes every cached leaderboard.
func (c *RankingCache) Invalidate(ctx context.Context) error {
	var keys []string
	iter := c.rdb.Scan(ctx, 0, rankingPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache.RankingCache.Invalidate: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache.RankingCache.Invalidate: %w", err)
	}
	return nil
}

// Ping checks that Redis is reachable.
func (c *RankingCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
