package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL keeps cached values fresh enough between snapshot runs while
// absorbing leaderboard read bursts; matches the 10s client-side cache the
// app historically used.
const DefaultTTL = 10 * time.Second

// ValueCache caches the latest portfolio value per (user, league) in Redis
type ValueCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewValueCache creates a cache backed by the given Redis address
func NewValueCache(addr string, ttl time.Duration) *ValueCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ValueCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

// Get returns the cached latest value for a (user, league), or found=false on
// a miss
func (c *ValueCache) Get(ctx context.Context, uid string, leagueID int) (value float64, found bool, err error) {
	raw, err := c.client.Get(ctx, key(uid, leagueID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read value cache: %w", err)
	}

	value, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt value cache entry %q: %w", raw, err)
	}
	return value, true, nil
}

// Set stores the latest value for a (user, league) with the cache TTL
func (c *ValueCache) Set(ctx context.Context, uid string, leagueID int, value float64) error {
	raw := strconv.FormatFloat(value, 'f', -1, 64)
	if err := c.client.Set(ctx, key(uid, leagueID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write value cache: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (c *ValueCache) Close() error {
	return c.client.Close()
}

func key(uid string, leagueID int) string {
	return fmt.Sprintf("portfolio:latest:%s:%d", uid, leagueID)
}
