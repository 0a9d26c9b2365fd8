package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"taskmaster/model"
)

// StatsCache keeps computed dashboard stats in Redis for a short TTL so a
// dashboard refresh does not rescan the task collection. Misses and Redis
// failures both fall through to a fresh computation.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &StatsCache{client: client, ttl: ttl}, nil
}

func statsKey(userID string) string {
	return fmt.Sprintf("dashboard_stats:%s", userID)
}

// Get returns the cached stats for a user, or nil on a miss.
func (sc *StatsCache) Get(ctx context.Context, userID string) *model.DashboardStats {
	data, err := sc.client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		return nil
	}

	var stats model.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("discarding corrupt stats cache entry for user %s: %v", userID, err)
		sc.Invalidate(ctx, userID)
		return nil
	}
	return &stats
}

// Set caches the stats for a user with the configured TTL.
func (sc *StatsCache) Set(ctx context.Context, userID string, stats *model.DashboardStats) {
	data, err := json.Marshal(stats)
	if err != nil {
		log.Printf("failed to marshal stats for cache: %v", err)
		return
	}
	if err := sc.client.Set(ctx, statsKey(userID), data, sc.ttl).Err(); err != nil {
		log.Printf("failed to cache stats for user %s: %v", userID, err)
	}
}

// Invalidate drops the cached stats for a user after a write.
func (sc *StatsCache) Invalidate(ctx context.Context, userID string) {
	if err := sc.client.Del(ctx, statsKey(userID)).Err(); err != nil {
		log.Printf("failed to invalidate stats cache for user %s: %v", userID, err)
	}
}
