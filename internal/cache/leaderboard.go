package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"spellingbee/internal/domain"
)

const leaderboardTTL = 30 * time.Second

// LeaderboardCache keeps a short-lived copy of the top-users board in
// Redis so stats requests don't hit the aggregate query on every tap.
// Reads may lag writes by up to the TTL.
type LeaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a cache over an existing Redis client
func NewLeaderboardCache(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client}
}

func key(limit int) string {
	return fmt.Sprintf("leaderboard:top:%d", limit)
}

// Get returns the cached board, or false on miss or any Redis error
func (c *LeaderboardCache) Get(ctx context.Context, limit int) ([]domain.RankedUser, bool) {
	data, err := c.client.Get(ctx, key(limit)).Bytes()
	if err != nil {
		return nil, false
	}

	var users []domain.RankedUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, false
	}

	return users, true
}

// Set stores the board with the cache TTL. Errors are returned for
// logging only; callers treat the cache as best-effort.
func (c *LeaderboardCache) Set(ctx context.Context, limit int, users []domain.RankedUser) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(limit), data, leaderboardTTL).Err()
}
