package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rahat-dev/mindnest/backend/internal/models"
)

const recommendationTTL = 5 * time.Minute

// RecommendationCache caches a user's active recommendation list in Redis.
// A nil *RecommendationCache or nil client is a no-op, so the cache stays
// optional.
type RecommendationCache struct {
	client *redis.Client
}

// NewRecommendationCache wraps a redis client; pass nil to disable caching
func NewRecommendationCache(client *redis.Client) *RecommendationCache {
	return &RecommendationCache{client: client}
}

func key(userID uint) string {
	return fmt.Sprintf("recs:user:%d", userID)
}

// Get returns the cached list and true on a hit
func (c *RecommendationCache) Get(ctx context.Context, userID uint) ([]models.Recommendation, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var recs []models.Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, false
	}
	return recs, true
}

// Set stores the list with a short TTL; errors are ignored, Redis is advisory
func (c *RecommendationCache) Set(ctx context.Context, userID uint, recs []models.Recommendation) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(userID), raw, recommendationTTL)
}

// Invalidate drops the cached list after generation or dismissal
func (c *RecommendationCache) Invalidate(ctx context.Context, userID uint) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, key(userID))
}
