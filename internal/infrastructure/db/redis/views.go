package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ViewCounter tallies public reads per post, backed by Redis.
// Key format: views:<post_id>
type ViewCounter struct {
	client *redis.Client
}

// NewViewCounter creates a ViewCounter wrapping the given Redis client.
func NewViewCounter(client *redis.Client) *ViewCounter {
	return &ViewCounter{client: client}
}

// Increment bumps the post's view tally and returns the new value.
func (v *ViewCounter) Increment(ctx context.Context, postID string) (int64, error) {
	n, err := v.client.Incr(ctx, v.key(postID)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return n, nil
}

func (v *ViewCounter) key(postID string) string {
	return "views:" + postID
}
