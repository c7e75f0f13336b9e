package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Rule is a fixed-window request budget.
type Rule struct {
	Limit  int64
	Window time.Duration
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// RetryAfter is the number of whole seconds until the window resets, at least 1.
func (r *RateLimitResult) RetryAfter(now time.Time) int64 {
	secs := int64(r.ResetAt.Sub(now).Seconds())
	if secs < 1 {
		return 1
	}
	return secs
}

// RateLimitStore implements fixed-window rate limiting counters in Redis.
type RateLimitStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewRateLimitStore creates a new Redis-backed rate limit store.
func NewRateLimitStore(client *goredis.Client) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		prefix: keyNamespace + "ratelimit:",
		now:    time.Now,
	}
}

// Allow counts one request against key. INCR and EXPIRE are sent in one
// MULTI so a counter never outlives its window. Keys are scoped by window
// id, so refreshing the TTL on every hit is harmless.
func (s *RateLimitStore) Allow(ctx context.Context, key string, rule Rule) (*RateLimitResult, error) {
	if rule.Window < time.Second {
		return nil, fmt.Errorf("rate limit window %s is below one second", rule.Window)
	}
	windowSecs := int64(rule.Window / time.Second)
	windowID := s.now().Unix() / windowSecs
	redisKey := fmt.Sprintf("%s%s:%d", s.prefix, key, windowID)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rule.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis rate limit incr: %w", err)
	}
	count := incr.Val()

	remaining := rule.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &RateLimitResult{
		Allowed:   count <= rule.Limit,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetAt:   time.Unix((windowID+1)*windowSecs, 0),
	}, nil
}
