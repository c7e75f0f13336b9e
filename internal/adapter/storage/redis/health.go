package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck implements ports.HealthChecker for Redis.
type HealthCheck struct {
	client  *goredis.Client
	timeout time.Duration
}

// NewHealthCheck creates a Redis health checker. Each ping is bounded by
// two seconds unless the caller's context is shorter.
func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client, timeout: 2 * time.Second}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.client.Ping(ctx).Err()
}

func (h *HealthCheck) Name() string {
	return "redis"
}
