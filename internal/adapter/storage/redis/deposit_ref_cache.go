package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultDepositRefTTL bounds how long a reference id short-circuits to the
// cached deposit. The ledger store's unique index covers the rest.
const DefaultDepositRefTTL = 24 * time.Hour

// DepositRefCache implements ports.DepositRefCache. Only the transaction id
// is cached; callers always reload the deposit so its status is never stale.
type DepositRefCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewDepositRefCache creates a Redis-backed reference cache.
func NewDepositRefCache(client *goredis.Client, ttl time.Duration) *DepositRefCache {
	if ttl <= 0 {
		ttl = DefaultDepositRefTTL
	}
	return &DepositRefCache{
		client: client,
		prefix: keyNamespace + "depref:",
		ttl:    ttl,
	}
}

// Lookup returns the transaction id remembered for the reference, or "".
func (c *DepositRefCache) Lookup(ctx context.Context, merchantID uuid.UUID, referenceID string) (string, error) {
	key := c.prefix + domain.BuildDepositIdempotencyKey(merchantID, referenceID)
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis deposit ref get: %w", err)
	}
	return val, nil
}

// Remember stores the reference only if it is not already mapped, so the
// first deposit created for a reference wins.
func (c *DepositRefCache) Remember(ctx context.Context, merchantID uuid.UUID, referenceID, transactionID string) error {
	key := c.prefix + domain.BuildDepositIdempotencyKey(merchantID, referenceID)
	if err := c.client.SetNX(ctx, key, transactionID, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis deposit ref set: %w", err)
	}
	return nil
}
