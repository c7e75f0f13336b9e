package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore implements ports.NonceStore. A nonce is scoped to one merchant
// and remembered for the HMAC timestamp window.
type NonceStore struct {
	client *goredis.Client
	prefix string
}

func NewNonceStore(client *goredis.Client) *NonceStore {
	return &NonceStore{
		client: client,
		prefix: keyNamespace + "nonce:",
	}
}

func (s *NonceStore) key(merchantID, nonce string) string {
	return s.prefix + merchantID + ":" + nonce
}

// CheckAndSet records the nonce with SET NX. It returns false when the nonce
// was already seen inside its TTL; an empty nonce is never fresh.
func (s *NonceStore) CheckAndSet(ctx context.Context, merchantID string, nonce string, ttl time.Duration) (bool, error) {
	if nonce == "" {
		return false, nil
	}
	fresh, err := s.client.SetNX(ctx, s.key(merchantID, nonce), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis nonce check: %w", err)
	}
	return fresh, nil
}
