package domain

import "github.com/google/uuid"

// BuildDepositIdempotencyKey constructs the cache key for a merchant's
// reference id on deposit initiation.
func BuildDepositIdempotencyKey(merchantID uuid.UUID, referenceID string) string {
	return merchantID.String() + ":deposit:" + referenceID
}
