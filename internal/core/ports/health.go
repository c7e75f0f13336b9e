package ports

import "context"

// HealthChecker is one dependency reported by GET /health: the ledger store
// (postgresql or memory) and redis.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
