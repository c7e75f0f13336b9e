package postgres

import (
	"context"
	"errors"
)

// ErrSchemaMissing means the database answers but migrations were never applied.
var ErrSchemaMissing = errors.New("ledger schema not migrated")

// HealthCheck implements ports.HealthChecker. It reports unhealthy when the
// deposit ledger table is absent, which catches a fresh database started
// without auto_migrate or cmd/migrate.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var migrated bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('public.deposit_transactions') IS NOT NULL`).Scan(&migrated); err != nil {
		return err
	}
	if !migrated {
		return ErrSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
