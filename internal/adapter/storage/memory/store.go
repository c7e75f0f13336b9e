// Package memory is an in-process ledger store. It backs the memory database
// driver and the service-level tests, and honours the same conditional-write
// contracts as the postgres adapter.
package memory

import (
	"context"
	"sort"
	"sync"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Store holds every table behind one mutex. Write transactions are
// serialised by txMu for their whole lifetime, so a rolled back transaction
// is never observed by another transaction.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	merchants     map[uuid.UUID]*domain.Merchant
	deposits      map[string]*domain.Transaction
	withdrawals   map[uuid.UUID]*domain.Withdrawal
	fees          map[uuid.UUID]*domain.FeeSetting
	notifications []*domain.Notification
	audits        []*domain.AuditLog
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		merchants:   make(map[uuid.UUID]*domain.Merchant),
		deposits:    make(map[string]*domain.Transaction),
		withdrawals: make(map[uuid.UUID]*domain.Withdrawal),
		fees:        make(map[uuid.UUID]*domain.FeeSetting),
	}
}

// Begin implements ports.DBTransactor.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	return &memTx{store: s}, nil
}

// record registers an undo step on tx. Must be called with s.mu held.
func (s *Store) record(tx pgx.Tx, undo func()) {
	if mt, ok := tx.(*memTx); ok && mt.store == s {
		mt.undo = append(mt.undo, undo)
	}
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Name() string {
	return "memory"
}

func sortBy[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

// paginate sorts items and returns the requested page plus the total.
func paginate[T any](items []T, less func(a, b T) bool, page, size int) ([]T, int64) {
	sortBy(items, less)
	total := int64(len(items))
	if size <= 0 {
		size = 20
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil, total
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}
