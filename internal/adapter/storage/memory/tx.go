package memory

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// memTx satisfies pgx.Tx for the repositories in this package. Writes are
// applied immediately and undone in reverse order on rollback. Only Commit
// and Rollback are meaningful; the embedded interface is nil.
type memTx struct {
	pgx.Tx
	store *Store
	undo  []func()
	done  bool
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.undo = nil
	t.store.txMu.Unlock()
	return nil
}

// Rollback is a no-op after Commit, so it is safe to defer.
func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.store.mu.Unlock()
	t.undo = nil
	t.store.txMu.Unlock()
	return nil
}
