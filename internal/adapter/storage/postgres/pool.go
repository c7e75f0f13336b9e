package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool is the subset of *pgxpool.Pool the repositories need. pgxmock's pool
// satisfies it in tests.
type Pool interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// querier is implemented by both the pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// on runs statements inside tx when one is given, on the pool otherwise.
func on(pool Pool, tx pgx.Tx) querier {
	if tx != nil {
		return tx
	}
	return pool
}

// pageOffset normalises pagination input.
func pageOffset(page, size int) (limit, offset int) {
	if size <= 0 {
		size = 20
	}
	if page <= 0 {
		page = 1
	}
	return size, (page - 1) * size
}

// tallyColumns selects the count and summed amount of the rows matching cond.
func tallyColumns(cond string) string {
	return fmt.Sprintf("COUNT(*) FILTER (WHERE %[1]s), COALESCE(SUM(amount) FILTER (WHERE %[1]s), 0)", cond)
}
