package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, merchant_id, amount, fee_setting_id, fee_amount, net_amount,
		status, resolved_at, created_at, updated_at`

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

// Create inserts a withdrawal, normally in the same transaction as the debit.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	query := `INSERT INTO withdrawals (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		w.ID, w.MerchantID, w.Amount, w.FeeSettingID, w.FeeAmount, w.NetAmount,
		w.Status, w.ResolvedAt, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID fetches a withdrawal by UUID.
func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`
	w, err := scanWithdrawal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get withdrawal by id: %w", err)
	}
	return w, nil
}

// Resolve moves a pending withdrawal to status; nil when it was not pending.
func (r *WithdrawalRepo) Resolve(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.WithdrawalStatus, at time.Time) (*domain.Withdrawal, error) {
	query := `UPDATE withdrawals SET status = $1, resolved_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + withdrawalColumns

	w, err := scanWithdrawal(on(r.pool, tx).QueryRow(ctx, query, status, at, id, domain.WithdrawalStatusPending))
	if err != nil {
		return nil, fmt.Errorf("resolve withdrawal: %w", err)
	}
	return w, nil
}

// List fetches withdrawals, optionally for one merchant and one status.
func (r *WithdrawalRepo) List(ctx context.Context, params ports.WithdrawalListParams) ([]domain.Withdrawal, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.MerchantID != nil {
		conditions = append(conditions, fmt.Sprintf("merchant_id = $%d", argIdx))
		args = append(args, *params.MerchantID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM withdrawals %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count withdrawals: %w", err)
	}

	limit, offset := pageOffset(params.Page, params.PageSize)
	dataQuery := fmt.Sprintf(`SELECT %s FROM withdrawals %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, withdrawalColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var out []domain.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan withdrawal row: %w", err)
		}
		out = append(out, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate withdrawal rows: %w", err)
	}
	return out, total, nil
}

// Stats tallies withdrawals by status.
func (r *WithdrawalRepo) Stats(ctx context.Context, merchantID *uuid.UUID) (*domain.WithdrawalStats, error) {
	query := `SELECT ` + tallyColumns("TRUE") + `,
		` + tallyColumns("status = $1") + `,
		` + tallyColumns("status = $2") + `,
		` + tallyColumns("status = $3") + `,
		` + tallyColumns("status = $4") + `
		FROM withdrawals`
	args := []any{
		domain.WithdrawalStatusApproved, domain.WithdrawalStatusRejected,
		domain.WithdrawalStatusCancelled, domain.WithdrawalStatusPending,
	}
	if merchantID != nil {
		query += " WHERE merchant_id = $5"
		args = append(args, *merchantID)
	}

	out := &domain.WithdrawalStats{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&out.Total.Count, &out.Total.Amount,
		&out.Approved.Count, &out.Approved.Amount,
		&out.Rejected.Count, &out.Rejected.Amount,
		&out.Cancelled.Count, &out.Cancelled.Amount,
		&out.Pending.Count, &out.Pending.Amount,
	)
	if err != nil {
		return nil, fmt.Errorf("withdrawal stats: %w", err)
	}
	return out, nil
}

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	w := &domain.Withdrawal{}
	err := row.Scan(
		&w.ID, &w.MerchantID, &w.Amount, &w.FeeSettingID, &w.FeeAmount, &w.NetAmount,
		&w.Status, &w.ResolvedAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}
