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

const transactionColumns = `id, transaction_id, merchant_id, reference_id, amount, currency,
		wallet_address, wallet_secret_enc, status, expires_at, confirmed_at, failed_at,
		failure_reason, created_at, updated_at`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a new deposit.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO deposit_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.TransactionID, t.MerchantID, t.ReferenceID, t.Amount, t.Currency,
		t.WalletAddress, t.WalletSecretEnc, t.Status, t.ExpiresAt, t.ConfirmedAt, t.FailedAt,
		t.FailureReason, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deposit: %w", err)
	}
	return nil
}

// GetByTransactionID fetches a deposit by its public transaction id.
func (r *TransactionRepo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM deposit_transactions WHERE transaction_id = $1`
	t, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, fmt.Errorf("get deposit by transaction_id: %w", err)
	}
	return t, nil
}

// GetByWalletAddress returns the merchant's most recent deposit to walletAddress.
func (r *TransactionRepo) GetByWalletAddress(ctx context.Context, merchantID uuid.UUID, walletAddress string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM deposit_transactions
		WHERE merchant_id = $1 AND wallet_address = $2
		ORDER BY created_at DESC LIMIT 1`
	t, err := scanTransaction(r.pool.QueryRow(ctx, query, merchantID, walletAddress))
	if err != nil {
		return nil, fmt.Errorf("get deposit by wallet: %w", err)
	}
	return t, nil
}

// GetByReference fetches a deposit by merchant ID and reference ID.
func (r *TransactionRepo) GetByReference(ctx context.Context, merchantID uuid.UUID, referenceID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM deposit_transactions
		WHERE merchant_id = $1 AND reference_id = $2`
	t, err := scanTransaction(r.pool.QueryRow(ctx, query, merchantID, referenceID))
	if err != nil {
		return nil, fmt.Errorf("get deposit by reference: %w", err)
	}
	return t, nil
}

// Transition is a compare-and-set on status. Zero affected rows means another
// writer already moved the deposit (or it expired) and nil is returned.
func (r *TransactionRepo) Transition(ctx context.Context, tx pgx.Tx, t domain.StatusTransition) (*domain.Transaction, error) {
	from := domain.TransitionSources(t.To)
	if len(from) == 0 {
		return nil, domain.ErrInvalidTransition
	}
	sources := make([]string, len(from))
	for i, s := range from {
		sources[i] = string(s)
	}

	var confirmedAt, failedAt *time.Time
	var reason *string
	switch t.To {
	case domain.TransactionStatusSuccess:
		confirmedAt = &t.At
	case domain.TransactionStatusFailed, domain.TransactionStatusAPIFailed:
		failedAt = &t.At
		if t.Reason != "" {
			reason = &t.Reason
		}
	}

	query := `UPDATE deposit_transactions
		SET status = $1, confirmed_at = $2, failed_at = $3, failure_reason = $4, updated_at = $5
		WHERE transaction_id = $6 AND status = ANY($7)`
	args := []any{t.To, confirmedAt, failedAt, reason, t.At, t.TransactionID, sources}
	if domain.RequiresUnexpired(t.To) {
		query += ` AND expires_at > $8`
		args = append(args, t.At)
	}
	query += ` RETURNING ` + transactionColumns

	updated, err := scanTransaction(on(r.pool, tx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("transition deposit to %s: %w", t.To, err)
	}
	return updated, nil
}

// ListNonTerminal returns every initiated or pending deposit, oldest first.
func (r *TransactionRepo) ListNonTerminal(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM deposit_transactions
		WHERE status IN ('initiated', 'pending')
		ORDER BY created_at`
	return r.queryTransactions(ctx, query)
}

// ListOverdue returns non-terminal deposits whose expiry has passed.
func (r *TransactionRepo) ListOverdue(ctx context.Context, now time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM deposit_transactions
		WHERE status IN ('initiated', 'pending') AND expires_at <= $1
		ORDER BY expires_at`
	return r.queryTransactions(ctx, query, now)
}

// List fetches a merchant's deposits with filtering and pagination.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("merchant_id = $%d", argIdx))
	args = append(args, params.MerchantID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Currency != nil {
		conditions = append(conditions, fmt.Sprintf("currency = $%d", argIdx))
		args = append(args, *params.Currency)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM deposit_transactions %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count deposits: %w", err)
	}

	// Fetch page
	limit, offset := pageOffset(params.Page, params.PageSize)
	dataQuery := fmt.Sprintf(`SELECT %s FROM deposit_transactions %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, transactionColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	txns, err := r.queryTransactions(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// Stats tallies deposits by effective status: an open deposit whose
// expires_at is not after now counts as failed.
func (r *TransactionRepo) Stats(ctx context.Context, merchantID *uuid.UUID, now time.Time) (*domain.DepositStats, error) {
	query := `SELECT ` + tallyColumns("TRUE") + `,
		` + tallyColumns("status = $2") + `,
		` + tallyColumns("status IN ($3, $4) OR (status IN ($5, $6) AND expires_at <= $1)") + `,
		` + tallyColumns("status IN ($5, $6) AND expires_at > $1") + `
		FROM deposit_transactions`
	args := []any{now,
		domain.TransactionStatusSuccess,
		domain.TransactionStatusFailed, domain.TransactionStatusAPIFailed,
		domain.TransactionStatusInitiated, domain.TransactionStatusPending,
	}
	if merchantID != nil {
		query += " WHERE merchant_id = $7"
		args = append(args, *merchantID)
	}

	out := &domain.DepositStats{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&out.Total.Count, &out.Total.Amount,
		&out.Successful.Count, &out.Successful.Amount,
		&out.Failed.Count, &out.Failed.Amount,
		&out.Pending.Count, &out.Pending.Amount,
	)
	if err != nil {
		return nil, fmt.Errorf("deposit stats: %w", err)
	}
	return out, nil
}

func (r *TransactionRepo) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deposit row: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deposit rows: %w", err)
	}
	return txns, nil
}

// scanTransaction scans one row; pgx.ErrNoRows becomes (nil, nil).
func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.TransactionID, &t.MerchantID, &t.ReferenceID, &t.Amount, &t.Currency,
		&t.WalletAddress, &t.WalletSecretEnc, &t.Status, &t.ExpiresAt, &t.ConfirmedAt, &t.FailedAt,
		&t.FailureReason, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}
