package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const merchantColumns = `id, username, password_hash, merchant_name, role, access_key, secret_key_enc,
		webhook_url, total_amt, status, created_at, updated_at`

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// Create inserts a new merchant into the database.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	query := `INSERT INTO merchants (` + merchantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Username, m.PasswordHash, m.MerchantName, m.Role,
		m.AccessKey, m.SecretKeyEnc, m.WebhookURL, m.TotalAmt, m.Status,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID fetches a merchant by its UUID.
func (r *MerchantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = $1`
	m, err := scanMerchant(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// GetByAccessKey fetches a merchant by its public access key.
func (r *MerchantRepo) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE access_key = $1`
	m, err := scanMerchant(r.pool.QueryRow(ctx, query, accessKey))
	if err != nil {
		return nil, fmt.Errorf("get merchant by access_key: %w", err)
	}
	return m, nil
}

// GetByUsername fetches a merchant by username.
func (r *MerchantRepo) GetByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE username = $1`
	m, err := scanMerchant(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("get merchant by username: %w", err)
	}
	return m, nil
}

// AdjustBalance adds delta to total_amt in a single statement. The
// total_amt + delta >= 0 guard makes a debit and its balance check one atomic
// step.
func (r *MerchantRepo) AdjustBalance(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `UPDATE merchants SET total_amt = total_amt + $1, updated_at = NOW()
		WHERE id = $2 AND total_amt + $1 >= 0
		RETURNING total_amt`

	var balance decimal.Decimal
	err := on(r.pool, tx).QueryRow(ctx, query, delta, merchantID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if delta.IsNegative() {
				return decimal.Zero, domain.ErrInsufficientBalance
			}
			return decimal.Zero, fmt.Errorf("adjust balance: merchant %s not found", merchantID)
		}
		return decimal.Zero, fmt.Errorf("adjust balance: %w", err)
	}
	return balance, nil
}

// UpdateWebhookURL sets or clears the merchant's webhook endpoint.
func (r *MerchantRepo) UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE merchants SET webhook_url = $1, updated_at = NOW() WHERE id = $2`,
		webhookURL, merchantID,
	)
	if err != nil {
		return false, fmt.Errorf("update webhook url: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateKeys replaces the merchant's access key and encrypted secret.
func (r *MerchantRepo) UpdateKeys(ctx context.Context, merchantID uuid.UUID, accessKey, secretKeyEnc string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE merchants SET access_key = $1, secret_key_enc = $2, updated_at = NOW() WHERE id = $3`,
		accessKey, secretKeyEnc, merchantID,
	)
	if err != nil {
		return false, fmt.Errorf("update keys: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpdateStatus changes the status of a merchant-role account. The status
// guard makes a repeated approve or block affect no row.
func (r *MerchantRepo) UpdateStatus(ctx context.Context, merchantID uuid.UUID, status domain.MerchantStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE merchants SET status = $1, updated_at = NOW()
		WHERE id = $2 AND role = $3 AND status <> $1`,
		status, merchantID, domain.RoleMerchant,
	)
	if err != nil {
		return false, fmt.Errorf("update merchant status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// List returns merchant-role accounts, newest first.
func (r *MerchantRepo) List(ctx context.Context, params ports.MerchantListParams) ([]domain.Merchant, int64, error) {
	conditions := []string{"role = $1"}
	args := []any{domain.RoleMerchant}
	argIdx := 2

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM merchants "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count merchants: %w", err)
	}

	limit, offset := pageOffset(params.Page, params.PageSize)
	dataQuery := fmt.Sprintf(`SELECT %s FROM merchants %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, merchantColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()

	var out []domain.Merchant
	for rows.Next() {
		m, err := scanMerchant(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan merchant row: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate merchant rows: %w", err)
	}
	return out, total, nil
}

// Totals counts merchant-role accounts and sums their balances.
func (r *MerchantRepo) Totals(ctx context.Context) (*domain.MerchantTotals, error) {
	out := &domain.MerchantTotals{}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_amt), 0) FROM merchants WHERE role = $1`,
		domain.RoleMerchant,
	).Scan(&out.Count, &out.Balance)
	if err != nil {
		return nil, fmt.Errorf("merchant totals: %w", err)
	}
	return out, nil
}

func scanMerchant(row pgx.Row) (*domain.Merchant, error) {
	m := &domain.Merchant{}
	err := row.Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.MerchantName, &m.Role,
		&m.AccessKey, &m.SecretKeyEnc, &m.WebhookURL, &m.TotalAmt, &m.Status,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}
