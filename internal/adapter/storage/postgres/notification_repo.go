package postgres

import (
	"context"
	"fmt"
	"strings"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/google/uuid"
)

const notificationColumns = `id, type, title, message, merchant_id, reference, amount, currency,
		priority, is_read, created_at`

// NotificationRepo implements ports.NotificationRepository.
type NotificationRepo struct {
	pool Pool
}

func NewNotificationRepo(pool Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		n.ID, n.Type, n.Title, n.Message, n.MerchantID, n.Reference, n.Amount, n.Currency,
		n.Priority, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) List(ctx context.Context, params ports.NotificationListParams) ([]domain.Notification, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIdx))
		args = append(args, *params.Type)
		argIdx++
	}
	if params.UnreadOnly {
		conditions = append(conditions, "is_read = FALSE")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM notifications "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	limit, offset := pageOffset(params.Page, params.PageSize)
	dataQuery := fmt.Sprintf(`SELECT %s FROM notifications %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, notificationColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(
			&n.ID, &n.Type, &n.Title, &n.Message, &n.MerchantID, &n.Reference, &n.Amount, &n.Currency,
			&n.Priority, &n.IsRead, &n.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, total, nil
}

// MarkRead sets is_read; an already read row still counts as found.
func (r *NotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *NotificationRepo) Summary(ctx context.Context) (*domain.NotificationSummary, error) {
	query := `SELECT COUNT(*),
		COUNT(*) FILTER (WHERE is_read = FALSE),
		COUNT(*) FILTER (WHERE type IN ($1, $2)),
		COUNT(*) FILTER (WHERE type NOT IN ($1, $2)),
		COUNT(*) FILTER (WHERE is_read = FALSE AND type = $3),
		MAX(created_at)
		FROM notifications`

	out := &domain.NotificationSummary{}
	err := r.pool.QueryRow(ctx, query,
		domain.NotificationDepositSuccess, domain.NotificationDepositFailed, domain.NotificationWithdrawalRequested,
	).Scan(&out.Total, &out.Unread, &out.Deposits, &out.Withdrawals, &out.ActionRequired, &out.LastAt)
	if err != nil {
		return nil, fmt.Errorf("notification summary: %w", err)
	}
	return out, nil
}
