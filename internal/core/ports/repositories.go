package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MerchantRepository defines persistence operations for merchants.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*domain.Merchant, error)
	GetByUsername(ctx context.Context, username string) (*domain.Merchant, error)
	// AdjustBalance atomically adds delta (negative to debit) to the merchant
	// balance and returns the new balance. It never reads-then-writes: a debit
	// that would go below zero affects no row and returns
	// domain.ErrInsufficientBalance.
	AdjustBalance(ctx context.Context, tx pgx.Tx, merchantID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	// UpdateWebhookURL and UpdateKeys touch only their own columns, never the
	// balance. Both return false when the merchant does not exist.
	UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) (bool, error)
	UpdateKeys(ctx context.Context, merchantID uuid.UUID, accessKey, secretKeyEnc string) (bool, error)
	// UpdateStatus sets the status of a merchant-role account. It returns
	// false when no merchant account exists or the status already holds.
	UpdateStatus(ctx context.Context, merchantID uuid.UUID, status domain.MerchantStatus) (bool, error)
	// List and Totals see merchant-role accounts only, never operators.
	List(ctx context.Context, params MerchantListParams) ([]domain.Merchant, int64, error)
	Totals(ctx context.Context) (*domain.MerchantTotals, error)
}

// MerchantListParams filters merchant accounts, newest first.
type MerchantListParams struct {
	Status   *domain.MerchantStatus
	Page     int
	PageSize int
}

// TransactionRepository defines persistence operations for deposits.
// A nil tx runs the statement outside of a database transaction.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	GetByWalletAddress(ctx context.Context, merchantID uuid.UUID, walletAddress string) (*domain.Transaction, error)
	GetByReference(ctx context.Context, merchantID uuid.UUID, referenceID string) (*domain.Transaction, error)
	// Transition is the conditional status write. It applies only while the
	// deposit is in one of domain.TransitionSources(t.To) and, for pending and
	// success, before expiresAt. Returns the updated row, or nil when the guard
	// did not hold.
	Transition(ctx context.Context, tx pgx.Tx, t domain.StatusTransition) (*domain.Transaction, error)
	// ListNonTerminal returns every initiated or pending deposit.
	ListNonTerminal(ctx context.Context) ([]domain.Transaction, error)
	// ListOverdue returns non-terminal deposits whose expiresAt is not after now.
	ListOverdue(ctx context.Context, now time.Time) ([]domain.Transaction, error)
	List(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	// Stats groups deposits by their status as effective at now. A nil
	// merchantID covers every merchant.
	Stats(ctx context.Context, merchantID *uuid.UUID, now time.Time) (*domain.DepositStats, error)
}

// TransactionListParams holds filter + pagination for listing deposits.
type TransactionListParams struct {
	MerchantID uuid.UUID
	Status     *domain.TransactionStatus
	Currency   *domain.Currency
	Page       int
	PageSize   int
}

// WithdrawalRepository defines persistence operations for withdrawals.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, withdrawal *domain.Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	// Resolve moves a pending withdrawal to status. Returns nil when the
	// withdrawal was no longer pending.
	Resolve(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.WithdrawalStatus, at time.Time) (*domain.Withdrawal, error)
	List(ctx context.Context, params WithdrawalListParams) ([]domain.Withdrawal, int64, error)
	// Stats groups withdrawals by status. A nil merchantID covers every merchant.
	Stats(ctx context.Context, merchantID *uuid.UUID) (*domain.WithdrawalStats, error)
}

// WithdrawalListParams filters withdrawals. A nil MerchantID lists all.
type WithdrawalListParams struct {
	MerchantID *uuid.UUID
	Status     *domain.WithdrawalStatus
	Page       int
	PageSize   int
}

// FeeSettingRepository defines persistence operations for fee rules.
type FeeSettingRepository interface {
	Create(ctx context.Context, fee *domain.FeeSetting) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FeeSetting, error)
	List(ctx context.Context) ([]domain.FeeSetting, error)
}

// NotificationRepository stores admin notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, params NotificationListParams) ([]domain.Notification, int64, error)
	// MarkRead flags a notification as read. It returns false when the
	// notification does not exist; marking twice is not an error.
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	Summary(ctx context.Context) (*domain.NotificationSummary, error)
}

// NotificationListParams filters notifications.
type NotificationListParams struct {
	Type       *domain.NotificationType
	UnreadOnly bool
	Page       int
	PageSize   int
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	List(ctx context.Context, params AuditListParams) ([]domain.AuditLog, int64, error)
}

// AuditListParams filters audit entries. A nil MerchantID lists all.
type AuditListParams struct {
	MerchantID *uuid.UUID
	Action     *domain.AuditAction
	Page       int
	PageSize   int
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
