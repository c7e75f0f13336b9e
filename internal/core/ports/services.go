package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"cryptopay-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(merchantID uuid.UUID, accessKey string, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	MerchantID uuid.UUID
	AccessKey  string
	Role       domain.Role
}

// DepositRefCache maps a merchant reference id to the deposit it created.
// It is the fast path of initiation idempotency; the ledger store remains
// the fallback, so a miss or an error is never fatal.
type DepositRefCache interface {
	Lookup(ctx context.Context, merchantID uuid.UUID, referenceID string) (string, error) // "" when unknown
	Remember(ctx context.Context, merchantID uuid.UUID, referenceID, transactionID string) error
}

// NonceStore manages nonce uniqueness for replay attack prevention.
type NonceStore interface {
	// CheckAndSet atomically checks if nonce exists, sets it if not.
	// Returns true if nonce is new (valid), false if already used.
	CheckAndSet(ctx context.Context, merchantID string, nonce string, ttl time.Duration) (bool, error)
}

// AuditService records security-relevant actions without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
	List(ctx context.Context, params AuditListParams) ([]domain.AuditLog, int64, error)
}

// --- Collaborators ---

// ConfirmationOracle answers whether payment of amount has arrived at wallet.
// Its answers are untrusted: an error means the check could not be made.
type ConfirmationOracle interface {
	CheckPayment(ctx context.Context, wallet string, amount decimal.Decimal, currency domain.Currency) (bool, error)
}

// WalletGenerator produces a fresh deposit destination for a rail.
type WalletGenerator interface {
	GenerateWallet(ctx context.Context, currency domain.Currency) (*domain.DepositWallet, error)
}

// Notifier receives ledger events after they are committed. Implementations
// must not block the caller on delivery and never report failure back.
type Notifier interface {
	OnDepositSuccess(ctx context.Context, tx *domain.Transaction, merchant *domain.Merchant)
	OnDepositFailed(ctx context.Context, tx *domain.Transaction, merchant *domain.Merchant)
	OnWithdrawalRequested(ctx context.Context, w *domain.Withdrawal, merchant *domain.Merchant)
	OnWithdrawalResolved(ctx context.Context, w *domain.Withdrawal, merchant *domain.Merchant)
}

// --- Service Ports (Business Logic) ---

// Settler is the only path that moves a deposit into a terminal state. Each
// call reports whether it performed the transition; a false result carries
// the deposit as currently stored.
type Settler interface {
	Confirm(ctx context.Context, transactionID string) (*domain.Transaction, bool, error)
	Fail(ctx context.Context, transactionID string, status domain.TransactionStatus, reason string) (*domain.Transaction, bool, error)
}

// TransactionMonitor schedules confirmation checks and expiry for deposits.
type TransactionMonitor interface {
	Schedule(tx *domain.Transaction)
	Expedite(transactionID string)
	Status(transactionID string) MonitorSnapshot
	Active() []string
}

// MonitorSnapshot is the in-memory view of a tracked deposit.
type MonitorSnapshot struct {
	TransactionID string        `json:"transaction_id"`
	Active        bool          `json:"active"`
	Phase         string        `json:"phase,omitempty"`
	StartedAt     time.Time     `json:"started_at,omitempty"`
	Elapsed       time.Duration `json:"elapsed"`
	Remaining     time.Duration `json:"remaining"`
}

// DepositService defines the merchant-facing deposit lifecycle.
type DepositService interface {
	InitiateTransaction(ctx context.Context, req InitiateDepositRequest) (*domain.Transaction, error)
	ConfirmDeposit(ctx context.Context, merchantID uuid.UUID, walletAddress string) (*domain.Transaction, error)
	GetTransactionStatus(ctx context.Context, merchantID uuid.UUID, transactionID string) (*DepositStatus, error)
}

// InitiateDepositRequest holds input for a new deposit.
type InitiateDepositRequest struct {
	MerchantID  uuid.UUID
	Amount      decimal.Decimal
	Currency    domain.Currency
	ReferenceID *string
}

// DepositStatus combines the stored deposit with what a reader must see now.
type DepositStatus struct {
	Transaction *domain.Transaction
	Status      domain.TransactionStatus // effective status, lazy expiry applied
	Monitor     MonitorSnapshot
}

// WithdrawalService defines the withdrawal ledger guard.
type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*domain.Withdrawal, error)
	ResolveWithdrawal(ctx context.Context, id uuid.UUID, action domain.WithdrawalAction) (*domain.Withdrawal, error)
	// CancelWithdrawal lets the owning merchant withdraw a pending request;
	// the reserved amount is returned like a rejection.
	CancelWithdrawal(ctx context.Context, merchantID, id uuid.UUID) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, params WithdrawalListParams) ([]domain.Withdrawal, int64, error)
}

// WithdrawalRequest holds input for a withdrawal.
type WithdrawalRequest struct {
	MerchantID   uuid.UUID
	Amount       decimal.Decimal
	FeeSettingID uuid.UUID
}

// FeeService manages withdrawal fee rules.
type FeeService interface {
	CreateFeeSetting(ctx context.Context, name string, feeType domain.FeeType, value decimal.Decimal) (*domain.FeeSetting, error)
	ListFeeSettings(ctx context.Context) ([]domain.FeeSetting, error)
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
	EnsureAdmin(ctx context.Context, username, password string) error
}

// RegisterRequest holds input for merchant registration.
type RegisterRequest struct {
	Username     string
	Password     string
	MerchantName string
	WebhookURL   *string
}

// RegisterResponse holds the registration result shown once.
type RegisterResponse struct {
	MerchantID uuid.UUID
	AccessKey  string
	SecretKey  string // Plaintext, shown only at registration
}

// MerchantManagementService manages a merchant's own account settings.
type MerchantManagementService interface {
	GetProfile(ctx context.Context, merchantID uuid.UUID) (*MerchantProfile, error)
	UpdateWebhookURL(ctx context.Context, merchantID uuid.UUID, webhookURL *string) error
	RotateKeys(ctx context.Context, merchantID uuid.UUID) (*RotateKeysResponse, error)
}

// MerchantProfile is the merchant's view of its own account.
type MerchantProfile struct {
	ID           uuid.UUID
	Username     string
	MerchantName string
	Role         domain.Role
	AccessKey    string
	WebhookURL   *string
	Balance      decimal.Decimal
	Status       domain.MerchantStatus
	CreatedAt    time.Time
}

// RotateKeysResponse holds the new key pair, shown once.
type RotateKeysResponse struct {
	AccessKey string
	SecretKey string
}

// ReportingService defines dashboard/reporting business logic.
type ReportingService interface {
	GetBalance(ctx context.Context, merchantID uuid.UUID) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, params TransactionListParams) ([]domain.Transaction, int64, error)
	ListNotifications(ctx context.Context, params NotificationListParams) ([]domain.Notification, int64, error)
}

// AdminService backs the operator console: merchant accounts, the
// notification inbox and ledger statistics.
type AdminService interface {
	ListMerchants(ctx context.Context, params MerchantListParams) ([]domain.Merchant, int64, error)
	GetMerchant(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	ListMerchantTransactions(ctx context.Context, id uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error)
	SetMerchantStatus(ctx context.Context, id uuid.UUID, action domain.MerchantAction) (*domain.Merchant, error)

	NotificationSummary(ctx context.Context) (*domain.NotificationSummary, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error

	MerchantStats(ctx context.Context, id uuid.UUID) (*domain.MerchantStats, error)
	AllMerchantStats(ctx context.Context, page, pageSize int) ([]domain.MerchantStats, int64, error)
	PlatformStats(ctx context.Context) (*domain.PlatformStats, error)
}
