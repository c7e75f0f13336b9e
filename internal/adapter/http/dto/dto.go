package dto

import (
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
)

// RegisterRequest is the request body for merchant registration.
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password     string  `json:"password" binding:"required,min=8,max=128" sanitize:"-"`
	MerchantName string  `json:"merchant_name" binding:"required,min=1,max=100"`
	WebhookURL   *string `json:"webhook_url,omitempty" binding:"omitempty,safe_url" sanitize:"-"`
}

// LoginRequest is the request body for merchant and admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required" sanitize:"-"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	MerchantID string `json:"merchant_id"`
	AccessKey  string `json:"access_key"`
	SecretKey  string `json:"secret_key"`
}

// LoginResponse carries a bearer token for the dashboard and admin routes.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	Expiry    int64  `json:"expiry"` // Unix seconds
	ExpiresAt string `json:"expires_at"`
}

// InitiateDepositRequest is the request body for a new deposit.
type InitiateDepositRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" binding:"required,rail"`
	ReferenceID *string         `json:"reference_id,omitempty" binding:"omitempty,max=100,safe_id"`
}

// ConfirmDepositRequest signals that the payer claims to have paid.
type ConfirmDepositRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required,max=128,safe_id"`
}

// DepositResponse describes a deposit and where to pay it.
type DepositResponse struct {
	TransactionID string          `json:"transaction_id"`
	ReferenceID   *string         `json:"reference_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Network       string          `json:"network,omitempty"`
	Confirmations int             `json:"confirmations,omitempty"`
	WalletAddress string          `json:"wallet_address"`
	Status        string          `json:"status"`
	ExpiresAt     string          `json:"expires_at"`
	CreatedAt     string          `json:"created_at"`
	ConfirmedAt   *string         `json:"confirmed_at,omitempty"`
	FailedAt      *string         `json:"failed_at,omitempty"`
	FailureReason *string         `json:"failure_reason,omitempty"`
}

// DepositStatusResponse adds the effective status and the monitor view.
type DepositStatusResponse struct {
	DepositResponse
	Monitor MonitorResponse `json:"monitor"`
}

// MonitorResponse is the monitor snapshot in whole seconds.
type MonitorResponse struct {
	Active           bool    `json:"active"`
	Phase            string  `json:"phase,omitempty"`
	StartedAt        *string `json:"started_at,omitempty"`
	ElapsedSeconds   int64   `json:"elapsed_seconds"`
	RemainingSeconds int64   `json:"remaining_seconds"`
}

// WithdrawalRequest is the request body for a withdrawal.
type WithdrawalRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	FeeSettingID string          `json:"fee_setting_id" binding:"required,uuid"`
}

// WithdrawalResponse describes a withdrawal.
type WithdrawalResponse struct {
	ID           string          `json:"id"`
	MerchantID   string          `json:"merchant_id"`
	Amount       decimal.Decimal `json:"amount"`
	FeeSettingID string          `json:"fee_setting_id"`
	FeeAmount    decimal.Decimal `json:"fee_amount"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
	ResolvedAt   *string         `json:"resolved_at,omitempty"`
}

// FeeSettingRequest creates a withdrawal fee rule.
type FeeSettingRequest struct {
	Name    string          `json:"name" binding:"required,max=100"`
	FeeType string          `json:"fee_type" binding:"required,oneof=percentage flat"`
	Value   decimal.Decimal `json:"value"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	MerchantID string          `json:"merchant_id"`
	Balance    decimal.Decimal `json:"balance"`
}

// UpdateWebhookRequest sets or clears (empty string) the webhook URL.
type UpdateWebhookRequest struct {
	WebhookURL string `json:"webhook_url" binding:"omitempty,max=2048,safe_url" sanitize:"-"`
}

// MerchantProfileResponse is the merchant's own account view.
type MerchantProfileResponse struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	MerchantName string          `json:"merchant_name"`
	Role         string          `json:"role"`
	AccessKey    string          `json:"access_key"`
	WebhookURL   *string         `json:"webhook_url,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
}

// RotateKeysResponse carries the new key pair, shown once.
type RotateKeysResponse struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// MonitorListResponse lists the deposits the monitor is tracking.
type MonitorListResponse struct {
	Active []string `json:"active"`
	Count  int      `json:"count"`
}

// NewDepositResponse maps a stored deposit, reporting status as given.
func NewDepositResponse(tx *domain.Transaction, status domain.TransactionStatus) DepositResponse {
	resp := DepositResponse{
		TransactionID: tx.TransactionID,
		ReferenceID:   tx.ReferenceID,
		Amount:        tx.Amount,
		Currency:      string(tx.Currency),
		WalletAddress: tx.WalletAddress,
		Status:        string(status),
		ExpiresAt:     formatTime(tx.ExpiresAt),
		CreatedAt:     formatTime(tx.CreatedAt),
		ConfirmedAt:   formatTimePtr(tx.ConfirmedAt),
		FailedAt:      formatTimePtr(tx.FailedAt),
		FailureReason: tx.FailureReason,
	}
	if n, ok := tx.Currency.Network(); ok {
		resp.Network = n.Name
		resp.Confirmations = n.Confirmations
	}
	return resp
}

// NewDepositStatusResponse maps a status read, including the monitor snapshot.
func NewDepositStatusResponse(st *ports.DepositStatus) DepositStatusResponse {
	m := MonitorResponse{
		Active:           st.Monitor.Active,
		Phase:            st.Monitor.Phase,
		ElapsedSeconds:   int64(st.Monitor.Elapsed / time.Second),
		RemainingSeconds: int64(st.Monitor.Remaining / time.Second),
	}
	if !st.Monitor.StartedAt.IsZero() {
		s := formatTime(st.Monitor.StartedAt)
		m.StartedAt = &s
	}
	return DepositStatusResponse{
		DepositResponse: NewDepositResponse(st.Transaction, st.Status),
		Monitor:         m,
	}
}

func NewWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:           w.ID.String(),
		MerchantID:   w.MerchantID.String(),
		Amount:       w.Amount,
		FeeSettingID: w.FeeSettingID.String(),
		FeeAmount:    w.FeeAmount,
		NetAmount:    w.NetAmount,
		Status:       string(w.Status),
		CreatedAt:    formatTime(w.CreatedAt),
		ResolvedAt:   formatTimePtr(w.ResolvedAt),
	}
}

func NewMerchantProfileResponse(p *ports.MerchantProfile) MerchantProfileResponse {
	return MerchantProfileResponse{
		ID:           p.ID.String(),
		Username:     p.Username,
		MerchantName: p.MerchantName,
		Role:         string(p.Role),
		AccessKey:    p.AccessKey,
		WebhookURL:   p.WebhookURL,
		Balance:      p.Balance,
		Status:       string(p.Status),
		CreatedAt:    formatTime(p.CreatedAt),
	}
}

// NewMerchantResponse maps a stored account for the operator console.
func NewMerchantResponse(m *domain.Merchant) MerchantProfileResponse {
	return MerchantProfileResponse{
		ID:           m.ID.String(),
		Username:     m.Username,
		MerchantName: m.MerchantName,
		Role:         string(m.Role),
		AccessKey:    m.AccessKey,
		WebhookURL:   m.WebhookURL,
		Balance:      m.TotalAmt,
		Status:       string(m.Status),
		CreatedAt:    formatTime(m.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
