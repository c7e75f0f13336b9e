package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MerchantStatus represents the state of a merchant account.
type MerchantStatus string

const (
	MerchantStatusActive      MerchantStatus = "ACTIVE"
	MerchantStatusSuspended   MerchantStatus = "SUSPENDED"
	MerchantStatusDeactivated MerchantStatus = "DEACTIVATED"
)

// MerchantAction is an operator decision on a merchant account.
type MerchantAction string

const (
	MerchantActionApprove MerchantAction = "approve"
	MerchantActionBlock   MerchantAction = "block"
)

// ParseMerchantAction validates an action received from the outside.
func ParseMerchantAction(s string) (MerchantAction, error) {
	switch a := MerchantAction(s); a {
	case MerchantActionApprove, MerchantActionBlock:
		return a, nil
	}
	return "", fmt.Errorf("unknown merchant action %q", s)
}

// TargetStatus is the account status the action leads to.
func (a MerchantAction) TargetStatus() MerchantStatus {
	if a == MerchantActionApprove {
		return MerchantStatusActive
	}
	return MerchantStatusSuspended
}

// IsValid reports whether s is a known account status.
func (s MerchantStatus) IsValid() bool {
	switch s {
	case MerchantStatusActive, MerchantStatusSuspended, MerchantStatusDeactivated:
		return true
	}
	return false
}

// Role separates merchants from platform operators.
type Role string

const (
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

// ErrInsufficientBalance is returned by ledger stores when a debit would
// take a merchant balance below zero.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Merchant represents a registered account. TotalAmt is the single running
// ledger balance shared by all rails; it never goes negative.
type Merchant struct {
	ID           uuid.UUID       `json:"id"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"-"` // Never expose
	MerchantName string          `json:"merchant_name"`
	Role         Role            `json:"role"`
	AccessKey    string          `json:"access_key"`
	SecretKeyEnc string          `json:"-"` // Encrypted, never expose
	WebhookURL   *string         `json:"webhook_url,omitempty"`
	TotalAmt     decimal.Decimal `json:"total_amt"`
	Status       MerchantStatus  `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsActive returns true if the merchant account is active.
func (m *Merchant) IsActive() bool {
	return m.Status == MerchantStatusActive
}

// IsAdmin returns true for platform operators.
func (m *Merchant) IsAdmin() bool {
	return m.Role == RoleAdmin
}
