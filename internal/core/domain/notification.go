package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NotificationType identifies the ledger event behind a notification.
type NotificationType string

const (
	NotificationDepositSuccess      NotificationType = "DEPOSIT_SUCCESS"
	NotificationDepositFailed       NotificationType = "DEPOSIT_FAILED"
	NotificationWithdrawalRequested NotificationType = "WITHDRAWAL_REQUESTED"
	NotificationWithdrawalApproved  NotificationType = "WITHDRAWAL_APPROVED"
	NotificationWithdrawalRejected  NotificationType = "WITHDRAWAL_REJECTED"
	NotificationWithdrawalCancelled NotificationType = "WITHDRAWAL_CANCELLED"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

// Notification is the admin-facing record of a ledger event.
type Notification struct {
	ID         uuid.UUID            `json:"id"`
	Type       NotificationType     `json:"type"`
	Title      string               `json:"title"`
	Message    string               `json:"message"`
	MerchantID uuid.UUID            `json:"merchant_id"`
	Reference  string               `json:"reference"` // transaction_id or withdrawal id
	Amount     decimal.Decimal      `json:"amount"`
	Currency   *string              `json:"currency,omitempty"`
	Priority   NotificationPriority `json:"priority"`
	IsRead     bool                 `json:"is_read"`
	CreatedAt  time.Time            `json:"created_at"`
}

// RequiresAction reports whether an operator has to act on the event.
func (t NotificationType) RequiresAction() bool {
	return t == NotificationWithdrawalRequested
}

// IsDeposit reports whether the event concerns a deposit.
func (t NotificationType) IsDeposit() bool {
	return t == NotificationDepositSuccess || t == NotificationDepositFailed
}

// NotificationSummary counts notifications for the operator dashboard.
// ActionRequired counts unread notifications that await an operator.
type NotificationSummary struct {
	Total          int64      `json:"total"`
	Unread         int64      `json:"unread"`
	Deposits       int64      `json:"deposits"`
	Withdrawals    int64      `json:"withdrawals"`
	ActionRequired int64      `json:"action_required"`
	LastAt         *time.Time `json:"last_at,omitempty"`
}
