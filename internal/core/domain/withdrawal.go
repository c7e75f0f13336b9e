package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalStatus is forward-only from pending.
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusApproved  WithdrawalStatus = "approved"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
	WithdrawalStatusCancelled WithdrawalStatus = "cancelled"
)

// WithdrawalAction is an admin decision on a pending withdrawal.
type WithdrawalAction string

const (
	WithdrawalActionApprove WithdrawalAction = "approve"
	WithdrawalActionReject  WithdrawalAction = "reject"
)

// ParseWithdrawalAction validates an action received from the outside.
func ParseWithdrawalAction(s string) (WithdrawalAction, error) {
	switch a := WithdrawalAction(s); a {
	case WithdrawalActionApprove, WithdrawalActionReject:
		return a, nil
	}
	return "", fmt.Errorf("unknown withdrawal action %q", s)
}

// TargetStatus is the status a pending withdrawal takes under the action.
func (a WithdrawalAction) TargetStatus() WithdrawalStatus {
	if a == WithdrawalActionApprove {
		return WithdrawalStatusApproved
	}
	return WithdrawalStatusRejected
}

// RefundsBalance reports whether resolving with this action returns the
// reserved gross amount to the merchant.
func (a WithdrawalAction) RefundsBalance() bool {
	return a == WithdrawalActionReject
}

// Withdrawal is a merchant request to move ledger balance out. The gross
// amount is reserved (debited) at request time; fee and net are computed once.
type Withdrawal struct {
	ID           uuid.UUID        `json:"id"`
	MerchantID   uuid.UUID        `json:"merchant_id"`
	Amount       decimal.Decimal  `json:"amount"`
	FeeSettingID uuid.UUID        `json:"fee_setting_id"`
	FeeAmount    decimal.Decimal  `json:"fee_amount"`
	NetAmount    decimal.Decimal  `json:"net_amount"`
	Status       WithdrawalStatus `json:"status"`
	ResolvedAt   *time.Time       `json:"resolved_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// IsPending returns true while the withdrawal awaits a decision.
func (w *Withdrawal) IsPending() bool {
	return w.Status == WithdrawalStatusPending
}
