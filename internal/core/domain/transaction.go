package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a deposit.
type TransactionStatus string

const (
	TransactionStatusInitiated TransactionStatus = "initiated"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSuccess   TransactionStatus = "success"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusAPIFailed TransactionStatus = "api_failed"
)

// Failure reasons recorded on failed and api_failed deposits.
const (
	FailureReasonExpired = "expired"
	FailureReasonOracle  = "oracle_error: "
)

var (
	ErrInvalidTransition  = errors.New("invalid transaction status transition")
	ErrTransactionExpired = errors.New("transaction expired")
)

// IsTerminal returns true for success, failed and api_failed.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSuccess ||
		s == TransactionStatusFailed ||
		s == TransactionStatusAPIFailed
}

// IsValid reports whether s is one of the known statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusInitiated, TransactionStatusPending,
		TransactionStatusSuccess, TransactionStatusFailed, TransactionStatusAPIFailed:
		return true
	}
	return false
}

// TransitionSources returns the statuses a deposit may be in when moving to
// the target status. Storage adapters use it as the guard of a conditional
// write. Returns nil when the target is not reachable.
func TransitionSources(to TransactionStatus) []TransactionStatus {
	switch to {
	case TransactionStatusPending:
		return []TransactionStatus{TransactionStatusInitiated}
	case TransactionStatusSuccess, TransactionStatusFailed, TransactionStatusAPIFailed:
		return []TransactionStatus{TransactionStatusInitiated, TransactionStatusPending}
	}
	return nil
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to TransactionStatus) bool {
	for _, s := range TransitionSources(to) {
		if s == from {
			return true
		}
	}
	return false
}

// RequiresUnexpired reports whether moving into the status is only allowed
// strictly before expiresAt. Only failed may be written after expiry, so a
// stored status never disagrees with EffectiveStatus.
func RequiresUnexpired(to TransactionStatus) bool {
	return to != TransactionStatusFailed
}

// Transaction is a single merchant deposit request.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	TransactionID   string            `json:"transaction_id"`
	MerchantID      uuid.UUID         `json:"merchant_id"`
	ReferenceID     *string           `json:"reference_id,omitempty"`
	Amount          decimal.Decimal   `json:"amount"`
	Currency        Currency          `json:"currency"`
	WalletAddress   string            `json:"wallet_address"`
	WalletSecretEnc string            `json:"-"` // AES-256 encrypted, never expose
	Status          TransactionStatus `json:"status"`
	ExpiresAt       time.Time         `json:"expires_at"`
	ConfirmedAt     *time.Time        `json:"confirmed_at,omitempty"`
	FailedAt        *time.Time        `json:"failed_at,omitempty"`
	FailureReason   *string           `json:"failure_reason,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// IsTerminal returns true if the stored status is final.
func (t *Transaction) IsTerminal() bool {
	return t.Status.IsTerminal()
}

// IsExpired returns true once now has reached expiresAt.
func (t *Transaction) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// EffectiveStatus is the status a reader must observe at now: a non-terminal
// deposit past its expiry reads as failed even before the monitor persists it.
func (t *Transaction) EffectiveStatus(now time.Time) TransactionStatus {
	if !t.IsTerminal() && t.IsExpired(now) {
		return TransactionStatusFailed
	}
	return t.Status
}

// Transition moves the deposit to the given status in place, stamping
// confirmedAt or failedAt. It enforces the same guards as the conditional
// write in the ledger store.
func (t *Transaction) Transition(to TransactionStatus, at time.Time, reason string) error {
	if !CanTransition(t.Status, to) {
		return ErrInvalidTransition
	}
	if RequiresUnexpired(to) && t.IsExpired(at) {
		return ErrTransactionExpired
	}

	t.Status = to
	t.UpdatedAt = at
	switch to {
	case TransactionStatusSuccess:
		t.ConfirmedAt = &at
	case TransactionStatusFailed, TransactionStatusAPIFailed:
		t.FailedAt = &at
		if reason != "" {
			r := reason
			t.FailureReason = &r
		}
	}
	return nil
}

// StatusTransition describes a conditional status write: it applies only if
// the deposit is currently in one of the source statuses for To and, when To
// requires it, At is still before expiresAt.
type StatusTransition struct {
	TransactionID string
	To            TransactionStatus
	At            time.Time
	Reason        string
}
