package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tally is the row count and summed gross amount of a set of ledger rows.
type Tally struct {
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// Add folds one row into the tally.
func (t *Tally) Add(amount decimal.Decimal) {
	t.Count++
	t.Amount = t.Amount.Add(amount)
}

// DepositStats groups deposits by effective status. A stored initiated or
// pending deposit past its expiry counts as failed.
type DepositStats struct {
	Total      Tally `json:"total"`
	Successful Tally `json:"successful"`
	Failed     Tally `json:"failed"`
	Pending    Tally `json:"pending"`
}

// WithdrawalStats groups withdrawals by status.
type WithdrawalStats struct {
	Total     Tally `json:"total"`
	Approved  Tally `json:"approved"`
	Rejected  Tally `json:"rejected"`
	Cancelled Tally `json:"cancelled"`
	Pending   Tally `json:"pending"`
}

// MerchantStats is the operator view of one merchant's ledger activity.
type MerchantStats struct {
	MerchantID          uuid.UUID       `json:"merchant_id"`
	MerchantName        string          `json:"merchant_name"`
	Status              MerchantStatus  `json:"status"`
	Deposits            DepositStats    `json:"deposits"`
	Withdrawals         WithdrawalStats `json:"withdrawals"`
	CurrentBalance      decimal.Decimal `json:"current_balance"`
	LifetimeEarnings    decimal.Decimal `json:"lifetime_earnings"`
	LifetimeWithdrawals decimal.Decimal `json:"lifetime_withdrawals"`
}

// NewMerchantStats derives the lifetime figures from the grouped tallies.
func NewMerchantStats(m *Merchant, deposits *DepositStats, withdrawals *WithdrawalStats) *MerchantStats {
	return &MerchantStats{
		MerchantID:          m.ID,
		MerchantName:        m.MerchantName,
		Status:              m.Status,
		Deposits:            *deposits,
		Withdrawals:         *withdrawals,
		CurrentBalance:      m.TotalAmt,
		LifetimeEarnings:    deposits.Successful.Amount,
		LifetimeWithdrawals: withdrawals.Approved.Amount,
	}
}

// MerchantTotals aggregates every merchant account.
type MerchantTotals struct {
	Count   int64           `json:"count"`
	Balance decimal.Decimal `json:"balance"`
}

// PlatformStats is the operator overview across all merchants.
type PlatformStats struct {
	Merchants               int64               `json:"merchants"`
	Notifications           NotificationSummary `json:"notifications"`
	TotalDeposits           decimal.Decimal     `json:"total_deposits"`
	TotalFailedDeposits     decimal.Decimal     `json:"total_failed_deposits"`
	TotalWithdrawals        decimal.Decimal     `json:"total_withdrawals"`
	TotalPendingWithdrawals decimal.Decimal     `json:"total_pending_withdrawals"`
	TotalCurrentBalance     decimal.Decimal     `json:"total_current_balance"`
}
