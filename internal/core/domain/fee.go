package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeType selects how a withdrawal fee is computed.
type FeeType string

const (
	FeeTypePercentage FeeType = "percentage"
	FeeTypeFlat       FeeType = "flat"
)

var (
	ErrInvalidFeeSetting = errors.New("invalid fee setting")
	ErrFeeExceedsAmount  = errors.New("fee is not less than the withdrawal amount")
)

var hundred = decimal.NewFromInt(100)

// FeeSetting is an admin-managed withdrawal fee rule.
type FeeSetting struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	FeeType   FeeType         `json:"fee_type"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
}

// Validate checks the rule itself, independent of any amount.
func (f *FeeSetting) Validate() error {
	switch f.FeeType {
	case FeeTypePercentage:
		if f.Value.GreaterThan(hundred) {
			return ErrInvalidFeeSetting
		}
	case FeeTypeFlat:
	default:
		return ErrInvalidFeeSetting
	}
	if f.Value.IsNegative() {
		return ErrInvalidFeeSetting
	}
	return nil
}

// Compute returns the fee and net amount for a gross withdrawal amount.
// percentage: amount*value/100, flat: value. A net amount that is not
// positive is rejected.
func (f *FeeSetting) Compute(amount decimal.Decimal) (fee, net decimal.Decimal, err error) {
	if err := f.Validate(); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	switch f.FeeType {
	case FeeTypePercentage:
		fee = amount.Mul(f.Value).Div(hundred)
	case FeeTypeFlat:
		fee = f.Value
	}

	net = amount.Sub(fee)
	if !net.IsPositive() {
		return decimal.Zero, decimal.Zero, ErrFeeExceedsAmount
	}
	return fee, net, nil
}
