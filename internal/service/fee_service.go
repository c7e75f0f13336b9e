package service

import (
	"context"
	"strings"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeServiceImpl implements ports.FeeService.
type FeeServiceImpl struct {
	feeRepo ports.FeeSettingRepository
}

func NewFeeService(feeRepo ports.FeeSettingRepository) *FeeServiceImpl {
	return &FeeServiceImpl{feeRepo: feeRepo}
}

func (s *FeeServiceImpl) CreateFeeSetting(ctx context.Context, name string, feeType domain.FeeType, value decimal.Decimal) (*domain.FeeSetting, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("fee setting name is required")
	}
	f := &domain.FeeSetting{
		ID:        uuid.New(),
		Name:      name,
		FeeType:   feeType,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.Validate(); err != nil {
		return nil, apperror.Validation("fee_type must be percentage (0-100) or flat (>= 0)")
	}
	if err := s.feeRepo.Create(ctx, f); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return f, nil
}

func (s *FeeServiceImpl) ListFeeSettings(ctx context.Context) ([]domain.FeeSetting, error) {
	fees, err := s.feeRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return fees, nil
}
