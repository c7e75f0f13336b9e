package service

import (
	"context"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// reportingService implements ports.ReportingService for the dashboards.
type reportingService struct {
	merchantRepo     ports.MerchantRepository
	txRepo           ports.TransactionRepository
	notificationRepo ports.NotificationRepository
}

func NewReportingService(
	merchantRepo ports.MerchantRepository,
	txRepo ports.TransactionRepository,
	notificationRepo ports.NotificationRepository,
) ports.ReportingService {
	return &reportingService{
		merchantRepo:     merchantRepo,
		txRepo:           txRepo,
		notificationRepo: notificationRepo,
	}
}

// GetBalance returns the merchant's ledger balance.
func (s *reportingService) GetBalance(ctx context.Context, merchantID uuid.UUID) (decimal.Decimal, error) {
	m, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(err)
	}
	if m == nil {
		return decimal.Zero, apperror.ErrNotFound("merchant")
	}
	return m.TotalAmt, nil
}

// ListTransactions returns a page of the merchant's deposits.
func (s *reportingService) ListTransactions(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	if params.Status != nil && !params.Status.IsValid() {
		return nil, 0, apperror.Validation("invalid status filter")
	}
	if params.Currency != nil && !params.Currency.IsValid() {
		return nil, 0, apperror.Validation("invalid currency filter")
	}
	txns, total, err := s.txRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return txns, total, nil
}

func (s *reportingService) ListNotifications(ctx context.Context, params ports.NotificationListParams) ([]domain.Notification, int64, error) {
	out, total, err := s.notificationRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return out, total, nil
}
