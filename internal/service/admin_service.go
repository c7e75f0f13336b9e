package service

import (
	"context"
	"fmt"
	"strings"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// AdminServiceImpl implements ports.AdminService. Operator accounts are
// never listed, approved or blocked through it.
type AdminServiceImpl struct {
	merchantRepo     ports.MerchantRepository
	txRepo           ports.TransactionRepository
	withdrawalRepo   ports.WithdrawalRepository
	notificationRepo ports.NotificationRepository
	clock            clockwork.Clock
	log              zerolog.Logger
}

func NewAdminService(
	merchantRepo ports.MerchantRepository,
	txRepo ports.TransactionRepository,
	withdrawalRepo ports.WithdrawalRepository,
	notificationRepo ports.NotificationRepository,
	clock clockwork.Clock,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		merchantRepo:     merchantRepo,
		txRepo:           txRepo,
		withdrawalRepo:   withdrawalRepo,
		notificationRepo: notificationRepo,
		clock:            clock,
		log:              logger.Component(log, "admin_service"),
	}
}

func (s *AdminServiceImpl) ListMerchants(ctx context.Context, params ports.MerchantListParams) ([]domain.Merchant, int64, error) {
	if params.Status != nil && !params.Status.IsValid() {
		return nil, 0, apperror.Validation("invalid status filter")
	}
	out, total, err := s.merchantRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return out, total, nil
}

// GetMerchant returns a merchant-role account; operators read as not found.
func (s *AdminServiceImpl) GetMerchant(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	m, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if m == nil || m.IsAdmin() {
		return nil, apperror.ErrNotFound("merchant")
	}
	return m, nil
}

func (s *AdminServiceImpl) ListMerchantTransactions(ctx context.Context, id uuid.UUID, page, pageSize int) ([]domain.Transaction, int64, error) {
	if _, err := s.GetMerchant(ctx, id); err != nil {
		return nil, 0, err
	}
	txns, total, err := s.txRepo.List(ctx, ports.TransactionListParams{MerchantID: id, Page: page, PageSize: pageSize})
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return txns, total, nil
}

// SetMerchantStatus approves (activates) or blocks (suspends) a merchant.
// Applying the status the account already has is refused.
func (s *AdminServiceImpl) SetMerchantStatus(ctx context.Context, id uuid.UUID, action domain.MerchantAction) (*domain.Merchant, error) {
	if _, err := domain.ParseMerchantAction(string(action)); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	m, err := s.GetMerchant(ctx, id)
	if err != nil {
		return nil, err
	}

	target := action.TargetStatus()
	if m.Status == target {
		return nil, apperror.ErrAlreadyProcessed(fmt.Sprintf("merchant already %s", strings.ToLower(string(target))))
	}
	ok, err := s.merchantRepo.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if !ok {
		return nil, apperror.ErrAlreadyProcessed("merchant status changed concurrently")
	}

	s.log.Info().
		Str("merchant_id", id.String()).
		Str("from", string(m.Status)).
		Str("to", string(target)).
		Msg("merchant status changed")

	m.Status = target
	return m, nil
}

func (s *AdminServiceImpl) NotificationSummary(ctx context.Context) (*domain.NotificationSummary, error) {
	sum, err := s.notificationRepo.Summary(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return sum, nil
}

func (s *AdminServiceImpl) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	ok, err := s.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !ok {
		return apperror.ErrNotFound("notification")
	}
	return nil
}

func (s *AdminServiceImpl) MerchantStats(ctx context.Context, id uuid.UUID) (*domain.MerchantStats, error) {
	m, err := s.GetMerchant(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.statsFor(ctx, m)
}

// AllMerchantStats pages through merchants newest first and computes the
// figures of each one on the page.
func (s *AdminServiceImpl) AllMerchantStats(ctx context.Context, page, pageSize int) ([]domain.MerchantStats, int64, error) {
	merchants, total, err := s.merchantRepo.List(ctx, ports.MerchantListParams{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	out := make([]domain.MerchantStats, 0, len(merchants))
	for i := range merchants {
		st, err := s.statsFor(ctx, &merchants[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *st)
	}
	return out, total, nil
}

func (s *AdminServiceImpl) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	totals, err := s.merchantRepo.Totals(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	deposits, err := s.txRepo.Stats(ctx, nil, s.clock.Now().UTC())
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	withdrawals, err := s.withdrawalRepo.Stats(ctx, nil)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	notes, err := s.notificationRepo.Summary(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	return &domain.PlatformStats{
		Merchants:               totals.Count,
		Notifications:           *notes,
		TotalDeposits:           deposits.Successful.Amount,
		TotalFailedDeposits:     deposits.Failed.Amount,
		TotalWithdrawals:        withdrawals.Approved.Amount,
		TotalPendingWithdrawals: withdrawals.Pending.Amount,
		TotalCurrentBalance:     totals.Balance,
	}, nil
}

func (s *AdminServiceImpl) statsFor(ctx context.Context, m *domain.Merchant) (*domain.MerchantStats, error) {
	deposits, err := s.txRepo.Stats(ctx, &m.ID, s.clock.Now().UTC())
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	withdrawals, err := s.withdrawalRepo.Stats(ctx, &m.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return domain.NewMerchantStats(m, deposits, withdrawals), nil
}
