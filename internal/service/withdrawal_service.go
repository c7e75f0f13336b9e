package service

import (
	"context"
	"errors"
	"fmt"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// WithdrawalServiceImpl implements ports.WithdrawalService. The gross amount
// is reserved at request time; a rejection returns it.
type WithdrawalServiceImpl struct {
	merchantRepo   ports.MerchantRepository
	withdrawalRepo ports.WithdrawalRepository
	feeRepo        ports.FeeSettingRepository
	db             ports.DBTransactor
	notifier       ports.Notifier
	clock          clockwork.Clock
	log            zerolog.Logger
}

func NewWithdrawalService(
	merchantRepo ports.MerchantRepository,
	withdrawalRepo ports.WithdrawalRepository,
	feeRepo ports.FeeSettingRepository,
	db ports.DBTransactor,
	notifier ports.Notifier,
	clock clockwork.Clock,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		merchantRepo:   merchantRepo,
		withdrawalRepo: withdrawalRepo,
		feeRepo:        feeRepo,
		db:             db,
		notifier:       notifier,
		clock:          clock,
		log:            logger.Component(log, "withdrawal_service"),
	}
}

// RequestWithdrawal reserves the gross amount and records a pending
// withdrawal. The balance check is repeated atomically by the debit itself,
// so concurrent requests can never overdraw.
func (s *WithdrawalServiceImpl) RequestWithdrawal(ctx context.Context, req ports.WithdrawalRequest) (*domain.Withdrawal, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	merchant, err := s.merchantRepo.GetByID(ctx, req.MerchantID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.IsActive() {
		return nil, apperror.ErrMerchantSuspended()
	}
	if merchant.TotalAmt.LessThan(req.Amount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	fee, err := s.feeRepo.GetByID(ctx, req.FeeSettingID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if fee == nil {
		return nil, apperror.ErrNotFound("fee setting")
	}
	feeAmount, net, err := fee.Compute(req.Amount)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	now := s.clock.Now().UTC()
	w := &domain.Withdrawal{
		ID:           uuid.New(),
		MerchantID:   merchant.ID,
		Amount:       req.Amount,
		FeeSettingID: fee.ID,
		FeeAmount:    feeAmount,
		NetAmount:    net,
		Status:       domain.WithdrawalStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	dbTx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin withdrawal: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balance, err := s.merchantRepo.AdjustBalance(ctx, dbTx, merchant.ID, req.Amount.Neg())
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return nil, apperror.ErrInsufficientBalance()
		}
		return nil, apperror.ErrDatabaseError(err)
	}
	if err := s.withdrawalRepo.Create(ctx, dbTx, w); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit withdrawal: %w", err))
	}

	merchant.TotalAmt = balance
	s.log.Info().
		Str("withdrawal_id", w.ID.String()).
		Str("merchant_id", merchant.ID.String()).
		Str("amount", w.Amount.String()).
		Str("fee", w.FeeAmount.String()).
		Str("balance", balance.String()).
		Msg("withdrawal requested")

	s.notifier.OnWithdrawalRequested(ctx, w, merchant)
	return w, nil
}

// ResolveWithdrawal approves or rejects a pending withdrawal exactly once.
func (s *WithdrawalServiceImpl) ResolveWithdrawal(ctx context.Context, id uuid.UUID, action domain.WithdrawalAction) (*domain.Withdrawal, error) {
	if _, err := domain.ParseWithdrawalAction(string(action)); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	w, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if w == nil {
		return nil, apperror.ErrNotFound("withdrawal")
	}
	return s.finish(ctx, w, action.TargetStatus(), action.RefundsBalance())
}

// CancelWithdrawal withdraws a merchant's own pending request. Another
// merchant's withdrawal reads as not found.
func (s *WithdrawalServiceImpl) CancelWithdrawal(ctx context.Context, merchantID, id uuid.UUID) (*domain.Withdrawal, error) {
	w, err := s.withdrawalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if w == nil || w.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("withdrawal")
	}
	return s.finish(ctx, w, domain.WithdrawalStatusCancelled, true)
}

// finish moves w out of pending and, when refund is set, returns the
// reserved gross amount in the same database transaction.
func (s *WithdrawalServiceImpl) finish(ctx context.Context, w *domain.Withdrawal, status domain.WithdrawalStatus, refund bool) (*domain.Withdrawal, error) {
	if !w.IsPending() {
		return nil, apperror.ErrAlreadyProcessed(fmt.Sprintf("withdrawal already %s", w.Status))
	}

	dbTx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin resolve: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	resolved, err := s.withdrawalRepo.Resolve(ctx, dbTx, w.ID, status, s.clock.Now().UTC())
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if resolved == nil {
		return nil, apperror.ErrAlreadyProcessed("withdrawal already resolved")
	}
	if refund {
		if _, err := s.merchantRepo.AdjustBalance(ctx, dbTx, resolved.MerchantID, resolved.Amount); err != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("refund withdrawal: %w", err))
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit resolve: %w", err))
	}

	s.log.Info().
		Str("withdrawal_id", resolved.ID.String()).
		Str("status", string(resolved.Status)).
		Bool("refunded", refund).
		Msg("withdrawal resolved")

	merchant, err := s.merchantRepo.GetByID(ctx, resolved.MerchantID)
	if err != nil || merchant == nil {
		s.log.Warn().Err(err).Str("withdrawal_id", resolved.ID.String()).Msg("merchant lookup for notification failed")
		return resolved, nil
	}
	s.notifier.OnWithdrawalResolved(ctx, resolved, merchant)
	return resolved, nil
}

func (s *WithdrawalServiceImpl) ListWithdrawals(ctx context.Context, params ports.WithdrawalListParams) ([]domain.Withdrawal, int64, error) {
	out, total, err := s.withdrawalRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return out, total, nil
}
