package service

import (
	"context"
	"fmt"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/logger"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// SettlementService implements ports.Settler. It is the only code path that
// moves a deposit into a terminal state, and the only one that credits.
type SettlementService struct {
	merchantRepo ports.MerchantRepository
	txRepo       ports.TransactionRepository
	db           ports.DBTransactor
	notifier     ports.Notifier
	clock        clockwork.Clock
	log          zerolog.Logger
}

func NewSettlementService(
	merchantRepo ports.MerchantRepository,
	txRepo ports.TransactionRepository,
	db ports.DBTransactor,
	notifier ports.Notifier,
	clock clockwork.Clock,
	log zerolog.Logger,
) *SettlementService {
	return &SettlementService{
		merchantRepo: merchantRepo,
		txRepo:       txRepo,
		db:           db,
		notifier:     notifier,
		clock:        clock,
		log:          logger.Component(log, "settlement"),
	}
}

// Confirm moves the deposit to success and credits the merchant in one
// database transaction. The credit only happens when the conditional status
// write affected the row, so a deposit is credited at most once no matter
// how many callers race here.
func (s *SettlementService) Confirm(ctx context.Context, transactionID string) (*domain.Transaction, bool, error) {
	return s.settle(ctx, domain.StatusTransition{
		TransactionID: transactionID,
		To:            domain.TransactionStatusSuccess,
		At:            s.clock.Now().UTC(),
	})
}

// Fail moves the deposit to failed or api_failed. The balance is untouched.
func (s *SettlementService) Fail(ctx context.Context, transactionID string, status domain.TransactionStatus, reason string) (*domain.Transaction, bool, error) {
	if status != domain.TransactionStatusFailed && status != domain.TransactionStatusAPIFailed {
		return nil, false, fmt.Errorf("fail deposit: %w: %s", domain.ErrInvalidTransition, status)
	}
	return s.settle(ctx, domain.StatusTransition{
		TransactionID: transactionID,
		To:            status,
		At:            s.clock.Now().UTC(),
		Reason:        reason,
	})
}

func (s *SettlementService) settle(ctx context.Context, t domain.StatusTransition) (*domain.Transaction, bool, error) {
	log := s.log.With().Str("tx_id", t.TransactionID).Str("status", string(t.To)).Logger()

	dbTx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, false, apperror.ErrDatabaseError(fmt.Errorf("begin settlement: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	updated, err := s.txRepo.Transition(ctx, dbTx, t)
	if err != nil {
		return nil, false, apperror.ErrDatabaseError(err)
	}
	if updated == nil {
		// Another writer settled it first, or the guard no longer holds.
		if err := dbTx.Rollback(ctx); err != nil {
			log.Debug().Err(err).Msg("rollback after lost transition")
		}
		current, err := s.txRepo.GetByTransactionID(ctx, t.TransactionID)
		if err != nil {
			return nil, false, apperror.ErrDatabaseError(err)
		}
		if current == nil {
			return nil, false, apperror.ErrNotFound("transaction")
		}
		log.Debug().Str("current_status", string(current.Status)).Msg("transition not applied")
		return current, false, nil
	}

	if t.To == domain.TransactionStatusSuccess {
		balance, err := s.merchantRepo.AdjustBalance(ctx, dbTx, updated.MerchantID, updated.Amount)
		if err != nil {
			return nil, false, apperror.ErrDatabaseError(fmt.Errorf("credit merchant: %w", err))
		}
		log = log.With().Str("balance", balance.String()).Logger()
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, false, apperror.ErrDatabaseError(fmt.Errorf("commit settlement: %w", err))
	}

	log.Info().
		Str("merchant_id", updated.MerchantID.String()).
		Str("amount", updated.Amount.String()).
		Msg("deposit settled")

	s.notify(ctx, updated)
	return updated, true, nil
}

// notify runs after commit. A notification problem never undoes a settlement.
func (s *SettlementService) notify(ctx context.Context, tx *domain.Transaction) {
	merchant, err := s.merchantRepo.GetByID(ctx, tx.MerchantID)
	if err != nil || merchant == nil {
		s.log.Warn().Err(err).Str("tx_id", tx.TransactionID).Msg("merchant lookup for notification failed")
		return
	}
	if tx.Status == domain.TransactionStatusSuccess {
		s.notifier.OnDepositSuccess(ctx, tx, merchant)
		return
	}
	s.notifier.OnDepositFailed(ctx, tx, merchant)
}
