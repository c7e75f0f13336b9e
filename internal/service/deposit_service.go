package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cryptopay-gateway/internal/core/domain"
	"cryptopay-gateway/internal/core/ports"
	"cryptopay-gateway/pkg/apperror"
	"cryptopay-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// DepositServiceImpl implements ports.DepositService.
type DepositServiceImpl struct {
	txRepo   ports.TransactionRepository
	refCache ports.DepositRefCache
	wallets  ports.WalletGenerator
	encSvc   ports.EncryptionService
	monitor  ports.TransactionMonitor
	clock    clockwork.Clock
	window   time.Duration
	log      zerolog.Logger
}

func NewDepositService(
	txRepo ports.TransactionRepository,
	refCache ports.DepositRefCache,
	wallets ports.WalletGenerator,
	encSvc ports.EncryptionService,
	monitor ports.TransactionMonitor,
	clock clockwork.Clock,
	expiryWindow time.Duration,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{
		txRepo:   txRepo,
		refCache: refCache,
		wallets:  wallets,
		encSvc:   encSvc,
		monitor:  monitor,
		clock:    clock,
		window:   expiryWindow,
		log:      logger.Component(log, "deposit_service"),
	}
}

// InitiateTransaction creates an initiated deposit with a fresh wallet and
// hands it to the monitor. A repeated referenceId returns the original
// deposit instead of creating a second one.
func (s *DepositServiceImpl) InitiateTransaction(ctx context.Context, req ports.InitiateDepositRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if !req.Currency.IsValid() {
		return nil, apperror.Validation(fmt.Sprintf("unsupported currency %q", req.Currency))
	}
	var ref string
	if req.ReferenceID != nil {
		ref = strings.TrimSpace(*req.ReferenceID)
		if ref == "" {
			return nil, apperror.Validation("reference_id must not be blank")
		}
	}

	if ref != "" {
		existing, err := s.findByReference(ctx, req.MerchantID, ref)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	wallet, err := s.wallets.GenerateWallet(ctx, req.Currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate wallet: %w", err))
	}
	secretEnc, err := s.encSvc.Encrypt(wallet.Secret)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt wallet secret: %w", err))
	}
	publicID, err := generateRandomHex(12)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate transaction id: %w", err))
	}

	now := s.clock.Now().UTC()
	tx := &domain.Transaction{
		ID:              uuid.New(),
		TransactionID:   publicID,
		MerchantID:      req.MerchantID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		WalletAddress:   wallet.Address,
		WalletSecretEnc: secretEnc,
		Status:          domain.TransactionStatusInitiated,
		ExpiresAt:       now.Add(s.window),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if ref != "" {
		tx.ReferenceID = &ref
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		if ref != "" {
			// Lost a race on the (merchant, reference) unique index.
			if existing, lookupErr := s.txRepo.GetByReference(ctx, req.MerchantID, ref); lookupErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create deposit: %w", err))
	}

	if ref != "" {
		if err := s.refCache.Remember(ctx, req.MerchantID, ref, tx.TransactionID); err != nil {
			s.log.Warn().Err(err).Str("tx_id", tx.TransactionID).Msg("cache deposit reference")
		}
	}

	s.monitor.Schedule(tx)

	s.log.Info().
		Str("tx_id", tx.TransactionID).
		Str("merchant_id", tx.MerchantID.String()).
		Str("amount", tx.Amount.String()).
		Str("currency", string(tx.Currency)).
		Msg("deposit initiated")

	return tx, nil
}

// findByReference checks the cache, then the ledger.
func (s *DepositServiceImpl) findByReference(ctx context.Context, merchantID uuid.UUID, ref string) (*domain.Transaction, error) {
	txID, err := s.refCache.Lookup(ctx, merchantID, ref)
	if err != nil {
		s.log.Warn().Err(err).Msg("deposit reference cache unavailable, falling through to ledger")
	}
	if txID != "" {
		tx, err := s.txRepo.GetByTransactionID(ctx, txID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		if tx != nil && tx.MerchantID == merchantID {
			return tx, nil
		}
	}

	tx, err := s.txRepo.GetByReference(ctx, merchantID, ref)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return tx, nil
}

// ConfirmDeposit records the merchant's claim that the customer paid and
// asks the monitor to check right away. Calling it again while pending
// changes nothing.
func (s *DepositServiceImpl) ConfirmDeposit(ctx context.Context, merchantID uuid.UUID, walletAddress string) (*domain.Transaction, error) {
	if strings.TrimSpace(walletAddress) == "" {
		return nil, apperror.Validation("wallet_address is required")
	}

	tx, err := s.txRepo.GetByWalletAddress(ctx, merchantID, walletAddress)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if tx == nil {
		return nil, apperror.ErrNotFound("transaction")
	}

	now := s.clock.Now().UTC()
	switch effective := tx.EffectiveStatus(now); effective {
	case domain.TransactionStatusPending:
		return tx, nil
	case domain.TransactionStatusInitiated:
	default:
		return nil, apperror.ErrInvalidState(fmt.Sprintf("transaction is %s", effective))
	}

	updated, err := s.txRepo.Transition(ctx, nil, domain.StatusTransition{
		TransactionID: tx.TransactionID,
		To:            domain.TransactionStatusPending,
		At:            now,
	})
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if updated == nil {
		// Someone else moved it between our read and write.
		current, err := s.txRepo.GetByTransactionID(ctx, tx.TransactionID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		if current == nil {
			return nil, apperror.ErrNotFound("transaction")
		}
		if st := current.EffectiveStatus(s.clock.Now()); st != domain.TransactionStatusPending {
			return nil, apperror.ErrInvalidState(fmt.Sprintf("transaction is %s", st))
		}
		return current, nil
	}

	s.log.Info().Str("tx_id", updated.TransactionID).Msg("deposit confirmed by merchant, checking now")
	s.monitor.Expedite(updated.TransactionID)
	return updated, nil
}

// GetTransactionStatus reports the deposit as a reader must see it now.
func (s *DepositServiceImpl) GetTransactionStatus(ctx context.Context, merchantID uuid.UUID, transactionID string) (*ports.DepositStatus, error) {
	tx, err := s.txRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if tx == nil || tx.MerchantID != merchantID {
		return nil, apperror.ErrNotFound("transaction")
	}

	return &ports.DepositStatus{
		Transaction: tx,
		Status:      tx.EffectiveStatus(s.clock.Now()),
		Monitor:     s.monitor.Status(transactionID),
	}, nil
}
